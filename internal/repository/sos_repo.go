package repository

import (
	"context"
	"time"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SOSRepository interface {
	Create(ctx context.Context, alert *models.SOSAlert) error
}

type sosRepository struct {
	db *sqlx.DB
}

func NewSOSRepository(db *sqlx.DB) SOSRepository {
	return &sosRepository{db: db}
}

func (r *sosRepository) Create(ctx context.Context, alert *models.SOSAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	alert.CreatedAt = time.Now()
	alert.Status = models.SOSStatusActive

	query := `
		INSERT INTO sos_alerts (id, driver_id, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		alert.ID, alert.DriverID, alert.Location, alert.Status, alert.CreatedAt)
	return err
}
