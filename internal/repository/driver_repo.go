package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByUserID(ctx context.Context, userID string) (*models.Driver, error)
}

type driverRepository struct {
	db *sqlx.DB
}

func NewDriverRepository(db *sqlx.DB) DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	if driver.ID == "" {
		driver.ID = uuid.New().String()
	}
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = time.Now()
	driver.CompletedRides = 0
	driver.TotalEarnings = 0

	query := `
		INSERT INTO drivers (id, user_id, photograph_url, primary_phone, secondary_phone, address,
			vehicle_number, car_model, car_make, is_verified, total_earnings, completed_rides,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		driver.ID, driver.UserID, driver.PhotographURL, driver.PrimaryPhone, driver.SecondaryPhone,
		driver.Address, driver.VehicleNumber, driver.CarModel, driver.CarMake, driver.IsVerified,
		driver.TotalEarnings, driver.CompletedRides, driver.CreatedAt, driver.UpdatedAt)
	return err
}

func (r *driverRepository) GetByUserID(ctx context.Context, userID string) (*models.Driver, error) {
	var driver models.Driver
	query := `SELECT * FROM drivers WHERE user_id = $1`
	err := r.db.GetContext(ctx, &driver, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &driver, err
}
