package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RideRepository mutations that change status are conditional on the ride
// still being active and owned by driverID; they return
// apperrors.ErrInvalidTransition when no row matched.
type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id string) (*models.Ride, error)
	ListByDriverID(ctx context.Context, driverID string) ([]*models.Ride, error)
	UpdatePrice(ctx context.Context, id, driverID string, price float64) error
	Complete(ctx context.Context, id, driverID string) error
	Cancel(ctx context.Context, id, driverID string) error
}

type rideRepository struct {
	db *sqlx.DB
}

func NewRideRepository(db *sqlx.DB) RideRepository {
	return &rideRepository{db: db}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	if ride.ID == "" {
		ride.ID = uuid.New().String()
	}
	ride.CreatedAt = time.Now()
	ride.UpdatedAt = time.Now()
	ride.Status = models.RideStatusActive
	ride.IsRideCompleted = nil
	ride.AvailableSeats = ride.TotalSeats

	query := `
		INSERT INTO rides (id, driver_id, from_location, to_location, price, total_seats,
			available_seats, departure_time, status, is_ride_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		ride.ID, ride.DriverID, ride.FromLocation, ride.ToLocation, ride.Price, ride.TotalSeats,
		ride.AvailableSeats, ride.DepartureTime, ride.Status, ride.IsRideCompleted,
		ride.CreatedAt, ride.UpdatedAt)
	return err
}

func (r *rideRepository) GetByID(ctx context.Context, id string) (*models.Ride, error) {
	var ride models.Ride
	query := `SELECT * FROM rides WHERE id = $1`
	err := r.db.GetContext(ctx, &ride, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &ride, err
}

func (r *rideRepository) ListByDriverID(ctx context.Context, driverID string) ([]*models.Ride, error) {
	rides := []*models.Ride{}
	query := `SELECT * FROM rides WHERE driver_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &rides, query, driverID)
	return rides, err
}

func (r *rideRepository) UpdatePrice(ctx context.Context, id, driverID string, price float64) error {
	query := `
		UPDATE rides SET price = $1, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query, price, time.Now(), id, driverID, models.RideStatusActive)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Complete marks the ride completed and bumps the driver's completed_rides in
// one transaction, so the counter cannot drift from ride status.
func (r *rideRepository) Complete(ctx context.Context, id, driverID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		UPDATE rides SET status = $1, is_ride_completed = TRUE, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
	`, models.RideStatusCompleted, now, id, driverID, models.RideStatusActive)
	if err != nil {
		return err
	}
	if err := expectOneRow(res); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE drivers SET completed_rides = completed_rides + 1, updated_at = $1 WHERE id = $2",
		now, driverID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rideRepository) Cancel(ctx context.Context, id, driverID string) error {
	query := `
		UPDATE rides SET status = $1, is_ride_completed = FALSE, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		models.RideStatusCancelled, time.Now(), id, driverID, models.RideStatusActive)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrInvalidTransition
	}
	return nil
}
