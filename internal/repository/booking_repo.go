package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListEarningsByDriverID(ctx context.Context, driverID string) ([]*models.EarningsBooking, error)
	ListSummaryByRideID(ctx context.Context, rideID string, statuses []string) ([]*models.BookingSummary, error)
	CancelByRideID(ctx context.Context, rideID string) (int64, error)
	GetOwner(ctx context.Context, bookingID string) (*models.BookingOwner, error)
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}

	query := `
		INSERT INTO bookings (id, ride_id, user_id, seats_booked, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.RideID, booking.UserID, booking.SeatsBooked,
		booking.Status, booking.CreatedAt)
	return err
}

// ListEarningsByDriverID returns bookings whose ride belongs to the driver and
// has is_ride_completed = true, with the ride's price joined in.
func (r *bookingRepository) ListEarningsByDriverID(ctx context.Context, driverID string) ([]*models.EarningsBooking, error) {
	bookings := []*models.EarningsBooking{}
	query := `
		SELECT b.id, b.ride_id, b.user_id, b.seats_booked, b.status, b.created_at,
			r.price AS ride_price, r.is_ride_completed AS ride_is_completed
		FROM bookings b
		INNER JOIN rides r ON r.id = b.ride_id
		WHERE r.driver_id = $1 AND r.is_ride_completed = TRUE
	`
	err := r.db.SelectContext(ctx, &bookings, query, driverID)
	return bookings, err
}

func (r *bookingRepository) ListSummaryByRideID(ctx context.Context, rideID string, statuses []string) ([]*models.BookingSummary, error) {
	summaries := []*models.BookingSummary{}
	query := `
		SELECT b.id, b.seats_booked, b.status, COALESCE(u.phone, '') AS customer_phone
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.ride_id = $1 AND b.status = ANY($2)
		ORDER BY b.created_at
	`
	err := r.db.SelectContext(ctx, &summaries, query, rideID, pq.Array(statuses))
	return summaries, err
}

func (r *bookingRepository) CancelByRideID(ctx context.Context, rideID string) (int64, error) {
	query := `UPDATE bookings SET status = $1 WHERE ride_id = $2`
	res, err := r.db.ExecContext(ctx, query, models.BookingStatusCancelled, rideID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *bookingRepository) GetOwner(ctx context.Context, bookingID string) (*models.BookingOwner, error) {
	var owner models.BookingOwner
	query := `
		SELECT b.id AS booking_id, b.user_id AS customer_id, b.ride_id, r.driver_id
		FROM bookings b
		INNER JOIN rides r ON r.id = b.ride_id
		WHERE b.id = $1
	`
	err := r.db.GetContext(ctx, &owner, query, bookingID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &owner, err
}
