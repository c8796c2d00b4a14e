package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review. The UNIQUE(booking_id) constraint is the only
// duplicate guard; a violation comes back as apperrors.ErrAlreadyReviewed.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO driver_reviews (id, driver_id, customer_id, booking_id, rating, review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.DriverID, review.CustomerID, review.BookingID,
		review.Rating, review.Review, review.CreatedAt)
	if isUniqueViolation(err) {
		return apperrors.ErrAlreadyReviewed
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
