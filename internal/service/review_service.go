package service

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, session models.Session, req *models.SubmitReviewRequest) (*models.Review, error)
}

type reviewService struct {
	driverRepo  repository.DriverRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
}

func NewReviewService(
	driverRepo repository.DriverRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
) ReviewService {
	return &reviewService{
		driverRepo:  driverRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, session models.Session, req *models.SubmitReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.BadRequest("rating must be between 1 and 5")
	}

	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return nil, err
	}

	owner, err := s.bookingRepo.GetOwner(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if owner == nil || owner.DriverID != driver.ID {
		return nil, apperrors.NotFound("booking")
	}

	review := &models.Review{
		DriverID:   driver.ID,
		CustomerID: owner.CustomerID,
		BookingID:  owner.BookingID,
		Rating:     req.Rating,
		Review:     strings.TrimSpace(req.Comment),
	}

	// The store's uniqueness constraint decides; there is no pre-insert lookup.
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyReviewed) {
			return nil, apperrors.AlreadyReviewed()
		}
		return nil, err
	}

	return review, nil
}
