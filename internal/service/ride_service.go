package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
)

// Layouts accepted for departure_time: RFC3339 and the zone-less form a
// datetime-local input produces (interpreted as UTC).
var departureLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

type RideService interface {
	AddRide(ctx context.Context, session models.Session, req *models.CreateRideRequest) (*models.Ride, error)
	CompleteRide(ctx context.Context, session models.Session, rideID string) error
	CancelRide(ctx context.Context, session models.Session, rideID string) error
	EditPrice(ctx context.Context, session models.Session, rideID string, req *models.EditRidePriceRequest) error
	BookingSummary(ctx context.Context, session models.Session, rideID string) ([]*models.BookingSummary, error)
}

type rideService struct {
	driverRepo  repository.DriverRepository
	rideRepo    repository.RideRepository
	bookingRepo repository.BookingRepository
}

func NewRideService(
	driverRepo repository.DriverRepository,
	rideRepo repository.RideRepository,
	bookingRepo repository.BookingRepository,
) RideService {
	return &rideService{
		driverRepo:  driverRepo,
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *rideService) AddRide(ctx context.Context, session models.Session, req *models.CreateRideRequest) (*models.Ride, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	seats, err := strconv.Atoi(strings.TrimSpace(req.TotalSeats))
	if err != nil {
		return nil, apperrors.BadRequest("please enter a valid number of seats")
	}
	if seats < models.MinRideSeats || seats > models.MaxRideSeats {
		return nil, apperrors.BadRequest("total seats must be between 1 and 8")
	}

	departure, err := parseDeparture(req.DepartureTime)
	if err != nil {
		return nil, err
	}

	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return nil, err
	}
	if !driver.IsVerified {
		return nil, apperrors.DriverNotVerified()
	}

	ride := &models.Ride{
		DriverID:      driver.ID,
		FromLocation:  strings.TrimSpace(req.FromLocation),
		ToLocation:    strings.TrimSpace(req.ToLocation),
		Price:         price,
		TotalSeats:    seats,
		DepartureTime: departure,
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	return ride, nil
}

func (s *rideService) CompleteRide(ctx context.Context, session models.Session, rideID string) error {
	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return err
	}

	ride, err := ownedRide(ctx, s.rideRepo, driver.ID, rideID)
	if err != nil {
		return err
	}

	if !ride.CanTransitionTo(models.RideStatusCompleted) {
		return apperrors.InvalidTransition(ride.Status, models.RideStatusCompleted)
	}

	if err := s.rideRepo.Complete(ctx, ride.ID, driver.ID); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			return apperrors.Conflict("ride is no longer active")
		}
		return err
	}

	return nil
}

func (s *rideService) CancelRide(ctx context.Context, session models.Session, rideID string) error {
	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return err
	}

	ride, err := ownedRide(ctx, s.rideRepo, driver.ID, rideID)
	if err != nil {
		return err
	}

	if !ride.CanTransitionTo(models.RideStatusCancelled) {
		return apperrors.InvalidTransition(ride.Status, models.RideStatusCancelled)
	}

	if err := s.rideRepo.Cancel(ctx, ride.ID, driver.ID); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			return apperrors.Conflict("ride is no longer active")
		}
		return err
	}

	// The ride cancellation stands even if its bookings cannot be cancelled.
	n, err := s.bookingRepo.CancelByRideID(ctx, ride.ID)
	if err != nil {
		log.Printf("failed to cancel bookings for ride %s: %v", ride.ID, err)
	} else {
		log.Printf("cancelled %d bookings for ride %s", n, ride.ID)
	}

	return nil
}

func (s *rideService) EditPrice(ctx context.Context, session models.Session, rideID string, req *models.EditRidePriceRequest) error {
	price, err := parsePrice(req.Price)
	if err != nil {
		return err
	}

	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return err
	}

	ride, err := ownedRide(ctx, s.rideRepo, driver.ID, rideID)
	if err != nil {
		return err
	}

	if !ride.IsActive() {
		return apperrors.BadRequest("only active rides can be edited")
	}

	if err := s.rideRepo.UpdatePrice(ctx, ride.ID, driver.ID, price); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			return apperrors.Conflict("ride is no longer active")
		}
		return err
	}

	return nil
}

func (s *rideService) BookingSummary(ctx context.Context, session models.Session, rideID string) ([]*models.BookingSummary, error) {
	driver, err := resolveDriver(ctx, s.driverRepo, session)
	if err != nil {
		return nil, err
	}

	ride, err := ownedRide(ctx, s.rideRepo, driver.ID, rideID)
	if err != nil {
		return nil, err
	}

	return s.bookingRepo.ListSummaryByRideID(ctx, ride.ID, models.SummaryBookingStatuses)
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, apperrors.BadRequest("please enter a valid number for price")
	}
	if price < 0 {
		return 0, apperrors.BadRequest("price cannot be negative")
	}
	return price, nil
}

func parseDeparture(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.BadRequest("please enter a valid departure time")
}
