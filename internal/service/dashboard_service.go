package service

import (
	"context"
	"log"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
)

type DashboardService interface {
	Load(ctx context.Context, session models.Session) (*models.Dashboard, error)
}

type dashboardService struct {
	driverRepo  repository.DriverRepository
	rideRepo    repository.RideRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
}

func NewDashboardService(
	driverRepo repository.DriverRepository,
	rideRepo repository.RideRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardService{
		driverRepo:  driverRepo,
		rideRepo:    rideRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

func (s *dashboardService) Load(ctx context.Context, session models.Session) (*models.Dashboard, error) {
	driver, err := s.driverRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		log.Printf("failed to fetch driver for user %s: %v", session.UserID, err)
		return nil, apperrors.LoadFailed()
	}
	if driver == nil {
		return nil, apperrors.NotFound("driver profile")
	}

	rides, err := s.rideRepo.ListByDriverID(ctx, driver.ID)
	if err != nil {
		log.Printf("failed to fetch rides for driver %s: %v", driver.ID, err)
		return nil, apperrors.LoadFailed()
	}

	// Earnings are secondary: a failed bookings fetch leaves them at zero.
	stale := false
	bookings, err := s.bookingRepo.ListEarningsByDriverID(ctx, driver.ID)
	if err != nil {
		log.Printf("failed to fetch earnings bookings for driver %s: %v", driver.ID, err)
		bookings = nil
		stale = true
	}

	earnings := DeriveEarnings(rides, bookings)

	dashboard := &models.Dashboard{
		Phone:         s.phoneFor(ctx, session),
		Driver:        driver.ToResponse(),
		Rides:         make([]*models.RideResponse, 0, len(rides)),
		Earnings:      earnings,
		EarningsStale: stale,
		Stats: models.DashboardStats{
			TotalRides:     len(rides),
			CompletedRides: driver.CompletedRides,
			TotalEarnings:  earnings.Total,
		},
	}

	for _, ride := range rides {
		if ride.IsActive() {
			dashboard.Stats.ActiveRides++
		}
		dashboard.Rides = append(dashboard.Rides, ride.ToResponse(earnings.PerRide[ride.ID]))
	}

	return dashboard, nil
}

func (s *dashboardService) phoneFor(ctx context.Context, session models.Session) string {
	if session.Phone != "" || s.userRepo == nil {
		return session.Phone
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return ""
	}
	return user.Phone
}
