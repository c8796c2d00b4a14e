package service

import (
	"context"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
)

func resolveDriver(ctx context.Context, driverRepo repository.DriverRepository, session models.Session) (*models.Driver, error) {
	driver, err := driverRepo.GetByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperrors.NotFound("driver profile")
	}
	return driver, nil
}

// ownedRide hides rides of other drivers behind the same not-found error.
func ownedRide(ctx context.Context, rideRepo repository.RideRepository, driverID, rideID string) (*models.Ride, error) {
	ride, err := rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil || ride.DriverID != driverID {
		return nil, apperrors.NotFound("ride")
	}
	return ride, nil
}
