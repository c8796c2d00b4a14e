package service

import (
	"errors"
	"testing"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
)

type fixture struct {
	store     *memStore
	driver    *models.Driver
	session   models.Session
	publisher *fakePublisher

	dashboard DashboardService
	rides     RideService
	reviews   ReviewService
	sos       SOSService
}

func newFixture(verified bool) *fixture {
	store := newMemStore()
	driver := store.addDriver("u1", verified)
	publisher := &fakePublisher{}

	users := fakeUserRepo{store}
	drivers := fakeDriverRepo{store}
	rides := fakeRideRepo{store}
	bookings := fakeBookingRepo{store}

	return &fixture{
		store:     store,
		driver:    driver,
		session:   models.Session{UserID: "u1", Role: models.RoleDriver, Phone: "9800000001"},
		publisher: publisher,
		dashboard: NewDashboardService(drivers, rides, bookings, users),
		rides:     NewRideService(drivers, rides, bookings),
		reviews:   NewReviewService(drivers, bookings, fakeReviewRepo{store}),
		sos:       NewSOSService(drivers, fakeSOSRepo{store}, publisher),
	}
}

func assertAPIError(t *testing.T, err error, code string) {
	t.Helper()
	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError %q", err, code)
	}
	if apiErr.Code != code {
		t.Fatalf("error code = %q (%s), want %q", apiErr.Code, apiErr.Message, code)
	}
}
