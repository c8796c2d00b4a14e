package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
)

func TestListEarningsOnlyJoinsCompletedRides(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM bookings b INNER JOIN rides r ON r.id = b.ride_id WHERE r.driver_id = \$1 AND r.is_ride_completed = TRUE`).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "ride_id", "user_id", "seats_booked", "status", "ride_price", "ride_is_completed"}).
			AddRow("b1", "r1", "c1", int64(3), models.BookingStatusCompleted, 500.0, true))

	bookings, err := NewBookingRepository(db).ListEarningsByDriverID(context.Background(), "d1")
	if err != nil {
		t.Fatalf("ListEarningsByDriverID() error = %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	b := bookings[0]
	if b.RidePrice != 500 || b.RideCompleted == nil || !*b.RideCompleted || b.SeatsBooked != 3 {
		t.Errorf("booking = %+v", b)
	}
}

func TestCancelByRideIDReportsRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE ride_id = \$2`).
		WithArgs(models.BookingStatusCancelled, "r1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewBookingRepository(db).CancelByRideID(context.Background(), "r1")
	if err != nil || n != 3 {
		t.Errorf("CancelByRideID() = %d, %v; want 3, nil", n, err)
	}
}

func TestGetOwnerMissingBooking(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT b.id AS booking_id, b.user_id AS customer_id, b.ride_id, r.driver_id FROM bookings b`).
		WithArgs("b404").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "customer_id", "ride_id", "driver_id"}))

	owner, err := NewBookingRepository(db).GetOwner(context.Background(), "b404")
	if err != nil || owner != nil {
		t.Errorf("GetOwner() = %+v, %v; want nil, nil", owner, err)
	}
}
