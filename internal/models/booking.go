package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// SummaryBookingStatuses are the statuses listed in a ride's booking summary.
var SummaryBookingStatuses = []string{BookingStatusConfirmed, BookingStatusCompleted}

type Booking struct {
	ID          string    `db:"id" json:"id"`
	RideID      string    `db:"ride_id" json:"ride_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	SeatsBooked int       `db:"seats_booked" json:"seats_booked"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EarningsBooking is a booking joined with the fields of its ride that
// earnings derivation needs.
type EarningsBooking struct {
	Booking
	RidePrice     float64 `db:"ride_price"`
	RideCompleted *bool   `db:"ride_is_completed"`
}

// Amount is seats × the ride's current price.
func (b *EarningsBooking) Amount() float64 {
	return float64(b.SeatsBooked) * b.RidePrice
}

// BookingOwner identifies who a booking belongs to and which driver runs its ride.
type BookingOwner struct {
	BookingID  string `db:"booking_id"`
	CustomerID string `db:"customer_id"`
	RideID     string `db:"ride_id"`
	DriverID   string `db:"driver_id"`
}

// BookingSummary is the read-only row shown for a ride's bookings.
type BookingSummary struct {
	ID            string `db:"id" json:"id"`
	SeatsBooked   int    `db:"seats_booked" json:"seats_booked"`
	Status        string `db:"status" json:"status"`
	CustomerPhone string `db:"customer_phone" json:"customer_phone"`
}
