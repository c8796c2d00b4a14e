package models

import (
	"time"
)

// Ride status constants
const (
	RideStatusActive    = "active"
	RideStatusCompleted = "completed"
	RideStatusCancelled = "cancelled"
)

// Seat bounds offered by the add-ride form
const (
	MinRideSeats = 1
	MaxRideSeats = 8
)

// Valid ride state transitions. Completed and cancelled are terminal.
var ValidRideTransitions = map[string][]string{
	RideStatusActive:    {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted: {},
	RideStatusCancelled: {},
}

// Ride is a single offered trip. IsRideCompleted is tri-state:
// nil while unresolved, true once completed (earnings-eligible),
// false once cancelled (earnings-void). It always moves with Status.
type Ride struct {
	ID              string    `db:"id" json:"id"`
	DriverID        string    `db:"driver_id" json:"driver_id"`
	FromLocation    string    `db:"from_location" json:"from_location"`
	ToLocation      string    `db:"to_location" json:"to_location"`
	Price           float64   `db:"price" json:"price"`
	TotalSeats      int       `db:"total_seats" json:"total_seats"`
	AvailableSeats  int       `db:"available_seats" json:"available_seats"`
	DepartureTime   time.Time `db:"departure_time" json:"departure_time"`
	Status          string    `db:"status" json:"status"`
	IsRideCompleted *bool     `db:"is_ride_completed" json:"is_ride_completed"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CreateRideRequest keeps price and seats as strings so non-numeric input is
// rejected by validation instead of by the JSON decoder.
type CreateRideRequest struct {
	FromLocation  string `json:"from_location" validate:"required,max=200"`
	ToLocation    string `json:"to_location" validate:"required,max=200"`
	Price         string `json:"price" validate:"required,numeric"`
	TotalSeats    string `json:"total_seats" validate:"required,number"`
	DepartureTime string `json:"departure_time" validate:"required"`
}

type EditRidePriceRequest struct {
	Price string `json:"price" validate:"required"`
}

type RideResponse struct {
	ID              string    `json:"id"`
	FromLocation    string    `json:"from_location"`
	ToLocation      string    `json:"to_location"`
	Price           float64   `json:"price"`
	TotalSeats      int       `json:"total_seats"`
	AvailableSeats  int       `json:"available_seats"`
	DepartureTime   time.Time `json:"departure_time"`
	Status          string    `json:"status"`
	IsRideCompleted *bool     `json:"is_ride_completed"`
	Earnings        float64   `json:"earnings"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *Ride) ToResponse(earnings float64) *RideResponse {
	return &RideResponse{
		ID:              r.ID,
		FromLocation:    r.FromLocation,
		ToLocation:      r.ToLocation,
		Price:           r.Price,
		TotalSeats:      r.TotalSeats,
		AvailableSeats:  r.AvailableSeats,
		DepartureTime:   r.DepartureTime,
		Status:          r.Status,
		IsRideCompleted: r.IsRideCompleted,
		Earnings:        earnings,
		CreatedAt:       r.CreatedAt,
	}
}

// CanTransitionTo checks if a ride can transition to a new status
func (r *Ride) CanTransitionTo(newStatus string) bool {
	validNextStates, exists := ValidRideTransitions[r.Status]
	if !exists {
		return false
	}

	for _, state := range validNextStates {
		if state == newStatus {
			return true
		}
	}
	return false
}

// IsActive returns true if the ride is not in a terminal state
func (r *Ride) IsActive() bool {
	return r.Status == RideStatusActive
}

// IsEarningsEligible reports whether bookings on this ride count toward earnings.
func (r *Ride) IsEarningsEligible() bool {
	return r.IsRideCompleted != nil && *r.IsRideCompleted
}
