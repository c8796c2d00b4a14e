package models

import (
	"time"
)

// Review is a driver's rating of the customer behind one booking.
type Review struct {
	ID         string    `db:"id" json:"id"`
	DriverID   string    `db:"driver_id" json:"driver_id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	BookingID  string    `db:"booking_id" json:"booking_id"`
	Rating     int       `db:"rating" json:"rating"`
	Review     string    `db:"review" json:"review"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type SubmitReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
}
