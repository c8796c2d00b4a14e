package models

import (
	"time"
)

// Driver is the driver profile attached to an authenticated user. Verification
// is set by an admin elsewhere; CompletedRides is bumped by ride completion.
type Driver struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	PhotographURL  string    `db:"photograph_url" json:"photograph_url"`
	PrimaryPhone   string    `db:"primary_phone" json:"primary_phone"`
	SecondaryPhone *string   `db:"secondary_phone" json:"secondary_phone,omitempty"`
	Address        string    `db:"address" json:"address"`
	VehicleNumber  string    `db:"vehicle_number" json:"vehicle_number"`
	CarModel       string    `db:"car_model" json:"car_model"`
	CarMake        string    `db:"car_make" json:"car_make"`
	IsVerified     bool      `db:"is_verified" json:"is_verified"`
	TotalEarnings  float64   `db:"total_earnings" json:"total_earnings"`
	CompletedRides int       `db:"completed_rides" json:"completed_rides"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type DriverResponse struct {
	ID             string  `json:"id"`
	PhotographURL  string  `json:"photograph_url"`
	PrimaryPhone   string  `json:"primary_phone"`
	SecondaryPhone *string `json:"secondary_phone,omitempty"`
	Address        string  `json:"address"`
	VehicleNumber  string  `json:"vehicle_number"`
	CarModel       string  `json:"car_model"`
	CarMake        string  `json:"car_make"`
	IsVerified     bool    `json:"is_verified"`
	CompletedRides int     `json:"completed_rides"`
}

func (d *Driver) ToResponse() *DriverResponse {
	return &DriverResponse{
		ID:             d.ID,
		PhotographURL:  d.PhotographURL,
		PrimaryPhone:   d.PrimaryPhone,
		SecondaryPhone: d.SecondaryPhone,
		Address:        d.Address,
		VehicleNumber:  d.VehicleNumber,
		CarModel:       d.CarModel,
		CarMake:        d.CarMake,
		IsVerified:     d.IsVerified,
		CompletedRides: d.CompletedRides,
	}
}
