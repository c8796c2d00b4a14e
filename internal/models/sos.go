package models

import (
	"time"
)

const (
	SOSStatusActive    = "active"
	SOSDefaultLocation = "Current Location"
)

type SOSAlert struct {
	ID        string    `db:"id" json:"id"`
	DriverID  string    `db:"driver_id" json:"driver_id"`
	Location  string    `db:"location" json:"location"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RaiseSOSRequest struct {
	Location string `json:"location,omitempty" validate:"max=200"`
}
