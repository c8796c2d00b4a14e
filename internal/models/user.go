package models

import (
	"time"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

// User is owned by the external auth system; this service only reads it.
type User struct {
	ID        string    `db:"id" json:"id"`
	Phone     string    `db:"phone" json:"phone"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Session is the authenticated caller, built by the auth middleware and passed
// explicitly into every service call.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Phone  string `json:"phone"`
}

func (s Session) IsDriver() bool {
	return s.Role == RoleDriver
}
