package models

// Earnings is always derived from the current rides and bookings; it is
// never persisted.
type Earnings struct {
	Total   float64            `json:"total"`
	PerRide map[string]float64 `json:"per_ride"`
}

type DashboardStats struct {
	TotalRides     int     `json:"total_rides"`
	ActiveRides    int     `json:"active_rides"`
	CompletedRides int     `json:"completed_rides"`
	TotalEarnings  float64 `json:"total_earnings"`
}

type Dashboard struct {
	Phone         string          `json:"phone"`
	Driver        *DriverResponse `json:"driver"`
	Rides         []*RideResponse `json:"rides"`
	Earnings      *Earnings       `json:"earnings"`
	EarningsStale bool            `json:"earnings_stale"`
	Stats         DashboardStats  `json:"stats"`
}

// MutationResponse is returned by every state-changing call together with the
// re-fetched dashboard.
type MutationResponse struct {
	Message   string      `json:"message"`
	Result    interface{} `json:"result,omitempty"`
	Dashboard *Dashboard  `json:"dashboard,omitempty"`
}
