package service

import (
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
)

// DeriveEarnings recomputes earnings from scratch. Every ride gets an entry in
// PerRide (0 by default) and a booking only counts when its joined ride has a
// completion flag of exactly true, so Total always equals the sum of PerRide.
func DeriveEarnings(rides []*models.Ride, bookings []*models.EarningsBooking) *models.Earnings {
	earnings := &models.Earnings{
		PerRide: make(map[string]float64, len(rides)),
	}

	for _, ride := range rides {
		earnings.PerRide[ride.ID] = 0
	}

	for _, booking := range bookings {
		if booking.RideCompleted == nil || !*booking.RideCompleted {
			continue
		}
		amount := booking.Amount()
		earnings.Total += amount
		earnings.PerRide[booking.RideID] += amount
	}

	return earnings
}
