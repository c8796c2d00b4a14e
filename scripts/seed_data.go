//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/auth"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/config"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/database"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
)

var (
	cities   = []string{"Pune", "Mumbai", "Nashik", "Lonavala", "Satara", "Kolhapur", "Aurangabad", "Nagpur"}
	carMakes = []struct{ make, model string }{
		{"Maruti", "Dzire"}, {"Toyota", "Innova"}, {"Hyundai", "Aura"}, {"Mahindra", "Marazzo"},
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.DatabaseURL, cfg.DBMaxConnections, cfg.DBMaxIdleConnections)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db.DB)
	driverRepo := repository.NewDriverRepository(db.DB)
	rideRepo := repository.NewRideRepository(db.DB)
	bookingRepo := repository.NewBookingRepository(db.DB)

	log.Println("Creating 30 customers...")
	customers := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		user := &models.User{Phone: fmt.Sprintf("98%08d", rand.Intn(100000000)), Role: models.RoleCustomer}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Printf("Failed to create customer: %v", err)
			continue
		}
		customers = append(customers, user.ID)
	}
	if len(customers) == 0 {
		log.Fatal("No customers created")
	}

	log.Println("Creating 5 drivers with rides and bookings...")
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	for i := 0; i < 5; i++ {
		phone := fmt.Sprintf("91%08d", rand.Intn(100000000))
		user := &models.User{Phone: phone, Role: models.RoleDriver}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Printf("Failed to create driver user: %v", err)
			continue
		}

		car := carMakes[rand.Intn(len(carMakes))]
		driver := &models.Driver{
			UserID:        user.ID,
			PrimaryPhone:  phone,
			Address:       cities[rand.Intn(len(cities))],
			VehicleNumber: fmt.Sprintf("MH%02d%c%c%04d", rand.Intn(50)+1, 'A'+rand.Intn(26), 'A'+rand.Intn(26), rand.Intn(10000)),
			CarMake:       car.make,
			CarModel:      car.model,
			IsVerified:    i != 0, // the first driver exercises the unverified banner
		}
		if err := driverRepo.Create(ctx, driver); err != nil {
			log.Printf("Failed to create driver: %v", err)
			continue
		}

		completed, active := 0, 0
		for j := 0; j < 6; j++ {
			from := cities[rand.Intn(len(cities))]
			to := cities[rand.Intn(len(cities))]
			ride := &models.Ride{
				DriverID:      driver.ID,
				FromLocation:  from,
				ToLocation:    to,
				Price:         float64(200 + rand.Intn(9)*50),
				TotalSeats:    4,
				DepartureTime: time.Now().Add(time.Duration(rand.Intn(72)-36) * time.Hour),
			}
			if err := rideRepo.Create(ctx, ride); err != nil {
				log.Printf("Failed to create ride: %v", err)
				continue
			}

			seatsLeft := ride.TotalSeats
			for seatsLeft > 0 && rand.Float64() < 0.7 {
				seats := 1 + rand.Intn(seatsLeft)
				seatsLeft -= seats
				booking := &models.Booking{
					RideID:      ride.ID,
					UserID:      customers[rand.Intn(len(customers))],
					SeatsBooked: seats,
					Status:      models.BookingStatusConfirmed,
				}
				if err := bookingRepo.Create(ctx, booking); err != nil {
					log.Printf("Failed to create booking: %v", err)
				}
			}

			switch j % 3 {
			case 0:
				if err := rideRepo.Complete(ctx, ride.ID, driver.ID); err != nil {
					log.Printf("Failed to complete ride: %v", err)
					continue
				}
				completed++
			case 1:
				if err := rideRepo.Cancel(ctx, ride.ID, driver.ID); err != nil {
					log.Printf("Failed to cancel ride: %v", err)
					continue
				}
				if _, err := bookingRepo.CancelByRideID(ctx, ride.ID); err != nil {
					log.Printf("Failed to cancel bookings: %v", err)
				}
			default:
				active++
			}
		}

		token, err := tokens.Issue(models.Session{UserID: user.ID, Role: models.RoleDriver, Phone: phone})
		if err != nil {
			log.Printf("Failed to issue token: %v", err)
			continue
		}
		log.Printf("Driver %s (verified=%v): %d completed, %d active rides", driver.ID, driver.IsVerified, completed, active)
		log.Printf("  Authorization: Bearer %s", token)
	}

	log.Println("Seed complete")
}
