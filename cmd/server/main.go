package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/auth"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/config"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/database"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/handler"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/middleware"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/notify"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/repository"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize New Relic (optional)
	var nrApp *newrelic.Application
	if cfg.NewRelicEnabled && cfg.NewRelicLicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelicAppName),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
			newrelic.ConfigInfoLogger(os.Stdout),
		)
		if err != nil {
			log.Printf("Warning: Failed to initialize New Relic: %v", err)
		} else if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connected")
		}
	}

	// Initialize PostgreSQL
	db, err := database.NewPostgres(
		cfg.DatabaseURL,
		cfg.DBMaxConnections,
		cfg.DBMaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	if cfg.DBMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := db.Migrate(migrateCtx)
		cancel()
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Println("Database migrations applied")
	}

	// Initialize Redis
	redis, err := database.NewRedis(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()
	log.Println("Connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	driverRepo := repository.NewDriverRepository(db.DB)
	rideRepo := repository.NewRideRepository(db.DB)
	bookingRepo := repository.NewBookingRepository(db.DB)
	reviewRepo := repository.NewReviewRepository(db.DB)
	sosRepo := repository.NewSOSRepository(db.DB)

	// Initialize services
	sosPublisher := notify.NewRedisSOSPublisher(redis.Client, cfg.SOSChannel)
	dashboardService := service.NewDashboardService(driverRepo, rideRepo, bookingRepo, userRepo)
	rideService := service.NewRideService(driverRepo, rideRepo, bookingRepo)
	reviewService := service.NewReviewService(driverRepo, bookingRepo, reviewRepo)
	sosService := service.NewSOSService(driverRepo, sosRepo, sosPublisher)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	rideHandler := handler.NewRideHandler(rideService, dashboardService)
	reviewHandler := handler.NewReviewHandler(reviewService, dashboardService)
	sosHandler := handler.NewSOSHandler(sosService, dashboardService)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	// Create router
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyHeader},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Idempotent-Replayed"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.NewRelicMiddleware(nrApp))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := db.Health(ctx); err != nil {
			http.Error(w, "database unhealthy", http.StatusServiceUnavailable)
			return
		}

		if err := redis.Health(ctx); err != nil {
			http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","services":{"database":"up","redis":"up"}}`))
	})

	rateLimiter := middleware.NewRateLimiter(
		redis.Client,
		cfg.RateLimitRequests,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
	)
	idempotencyMw := middleware.NewIdempotencyMiddleware(redis.Client, handler.NewMutationReplayer(dashboardService))

	// Driver routes; the session is resolved before limits and replays so both
	// are keyed per driver.
	r.Route("/v1/driver", func(r chi.Router) {
		r.Use(middleware.RequireDriver(tokens))
		r.Use(rateLimiter.Handler)
		r.Use(idempotencyMw.Handler)

		dashboardHandler.RegisterRoutes(r)
		rideHandler.RegisterRoutes(r)
		reviewHandler.RegisterRoutes(r)
		sosHandler.RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if nrApp != nil {
			nrApp.Shutdown(5 * time.Second)
		}
	}()

	log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.Env)
	log.Println("API endpoints:")
	log.Println("  GET   /v1/driver/dashboard            - Dashboard with derived earnings")
	log.Println("  POST  /v1/driver/rides                - Add ride")
	log.Println("  POST  /v1/driver/rides/{id}/complete  - Complete ride")
	log.Println("  POST  /v1/driver/rides/{id}/cancel    - Cancel ride")
	log.Println("  PATCH /v1/driver/rides/{id}/price     - Edit price")
	log.Println("  GET   /v1/driver/rides/{id}/bookings  - Booking summary")
	log.Println("  POST  /v1/driver/reviews              - Review a customer")
	log.Println("  POST  /v1/driver/sos                  - Raise SOS")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped gracefully")
}
