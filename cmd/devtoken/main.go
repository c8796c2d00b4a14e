// Command devtoken mints a driver session token for local testing against
// the dashboard API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/auth"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/config"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
)

func main() {
	userID := flag.String("user", "", "users.id of the driver (required)")
	phone := flag.String("phone", "", "phone shown on the dashboard")
	role := flag.String("role", models.RoleDriver, "session role")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to TOKEN_TTL_MINUTES)")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lifetime := *ttl
	if lifetime == 0 {
		lifetime = time.Duration(cfg.TokenTTLMinutes) * time.Minute
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, lifetime)
	token, err := tokens.Issue(models.Session{UserID: *userID, Role: *role, Phone: *phone})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "\nExample:\n  curl -H 'Authorization: Bearer %s' http://localhost:%s/v1/driver/dashboard\n", token, cfg.Port)
}
