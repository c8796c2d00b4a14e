package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "github.com/Sagar0810k/Happy-taxi-full-stack/internal/errors"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/middleware"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
	"github.com/go-chi/chi/v5"
)

func handleError(w http.ResponseWriter, err error) {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		utils.Error(w, apiErr)
		return
	}

	log.Printf("unhandled error: %v", err)
	utils.InternalError(w, "internal server error")
}

// sessionOrReject returns the caller's session. Routes are mounted behind
// RequireDriver, so a missing session means the router was wired wrong.
func sessionOrReject(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		utils.Unauthorized(w, "missing session")
	}
	return session, ok
}

// rideIDParam reads and checks the {id} path segment.
func rideIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.BadRequest(w, "ride id is required")
		return "", false
	}
	if !utils.IsValidUUID(id) {
		utils.NotFound(w, "ride")
		return "", false
	}
	return id, true
}
