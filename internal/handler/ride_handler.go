package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/service"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type RideHandler struct {
	rideService      service.RideService
	dashboardService service.DashboardService
	validate         *validator.Validate
}

func NewRideHandler(rideService service.RideService, dashboardService service.DashboardService) *RideHandler {
	return &RideHandler{
		rideService:      rideService,
		dashboardService: dashboardService,
		validate:         validator.New(),
	}
}

func (h *RideHandler) RegisterRoutes(r chi.Router) {
	r.Post("/rides", h.AddRide)
	r.Post("/rides/{id}/complete", h.CompleteRide)
	r.Post("/rides/{id}/cancel", h.CancelRide)
	r.Patch("/rides/{id}/price", h.EditPrice)
	r.Get("/rides/{id}/bookings", h.BookingSummary)
}

// POST /v1/driver/rides
func (h *RideHandler) AddRide(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}

	var req models.CreateRideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	ride, err := h.rideService.AddRide(r.Context(), session, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondMutation(w, r, h.dashboardService, session, http.StatusCreated, "ride added successfully", ride.ToResponse(0))
}

// POST /v1/driver/rides/{id}/complete
func (h *RideHandler) CompleteRide(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}
	id, ok := rideIDParam(w, r)
	if !ok {
		return
	}

	if err := h.rideService.CompleteRide(r.Context(), session, id); err != nil {
		handleError(w, err)
		return
	}

	respondMutation(w, r, h.dashboardService, session, http.StatusOK, "ride marked as completed and driver stats updated", nil)
}

// POST /v1/driver/rides/{id}/cancel
func (h *RideHandler) CancelRide(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}
	id, ok := rideIDParam(w, r)
	if !ok {
		return
	}

	if err := h.rideService.CancelRide(r.Context(), session, id); err != nil {
		handleError(w, err)
		return
	}

	respondMutation(w, r, h.dashboardService, session, http.StatusOK, "ride cancelled successfully, associated bookings have been cancelled", nil)
}

// PATCH /v1/driver/rides/{id}/price
func (h *RideHandler) EditPrice(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}
	id, ok := rideIDParam(w, r)
	if !ok {
		return
	}

	var req models.EditRidePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, "please enter a valid number for price")
		return
	}

	if err := h.rideService.EditPrice(r.Context(), session, id, &req); err != nil {
		handleError(w, err)
		return
	}

	respondMutation(w, r, h.dashboardService, session, http.StatusOK, "ride updated successfully", nil)
}

// GET /v1/driver/rides/{id}/bookings
func (h *RideHandler) BookingSummary(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}
	id, ok := rideIDParam(w, r)
	if !ok {
		return
	}

	bookings, err := h.rideService.BookingSummary(r.Context(), session, id)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, map[string]interface{}{
		"ride_id":  id,
		"bookings": bookings,
	})
}
