package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/service"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SOSHandler struct {
	sosService       service.SOSService
	dashboardService service.DashboardService
	validate         *validator.Validate
}

func NewSOSHandler(sosService service.SOSService, dashboardService service.DashboardService) *SOSHandler {
	return &SOSHandler{
		sosService:       sosService,
		dashboardService: dashboardService,
		validate:         validator.New(),
	}
}

func (h *SOSHandler) RegisterRoutes(r chi.Router) {
	r.Post("/sos", h.RaiseSOS)
}

// POST /v1/driver/sos
// The body is optional: an SOS must go out even when the client sends nothing.
func (h *SOSHandler) RaiseSOS(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}

	var req models.RaiseSOSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	alert, err := h.sosService.RaiseSOS(r.Context(), session, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondMutation(w, r, h.dashboardService, session, http.StatusCreated, "SOS alert sent, emergency services have been notified", alert)
}
