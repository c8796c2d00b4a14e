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

type ReviewHandler struct {
	reviewService    service.ReviewService
	dashboardService service.DashboardService
	validate         *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService, dashboardService service.DashboardService) *ReviewHandler {
	return &ReviewHandler{
		reviewService:    reviewService,
		dashboardService: dashboardService,
		validate:         validator.New(),
	}
}

func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Post("/reviews", h.SubmitReview)
}

// POST /v1/driver/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}

	var req models.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.BadRequest(w, err.Error())
		return
	}

	review, err := h.reviewService.SubmitReview(r.Context(), session, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondMutation(w, r, h.dashboardService, session, http.StatusCreated, "review submitted successfully", review)
}
