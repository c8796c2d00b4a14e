package handler

import (
	"log"
	"net/http"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/service"
	"github.com/Sagar0810k/Happy-taxi-full-stack/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.GetDashboard)
}

// GET /v1/driver/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Load(r.Context(), session)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, dashboard)
}

// respondMutation reports a successful change together with a freshly loaded
// dashboard. A failed reload does not turn the mutation into an error.
func respondMutation(w http.ResponseWriter, r *http.Request, dashboards service.DashboardService, session models.Session, status int, message string, result interface{}) {
	resp := &models.MutationResponse{
		Message: message,
		Result:  result,
	}

	if dashboards != nil {
		dashboard, err := dashboards.Load(r.Context(), session)
		if err != nil {
			log.Printf("dashboard reload after %q failed for user %s: %v", message, session.UserID, err)
		} else {
			resp.Dashboard = dashboard
		}
	}

	utils.Success(w, status, resp)
}
