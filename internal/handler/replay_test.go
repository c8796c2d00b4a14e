package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/middleware"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/redistest"
	"github.com/go-chi/chi/v5"
)

const otherRideID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

func newReplayRouter(store *redistest.Store, rides *stubRideService, dashboard *stubDashboardService) chi.Router {
	r := chi.NewRouter()
	r.Route("/v1/driver", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				session := models.Session{UserID: "u1", Role: models.RoleDriver}
				next.ServeHTTP(w, req.WithContext(middleware.WithSession(req.Context(), session)))
			})
		})
		r.Use(middleware.NewIdempotencyMiddleware(store, NewMutationReplayer(dashboard)).Handler)
		NewRideHandler(rides, dashboard).RegisterRoutes(r)
	})
	return r
}

func completeWithKey(r chi.Router, rideID, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/driver/rides/"+rideID+"/complete", nil)
	req.Header.Set(middleware.IdempotencyHeader, key)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func earningsTotal(t *testing.T, rec *httptest.ResponseRecorder) float64 {
	t.Helper()
	var resp struct {
		Message   string `json:"message"`
		Dashboard *struct {
			Earnings struct {
				Total float64 `json:"total"`
			} `json:"earnings"`
		} `json:"dashboard"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "" || resp.Dashboard == nil {
		t.Fatalf("response missing message or dashboard: %+v", resp)
	}
	return resp.Dashboard.Earnings.Total
}

func TestReplayedMutationReloadsDashboard(t *testing.T) {
	store := redistest.New()
	rides := &stubRideService{}
	dashboard := &stubDashboardService{total: 500}
	router := newReplayRouter(store, rides, dashboard)

	first := completeWithKey(router, testRideID, "k1")
	if first.Code != http.StatusOK {
		t.Fatalf("first: status = %d: %s", first.Code, first.Body.String())
	}
	if got := earningsTotal(t, first); got != 500 {
		t.Fatalf("first total = %v, want 500", got)
	}

	// Another completion changes earnings before the first one is retried.
	dashboard.total = 1000
	if rec := completeWithKey(router, otherRideID, "k2"); rec.Code != http.StatusOK {
		t.Fatalf("second: status = %d", rec.Code)
	}

	stored, ok := store.Value("idempotency:u1:k1")
	if !ok {
		t.Fatal("first response not stored")
	}
	var entry struct {
		Body []byte `json:"body"`
	}
	if err := json.Unmarshal([]byte(stored), &entry); err != nil {
		t.Fatalf("decode stored entry: %v", err)
	}
	if strings.Contains(string(entry.Body), "dashboard") || strings.Contains(string(entry.Body), "earnings") {
		t.Errorf("stored entry carries derived state: %s", entry.Body)
	}

	replay := completeWithKey(router, testRideID, "k1")
	if replay.Code != http.StatusOK {
		t.Fatalf("replay: status = %d: %s", replay.Code, replay.Body.String())
	}
	if replay.Header().Get("Idempotent-Replayed") != "true" {
		t.Error("replay not marked")
	}
	if rides.calls != 2 {
		t.Errorf("CompleteRide called %d times, want 2", rides.calls)
	}
	if got := earningsTotal(t, replay); got != 1000 {
		t.Errorf("replay total = %v, want current 1000", got)
	}
}

func TestReplayKeepsResult(t *testing.T) {
	replayer := NewMutationReplayer(&stubDashboardService{total: 0})

	body := `{"message":"review submitted successfully","result":{"booking_id":"b1","rating":5},"dashboard":{"phone":"x"}}`
	stored, err := replayer.Snapshot([]byte(body))
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/driver/reviews", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), models.Session{UserID: "u1", Role: models.RoleDriver}))
	rec := httptest.NewRecorder()
	replayer.Replay(rec, req, http.StatusCreated, stored)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	resp := decodeBody(t, rec)
	result, _ := resp["result"].(map[string]interface{})
	if result["booking_id"] != "b1" || resp["message"] != "review submitted successfully" {
		t.Errorf("replayed body = %v", resp)
	}
	if resp["dashboard"] == nil {
		t.Error("replay did not reload the dashboard")
	}
}
