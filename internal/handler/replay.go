package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/service"
)

// MutationReplayer stores mutation responses without their dashboard and
// reloads the dashboard when a response is replayed, so a retried request
// never resynchronizes the client to an old snapshot.
type MutationReplayer struct {
	dashboardService service.DashboardService
}

func NewMutationReplayer(dashboardService service.DashboardService) *MutationReplayer {
	return &MutationReplayer{dashboardService: dashboardService}
}

type storedMutation struct {
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result,omitempty"`
}

func (m *MutationReplayer) Snapshot(body []byte) ([]byte, error) {
	var stored storedMutation
	if err := json.Unmarshal(body, &stored); err != nil {
		return nil, err
	}
	return json.Marshal(stored)
}

func (m *MutationReplayer) Replay(w http.ResponseWriter, r *http.Request, status int, stored []byte) {
	session, ok := sessionOrReject(w, r)
	if !ok {
		return
	}

	var mutation storedMutation
	if err := json.Unmarshal(stored, &mutation); err != nil {
		handleError(w, err)
		return
	}

	var result interface{}
	if len(mutation.Result) > 0 {
		result = mutation.Result
	}

	respondMutation(w, r, m.dashboardService, session, status, mutation.Message, result)
}
