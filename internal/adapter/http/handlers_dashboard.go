package adapthttp

import (
	"net/http"

	"weightboard/internal/app"
	"weightboard/internal/domain"
)

// handleDashboard returns everything the dashboard needs in one round-trip:
// the full entry list (newest first), the target weight and the derived
// metrics. Called on load and again after every successful mutation, so the
// UI never patches state locally.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}

	entries, err := s.entries.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	target, err := s.profile.Target(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.WeighIn{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"today":    domain.Today(),
		"entries":  entries,
		"targetKg": target,
		"metrics":  app.ComputeMetrics(entries, target),
	})
}
