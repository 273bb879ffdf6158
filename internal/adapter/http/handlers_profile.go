package adapthttp

import (
	"net/http"

	"weightboard/internal/domain"
)

func (s *Server) handleGetTarget(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	target, err := s.profile.Target(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"targetKg": target})
}

func (s *Server) handleSaveTarget(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	var body struct {
		TargetKg float64 `json:"targetKg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, &domain.ValidationError{Reason: err.Error()})
		return
	}
	if err := s.profile.SaveTarget(r.Context(), user.ID, body.TargetKg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "target saved"})
}
