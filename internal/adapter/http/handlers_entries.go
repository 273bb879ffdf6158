package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"weightboard/internal/domain"
)

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
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
	if entries == nil {
		entries = []domain.WeighIn{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	var body struct {
		Day      string  `json:"day"`
		WeightKg float64 `json:"weightKg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, &domain.ValidationError{Reason: err.Error()})
		return
	}
	entry, err := s.entries.Add(r.Context(), user.ID, body.Day, body.WeightKg)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Debugf("weigh-in added: owner=%d day=%s", user.ID, entry.Day)
	writeJSON(w, http.StatusCreated, map[string]any{"entry": entry})
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	id := mux.Vars(r)["id"]
	var body struct {
		WeightKg float64 `json:"weightKg"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, &domain.ValidationError{Reason: err.Error()})
		return
	}
	if err := s.entries.UpdateWeight(r.Context(), id, user.ID, body.WeightKg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updatedId": id})
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.entries.Delete(r.Context(), id, user.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deletedId": id})
}
