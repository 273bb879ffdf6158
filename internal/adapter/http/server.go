package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"weightboard/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	entries  *app.EntriesService
	profile  *app.ProfileService
	auth     *app.AuthService
	oidc     *OIDC
	webDir   string
	busy     *busyGate
	gestures *gestureTracker
}

// New creates a Server wired to the given application services. oidc may be
// nil when SSO is not configured.
func New(entries *app.EntriesService, profile *app.ProfileService, auth *app.AuthService, oidc *OIDC, webDir string) *Server {
	return &Server{
		entries:  entries,
		profile:  profile,
		auth:     auth,
		oidc:     oidc,
		webDir:   webDir,
		busy:     newBusyGate(),
		gestures: newGestureTracker(),
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/auth/signup", s.handleSignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", s.handleSignIn).Methods(http.MethodPost)
	api.HandleFunc("/auth/signout", s.handleSignOut).Methods(http.MethodPost)
	api.HandleFunc("/auth/config", s.handleAuthConfig).Methods(http.MethodGet)
	if s.oidc != nil && s.oidc.Enabled {
		api.HandleFunc("/auth/sso/login", s.handleSSOLogin).Methods(http.MethodGet)
		api.HandleFunc("/auth/sso/callback", s.handleSSOCallback).Methods(http.MethodGet)
	}

	priv := api.NewRoute().Subrouter()
	priv.Use(s.sessionMiddleware)
	priv.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)

	priv.HandleFunc("/entries", s.handleListEntries).Methods(http.MethodGet)
	priv.HandleFunc("/entries", s.serialized(s.handleAddEntry)).Methods(http.MethodPost)
	priv.HandleFunc("/entries/{id}", s.serialized(s.handleUpdateEntry)).Methods(http.MethodPut)
	priv.HandleFunc("/entries/{id}", s.serialized(s.handleDeleteEntry)).Methods(http.MethodDelete)

	priv.HandleFunc("/target", s.handleGetTarget).Methods(http.MethodGet)
	priv.HandleFunc("/target", s.serialized(s.handleSaveTarget)).Methods(http.MethodPut)

	priv.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	priv.HandleFunc("/chart", s.handleChart).Methods(http.MethodGet)
	priv.HandleFunc("/chart/gesture", s.handleChartGesture).Methods(http.MethodPost)

	// GET-only so wrong-method API calls surface as 405 instead of the SPA.
	r.PathPrefix("/").Methods(http.MethodGet, http.MethodHead).Handler(spaFromDisk(s.webDir))

	return loggingMiddleware(withNoCache(r))
}
