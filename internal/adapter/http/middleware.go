package adapthttp

import (
	"context"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"weightboard/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

const sessionCookieName = "session"

// sessionMiddleware resolves the session cookie to a user and stores it in
// the request context. Requests without a valid session are rejected before
// any data is touched.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		user, err := s.auth.ValidateSession(r.Context(), cookie.Value)
		if err != nil {
			// The token is dead (expired or revoked); release any swipe
			// recognizer still held for it.
			s.gestures.drop(cookie.Value)
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFrom returns the authenticated user placed by sessionMiddleware.
func userFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userContextKey).(*domain.User)
	return u, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs each request with method, path, status and timing.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}

// busyGate serializes mutating requests per session: while one mutation is
// in flight, further ones are refused rather than queued. A hung request
// keeps the gate held until its transport gives up; that is accepted.
type busyGate struct {
	mu   sync.Mutex
	busy map[string]bool
}

func newBusyGate() *busyGate {
	return &busyGate{busy: make(map[string]bool)}
}

func (g *busyGate) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy[key] {
		return false
	}
	g.busy[key] = true
	return true
}

func (g *busyGate) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, key)
}

// serialized wraps a mutating handler with the per-session busy gate.
func (s *Server) serialized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		if !s.busy.acquire(cookie.Value) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error": "another change is still being saved",
			})
			return
		}
		defer s.busy.release(cookie.Value)
		next(w, r)
	}
}
