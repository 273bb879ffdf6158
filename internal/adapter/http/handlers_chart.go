package adapthttp

import (
	"net/http"
	"sync"
	"time"

	"weightboard/internal/app"
	"weightboard/internal/domain"
)

type chartPoint struct {
	Day      string  `json:"day"`
	Label    string  `json:"label"` // DD.MM.YYYY
	WeightKg float64 `json:"weightKg"`
}

type chartResponse struct {
	Offset      int              `json:"offset"`
	WindowSize  int              `json:"windowSize"`
	Total       int              `json:"total"`
	PageCount   int              `json:"pageCount"`
	CurrentPage int              `json:"currentPage"` // zero-based; display 1-based
	MaxOffset   int              `json:"maxOffset"`
	CanNewer    bool             `json:"canNewer"`
	CanOlder    bool             `json:"canOlder"`
	Timeline    app.TimelineMode `json:"timeline"`
	RangeLabel  string           `json:"rangeLabel"`
	Points      []chartPoint     `json:"points"`
}

func buildChartResponse(entries []domain.WeighIn, w app.ChartWindow) chartResponse {
	slice := w.Slice(entries)
	points := make([]chartPoint, 0, len(slice))
	for _, e := range slice {
		points = append(points, chartPoint{
			Day:      e.Day,
			Label:    domain.FormatDayDE(e.Day),
			WeightKg: e.WeightKg,
		})
	}
	return chartResponse{
		Offset:      w.Offset,
		WindowSize:  app.WindowSize,
		Total:       w.Total,
		PageCount:   w.PageCount(),
		CurrentPage: w.CurrentPage(),
		MaxOffset:   w.MaxOffset(),
		CanNewer:    w.Offset > 0,
		CanOlder:    w.Offset < w.MaxOffset(),
		Timeline:    w.Timeline(),
		RangeLabel:  app.RangeLabel(slice),
		Points:      points,
	}
}

// handleChart computes the visible chart window. The client passes its
// current offset (and optionally a navigation action or a target page); the
// server re-clamps on every call, so stale client state cannot break the
// window invariant.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
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

	window := app.NewChartWindow(len(entries), intQuery(r, "offset", 0))
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		window.JumpToPage(intQuery(r, "page", 0))
	}
	switch r.URL.Query().Get("nav") {
	case "older":
		window.GoOlder()
	case "newer":
		window.GoNewer()
	}

	writeJSON(w, http.StatusOK, buildChartResponse(entries, window))
}

// gestureTracker keeps one swipe recognizer per session, so at most one
// gesture is tracked at a time per signed-in client.
type gestureTracker struct {
	mu          sync.Mutex
	recognizers map[string]*app.SwipeRecognizer
}

func newGestureTracker() *gestureTracker {
	return &gestureTracker{recognizers: make(map[string]*app.SwipeRecognizer)}
}

func (t *gestureTracker) get(key string) *app.SwipeRecognizer {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.recognizers[key]
	if !ok {
		rec = &app.SwipeRecognizer{}
		t.recognizers[key] = rec
	}
	return rec
}

func (t *gestureTracker) drop(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.recognizers, key)
}

type gestureRequest struct {
	Phase        string  `json:"phase"` // start | end | cancel
	PointerType  string  `json:"pointerType"`
	X            float64 `json:"x"`
	SurfaceWidth float64 `json:"surfaceWidth"`
	AtMs         int64   `json:"atMs"`
	Offset       int     `json:"offset"`
}

// handleChartGesture feeds pointer events into the session's swipe
// recognizer and, when a gesture resolves, applies the navigation to the
// reported offset and returns the new window.
func (s *Server) handleChartGesture(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeError(w, domain.ErrUnauthenticated)
		return
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		writeError(w, domain.ErrUnauthenticated)
		return
	}

	var req gestureRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, &domain.ValidationError{Reason: err.Error()})
		return
	}
	at := time.UnixMilli(req.AtMs)
	rec := s.gestures.get(cookie.Value)

	switch req.Phase {
	case "start":
		armed := rec.Start(req.PointerType, req.X, req.SurfaceWidth, at)
		writeJSON(w, http.StatusOK, map[string]any{"armed": armed})

	case "end":
		action := rec.End(req.PointerType, req.X, at)

		entries, err := s.entries.List(r.Context(), user.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		window := app.NewChartWindow(len(entries), req.Offset)
		switch action {
		case app.SwipeOlder:
			window.GoOlder()
		case app.SwipeNewer:
			window.GoNewer()
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"action": action.String(),
			"chart":  buildChartResponse(entries, window),
		})

	case "cancel":
		rec.Cancel()
		writeJSON(w, http.StatusOK, map[string]any{"action": app.SwipeNone.String()})

	default:
		writeError(w, &domain.ValidationError{Reason: "unknown gesture phase"})
	}
}
