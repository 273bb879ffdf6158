package app

import "time"

// Swipe gesture tuning. Values match the touch behaviour of the web UI:
// a horizontal move of at least 45 logical px within 900ms pages the chart,
// and starts within 28px of either surface edge are ignored so system
// edge-swipe gestures are not hijacked.
const (
	SwipeEdgeMarginPx = 28.0
	SwipeThresholdPx  = 45.0
	SwipeMaxDuration  = 900 * time.Millisecond
	pointerTypeTouch  = "touch"
)

// SwipeAction is the navigation resolved from a completed gesture.
type SwipeAction int

const (
	// SwipeNone means the gesture did not resolve to a page change.
	SwipeNone SwipeAction = iota
	// SwipeOlder pages towards older entries (finger moved left).
	SwipeOlder
	// SwipeNewer pages towards newer entries (finger moved right).
	SwipeNewer
)

func (a SwipeAction) String() string {
	switch a {
	case SwipeOlder:
		return "older"
	case SwipeNewer:
		return "newer"
	default:
		return "none"
	}
}

type swipeState int

const (
	swipeIdle swipeState = iota
	swipeArmed
)

// SwipeRecognizer tracks at most one in-flight touch gesture over the chart
// surface. Only touch pointers arm it; mouse and pen input never page via
// gesture. A new Start while armed overwrites the pending gesture.
type SwipeRecognizer struct {
	state     swipeState
	startX    float64
	startedAt time.Time
}

// Armed reports whether a gesture start is currently tracked.
func (r *SwipeRecognizer) Armed() bool {
	return r.state == swipeArmed
}

// Start records a gesture start. It reports whether the recognizer armed:
// non-touch pointers and starts inside the edge margin are rejected.
func (r *SwipeRecognizer) Start(pointerType string, x, surfaceWidth float64, at time.Time) bool {
	if pointerType != pointerTypeTouch {
		return false
	}
	if x <= SwipeEdgeMarginPx || x >= surfaceWidth-SwipeEdgeMarginPx {
		// Too close to an edge; leave any previous gesture untouched.
		return false
	}
	r.state = swipeArmed
	r.startX = x
	r.startedAt = at
	return true
}

// End completes the gesture and resolves it to a navigation action. The
// recognizer returns to idle regardless of outcome.
func (r *SwipeRecognizer) End(pointerType string, x float64, at time.Time) SwipeAction {
	if r.state != swipeArmed || pointerType != pointerTypeTouch {
		return SwipeNone
	}
	dx := x - r.startX
	dt := at.Sub(r.startedAt)
	r.state = swipeIdle

	if dt > SwipeMaxDuration {
		return SwipeNone
	}
	switch {
	case dx <= -SwipeThresholdPx:
		return SwipeOlder
	case dx >= SwipeThresholdPx:
		return SwipeNewer
	default:
		return SwipeNone
	}
}

// Cancel discards a pending gesture without navigation (pointer capture
// lost, interrupted).
func (r *SwipeRecognizer) Cancel() {
	r.state = swipeIdle
}
