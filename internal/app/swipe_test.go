package app_test

import (
	"testing"
	"time"

	"weightboard/internal/app"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSwipe_ResolvesFastHorizontalMoves(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		dt   time.Duration
		want app.SwipeAction
	}{
		{"fast left", -50, 500 * time.Millisecond, app.SwipeOlder},
		{"fast right", 50, 500 * time.Millisecond, app.SwipeNewer},
		{"exactly threshold left", -45, 900 * time.Millisecond, app.SwipeOlder},
		{"exactly threshold right", 45, 900 * time.Millisecond, app.SwipeNewer},
		{"below threshold", -44, 100 * time.Millisecond, app.SwipeNone},
		{"too slow", -120, 901 * time.Millisecond, app.SwipeNone},
		{"no move", 0, 10 * time.Millisecond, app.SwipeNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r app.SwipeRecognizer
			if !r.Start("touch", 200, 400, t0) {
				t.Fatal("start rejected")
			}
			got := r.End("touch", 200+tc.dx, t0.Add(tc.dt))
			if got != tc.want {
				t.Fatalf("End = %v; want %v", got, tc.want)
			}
			if r.Armed() {
				t.Fatal("recognizer still armed after End")
			}
		})
	}
}

func TestSwipe_OnlyTouchArms(t *testing.T) {
	var r app.SwipeRecognizer
	for _, pt := range []string{"mouse", "pen", ""} {
		if r.Start(pt, 200, 400, t0) {
			t.Errorf("pointer type %q armed the recognizer", pt)
		}
		if r.Armed() {
			t.Errorf("armed after %q start", pt)
		}
	}
}

func TestSwipe_EdgeMarginRejectsStart(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		ok   bool
	}{
		{"left edge", 10, false},
		{"exactly margin left", 28, false},
		{"just inside left", 29, true},
		{"middle", 200, true},
		{"just inside right", 371, true},
		{"exactly margin right", 372, false},
		{"right edge", 395, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r app.SwipeRecognizer
			if got := r.Start("touch", tc.x, 400, t0); got != tc.ok {
				t.Fatalf("Start(x=%v) = %v; want %v", tc.x, got, tc.ok)
			}
		})
	}
}

func TestSwipe_SpecScenario(t *testing.T) {
	// dx = -50, dt = 500ms, starting 40px from the left edge of a 400px
	// surface pages older; the same gesture from 10px triggers nothing.
	var r app.SwipeRecognizer
	if !r.Start("touch", 40, 400, t0) {
		t.Fatal("start at 40px rejected")
	}
	if got := r.End("touch", -10, t0.Add(500*time.Millisecond)); got != app.SwipeOlder {
		t.Fatalf("End = %v; want older", got)
	}

	if r.Start("touch", 10, 400, t0) {
		t.Fatal("start at 10px should be rejected")
	}
	if got := r.End("touch", -40, t0.Add(500*time.Millisecond)); got != app.SwipeNone {
		t.Fatalf("End after rejected start = %v; want none", got)
	}
}

func TestSwipe_CancelDiscards(t *testing.T) {
	var r app.SwipeRecognizer
	r.Start("touch", 200, 400, t0)
	r.Cancel()
	if r.Armed() {
		t.Fatal("armed after Cancel")
	}
	if got := r.End("touch", 100, t0.Add(100*time.Millisecond)); got != app.SwipeNone {
		t.Fatalf("End after Cancel = %v; want none", got)
	}
}

func TestSwipe_NewStartOverwritesPending(t *testing.T) {
	var r app.SwipeRecognizer
	r.Start("touch", 350, 400, t0)
	// Second start replaces the first; displacement is measured from it.
	r.Start("touch", 100, 400, t0.Add(2*time.Second))
	got := r.End("touch", 160, t0.Add(2*time.Second+300*time.Millisecond))
	if got != app.SwipeNewer {
		t.Fatalf("End = %v; want newer (measured from second start)", got)
	}
}

func TestSwipe_EndWithoutStart(t *testing.T) {
	var r app.SwipeRecognizer
	if got := r.End("touch", 100, t0); got != app.SwipeNone {
		t.Fatalf("End without Start = %v; want none", got)
	}
}

func TestSwipe_EdgeStartKeepsPreviousGesture(t *testing.T) {
	// A rejected start must not clobber an armed gesture.
	var r app.SwipeRecognizer
	r.Start("touch", 200, 400, t0)
	r.Start("touch", 5, 400, t0.Add(50*time.Millisecond))
	if !r.Armed() {
		t.Fatal("edge start disarmed the pending gesture")
	}
	if got := r.End("touch", 140, t0.Add(200*time.Millisecond)); got != app.SwipeOlder {
		t.Fatalf("End = %v; want older (dx=-60 from first start)", got)
	}
}
