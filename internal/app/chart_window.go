package app

import (
	"weightboard/internal/domain"
)

// WindowSize is the fixed number of entries visible on the chart.
const WindowSize = 10

// timelineDotLimit is the largest page count still rendered as per-page dots.
const timelineDotLimit = 20

// TimelineMode selects how the mini-timeline under the chart is rendered.
type TimelineMode string

const (
	// TimelineNone hides the timeline (a single page or no entries).
	TimelineNone TimelineMode = "none"
	// TimelineDots renders one selectable marker per page.
	TimelineDots TimelineMode = "dots"
	// TimelineSlider renders a continuous range selector instead of markers.
	TimelineSlider TimelineMode = "slider"
)

// ChartWindow is the paging state over a descending entry list. Offset is the
// index where the visible window starts; all mutators clamp it so that
// 0 <= Offset <= MaxOffset always holds.
type ChartWindow struct {
	Total  int
	Offset int
}

// NewChartWindow returns a window over total entries, positioned at the
// newest page with the given starting offset (clamped).
func NewChartWindow(total, offset int) ChartWindow {
	w := ChartWindow{Total: total}
	if w.Total < 0 {
		w.Total = 0
	}
	w.Offset = clamp(offset, 0, w.MaxOffset())
	return w
}

// MaxOffset is the largest valid window start.
func (w ChartWindow) MaxOffset() int {
	if w.Total <= WindowSize {
		return 0
	}
	return w.Total - WindowSize
}

// PageCount is the number of windows needed to cover all entries.
func (w ChartWindow) PageCount() int {
	if w.Total == 0 {
		return 0
	}
	return (w.Total + WindowSize - 1) / WindowSize
}

// CurrentPage is the zero-based page the clamped offset falls into.
func (w ChartWindow) CurrentPage() int {
	return clamp(w.Offset, 0, w.MaxOffset()) / WindowSize
}

// GoOlder moves one window towards older entries.
func (w *ChartWindow) GoOlder() {
	w.Offset = clamp(w.Offset+WindowSize, 0, w.MaxOffset())
}

// GoNewer moves one window towards newer entries.
func (w *ChartWindow) GoNewer() {
	w.Offset = clamp(w.Offset-WindowSize, 0, w.MaxOffset())
}

// JumpToPage positions the window at the start of page p, clamped to the
// valid page range.
func (w *ChartWindow) JumpToPage(p int) {
	last := w.PageCount() - 1
	if last < 0 {
		last = 0
	}
	w.Offset = clamp(p, 0, last) * WindowSize
	// A short last page starts before pageStart; keep the invariant.
	w.Offset = clamp(w.Offset, 0, w.MaxOffset())
}

// Reset returns to the newest window. Called after every list reload.
func (w *ChartWindow) Reset() {
	w.Offset = 0
}

// Timeline reports how the mini-timeline should be rendered for this window.
func (w ChartWindow) Timeline() TimelineMode {
	pc := w.PageCount()
	switch {
	case pc <= 1:
		return TimelineNone
	case pc <= timelineDotLimit:
		return TimelineDots
	default:
		return TimelineSlider
	}
}

// Slice materialises the visible window from the descending entry list,
// reversed to chronological order for plotting (oldest first).
func (w ChartWindow) Slice(entriesDesc []domain.WeighIn) []domain.WeighIn {
	start := clamp(w.Offset, 0, w.MaxOffset())
	if start > len(entriesDesc) {
		start = len(entriesDesc)
	}
	end := start + WindowSize
	if end > len(entriesDesc) {
		end = len(entriesDesc)
	}
	out := make([]domain.WeighIn, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, entriesDesc[i])
	}
	return out
}

// RangeLabel renders the oldest and newest day of a chronological slice as
// "DD.MM.YYYY – DD.MM.YYYY". Empty slices yield an empty label.
func RangeLabel(chronological []domain.WeighIn) string {
	if len(chronological) == 0 {
		return ""
	}
	oldest := chronological[0].Day
	newest := chronological[len(chronological)-1].Day
	return domain.FormatDayDE(oldest) + " – " + domain.FormatDayDE(newest)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
