package app

import (
	"weightboard/internal/domain"
)

// Metrics are the derived dashboard figures, recomputed from scratch on
// every read. A nil field means "absent": callers render a placeholder,
// never a numeric default.
type Metrics struct {
	Latest           *domain.WeighIn `json:"latest"`
	PrevWeek         *domain.WeighIn `json:"prevWeek"`
	DiffToGoalKg     *float64        `json:"diffToGoalKg"`
	DiffToPrevWeekKg *float64        `json:"diffToPrevWeekKg"`
	// PrevWeekDayGap is the exact day distance between the latest entry and
	// the previous-week entry; only meaningful when PrevWeek is set.
	PrevWeekDayGap int `json:"prevWeekDayGap"`
}

// Latest returns the newest entry of a descending list, or nil when empty.
func Latest(entriesDesc []domain.WeighIn) *domain.WeighIn {
	if len(entriesDesc) == 0 {
		return nil
	}
	e := entriesDesc[0]
	return &e
}

// PrevWeek returns the most recent entry dated at or before seven days prior
// to the latest entry. Logging gaps are tolerated: the match may lie more
// than seven days back. Nil when no entry crosses the boundary.
func PrevWeek(entriesDesc []domain.WeighIn) *domain.WeighIn {
	if len(entriesDesc) == 0 {
		return nil
	}
	boundary, err := domain.AddDays(entriesDesc[0].Day, -7)
	if err != nil {
		return nil
	}
	for _, e := range entriesDesc {
		if e.Day <= boundary {
			out := e
			return &out
		}
	}
	return nil
}

// ComputeMetrics derives all dashboard figures from the descending entry
// list and the optional target weight.
func ComputeMetrics(entriesDesc []domain.WeighIn, targetKg *float64) Metrics {
	m := Metrics{
		Latest:   Latest(entriesDesc),
		PrevWeek: PrevWeek(entriesDesc),
	}
	if m.Latest != nil && targetKg != nil {
		d := m.Latest.WeightKg - *targetKg
		m.DiffToGoalKg = &d
	}
	if m.Latest != nil && m.PrevWeek != nil {
		d := m.Latest.WeightKg - m.PrevWeek.WeightKg
		m.DiffToPrevWeekKg = &d
		m.PrevWeekDayGap = domain.DaysBetween(m.Latest.Day, m.PrevWeek.Day)
	}
	return m
}
