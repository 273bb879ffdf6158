package app_test

import (
	"fmt"
	"math"
	"testing"

	"weightboard/internal/app"
	"weightboard/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.0001
}

func TestComputeMetrics_SpecScenario(t *testing.T) {
	// Ten entries, 2024-01-01..2024-01-10, weights 70.0..71.0, target 65.0.
	entries := []domain.WeighIn{}
	for i := 10; i >= 1; i-- {
		entries = append(entries, domain.WeighIn{
			Day:      fmt.Sprintf("2024-01-%02d", i),
			WeightKg: 70.0 + float64(i)/10.0,
		})
	}
	target := 65.0
	m := app.ComputeMetrics(entries, &target)

	if m.Latest == nil || m.Latest.Day != "2024-01-10" || !almostEqual(m.Latest.WeightKg, 71.0) {
		t.Fatalf("latest = %+v", m.Latest)
	}
	if m.PrevWeek == nil || m.PrevWeek.Day != "2024-01-03" {
		t.Fatalf("prevWeek = %+v; want the 2024-01-03 entry", m.PrevWeek)
	}
	if m.DiffToGoalKg == nil || !almostEqual(*m.DiffToGoalKg, 6.0) {
		t.Fatalf("diffToGoal = %v; want +6.0", m.DiffToGoalKg)
	}
	if m.DiffToPrevWeekKg == nil || !almostEqual(*m.DiffToPrevWeekKg, 71.0-70.3) {
		t.Fatalf("diffToPrevWeek = %v; want %v", m.DiffToPrevWeekKg, 71.0-70.3)
	}
	if m.PrevWeekDayGap != 7 {
		t.Fatalf("dayGap = %d; want 7", m.PrevWeekDayGap)
	}
}

func TestLatest(t *testing.T) {
	if app.Latest(nil) != nil {
		t.Fatal("latest of empty list should be absent")
	}
	entries := []domain.WeighIn{
		{Day: "2024-02-05", WeightKg: 80},
		{Day: "2024-02-01", WeightKg: 81},
	}
	got := app.Latest(entries)
	if got == nil || got.Day != "2024-02-05" {
		t.Fatalf("latest = %+v", got)
	}
}

func TestPrevWeek_TolerantOfGaps(t *testing.T) {
	// No entry exactly 7 days back; the nearest at-or-before the boundary
	// (12 days back) is used.
	entries := []domain.WeighIn{
		{Day: "2024-01-20", WeightKg: 80},
		{Day: "2024-01-18", WeightKg: 80.5},
		{Day: "2024-01-08", WeightKg: 82},
		{Day: "2024-01-01", WeightKg: 83},
	}
	got := app.PrevWeek(entries)
	if got == nil || got.Day != "2024-01-08" {
		t.Fatalf("prevWeek = %+v; want the 2024-01-08 entry", got)
	}
}

func TestPrevWeek_Absent(t *testing.T) {
	if app.PrevWeek(nil) != nil {
		t.Fatal("prevWeek of empty list should be absent")
	}
	// Single entry: nothing at or before the boundary.
	one := []domain.WeighIn{{Day: "2024-01-10", WeightKg: 80}}
	if app.PrevWeek(one) != nil {
		t.Fatal("prevWeek of single entry should be absent")
	}
	// All entries within the last week.
	recent := []domain.WeighIn{
		{Day: "2024-01-10", WeightKg: 80},
		{Day: "2024-01-07", WeightKg: 80.4},
		{Day: "2024-01-04", WeightKg: 80.9},
	}
	if got := app.PrevWeek(recent); got != nil {
		t.Fatalf("prevWeek = %+v; want absent (no entry crosses the boundary)", got)
	}
}

func TestPrevWeek_ExactBoundary(t *testing.T) {
	entries := []domain.WeighIn{
		{Day: "2024-01-10", WeightKg: 80},
		{Day: "2024-01-03", WeightKg: 81.5},
	}
	got := app.PrevWeek(entries)
	if got == nil || got.Day != "2024-01-03" {
		t.Fatalf("prevWeek = %+v; want the boundary entry itself", got)
	}
}

func TestComputeMetrics_AbsentInputs(t *testing.T) {
	// Empty list: everything absent.
	m := app.ComputeMetrics(nil, nil)
	if m.Latest != nil || m.PrevWeek != nil || m.DiffToGoalKg != nil || m.DiffToPrevWeekKg != nil {
		t.Fatalf("expected all-absent metrics, got %+v", m)
	}

	// Entries but no target: goal diff stays absent.
	entries := []domain.WeighIn{
		{Day: "2024-01-10", WeightKg: 80},
		{Day: "2024-01-01", WeightKg: 82},
	}
	m = app.ComputeMetrics(entries, nil)
	if m.DiffToGoalKg != nil {
		t.Fatalf("diffToGoal = %v; want absent without target", *m.DiffToGoalKg)
	}
	if m.DiffToPrevWeekKg == nil || !almostEqual(*m.DiffToPrevWeekKg, -2.0) {
		t.Fatalf("diffToPrevWeek = %v; want -2.0", m.DiffToPrevWeekKg)
	}
	if m.PrevWeekDayGap != 9 {
		t.Fatalf("dayGap = %d; want 9", m.PrevWeekDayGap)
	}
}
