package domain_test

import (
	"testing"

	"weightboard/internal/domain"
)

func TestParseDay(t *testing.T) {
	if _, err := domain.ParseDay("2024-01-31"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "2024-1-31", "31.01.2024", "2024-02-30", "not a date"} {
		if _, err := domain.ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q): expected error", bad)
		}
	}
}

func TestFormatDayDE(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-10", "10.01.2024"},
		{"1999-12-31", "31.12.1999"},
		{"garbage", "garbage"},
	}
	for _, tc := range tests {
		if got := domain.FormatDayDE(tc.in); got != tc.want {
			t.Errorf("FormatDayDE(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	got, err := domain.AddDays("2024-01-10", -7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-01-03" {
		t.Fatalf("AddDays = %q; want 2024-01-03", got)
	}
	// month boundary
	got, err = domain.AddDays("2024-03-01", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-02-29" {
		t.Fatalf("AddDays = %q; want 2024-02-29", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-10", "2024-01-03", 7},
		{"2024-01-03", "2024-01-10", -7},
		{"2024-01-10", "2024-01-10", 0},
		{"2024-03-01", "2024-02-01", 29},
	}
	for _, tc := range tests {
		if got := domain.DaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("DaysBetween(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
