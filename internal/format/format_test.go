package format

import (
	"math"
	"testing"
	"time"
)

func TestBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{96.2, "R$ 96,20"},
		{0, "R$ 0,00"},
		{1234.5, "R$ 1.234,50"},
		{1234567.891, "R$ 1.234.567,89"},
		{-10, "-R$ 10,00"},
		{math.NaN(), Placeholder},
		{math.Inf(1), Placeholder},
	}
	for _, tt := range tests {
		if got := BRL(tt.in); got != tt.want {
			t.Errorf("BRL(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.5); got != "12,5%" {
		t.Errorf("Percent(12.5) = %q", got)
	}
	if got := Percent(150); got != "150,0%" {
		t.Errorf("Percent(150) = %q", got)
	}
	if got := PercentPtr(nil); got != Placeholder {
		t.Errorf("PercentPtr(nil) = %q", got)
	}
	v := 3.0
	if got := SignedPercent(&v); got != "+3,0%" {
		t.Errorf("SignedPercent(3) = %q", got)
	}
}

func TestDayLabel(t *testing.T) {
	loc := time.UTC
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, loc) // Friday

	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"today", today, "Hoje"},
		{"yesterday", today.AddDate(0, 0, -1), "Ontem"},
		{"tomorrow", today.AddDate(0, 0, 1), "Amanhã"},
		{"same year", time.Date(2026, 10, 12, 0, 0, 0, 0, loc), "segunda-feira, 12/10"},
		{"previous year", time.Date(2025, 12, 31, 0, 0, 0, 0, loc), "quarta-feira, 31/12/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayLabel(tt.day, today); got != tt.want {
				t.Errorf("DayLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalendarDaysBetween_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	a := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	b := time.Date(2026, 3, 9, 0, 0, 0, 0, loc) // 47h apart
	if got := CalendarDaysBetween(a, b); got != 2 {
		t.Errorf("expected 2 days, got %d", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)); got != "março de 2026" {
		t.Errorf("MonthLabel = %q", got)
	}
}
