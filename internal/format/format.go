// Package format renders amounts, percentages and dates the way the money
// dashboard displays them (BRL, pt-BR).
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	brlPattern     = "#.###,##"
	percentPattern = "#.###,#"

	// Placeholder shown where a value is undefined (no baseline, zero capacity).
	Placeholder = "—"
)

// BRL formats v as Brazilian reais: R$ 1.234,56 / -R$ 10,00.
func BRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if v < 0 {
		s := humanize.FormatFloat(brlPattern, -v)
		if s == "0,00" {
			return "R$ 0,00"
		}
		return "-R$ " + s
	}
	return "R$ " + humanize.FormatFloat(brlPattern, v)
}

// Percent formats v (already ×100) with one decimal: 12,5%.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return humanize.FormatFloat(percentPattern, v) + "%"
}

// PercentPtr formats an optional percentage, Placeholder when nil.
func PercentPtr(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return Percent(*v)
}

// SignedPercent prefixes positive values with "+".
func SignedPercent(v *float64) string {
	if v == nil {
		return Placeholder
	}
	if *v > 0 {
		return "+" + Percent(*v)
	}
	return Percent(*v)
}

var weekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var months = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// Weekday returns the pt-BR weekday name.
func Weekday(d time.Weekday) string {
	return weekdays[d]
}

// MonthLabel renders "outubro de 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", months[t.Month()], t.Year())
}

// ShortDate renders dd/mm, adding the year when it differs from ref's.
func ShortDate(t, ref time.Time) string {
	if t.Year() != ref.Year() {
		return t.Format("02/01/2006")
	}
	return t.Format("02/01")
}

// DayLabel names a calendar day relative to today. Both arguments must be
// midnights in the same location.
func DayLabel(day, today time.Time) string {
	switch CalendarDaysBetween(day, today) {
	case 0:
		return "Hoje"
	case 1:
		return "Ontem"
	case -1:
		return "Amanhã"
	}
	return Weekday(day.Weekday()) + ", " + ShortDate(day, today)
}

// CalendarDaysBetween counts calendar days from a to b (b later → positive).
// Rounding absorbs DST shifts between the two midnights.
func CalendarDaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
