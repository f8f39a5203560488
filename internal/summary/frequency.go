package summary

import (
	"github.com/shopspring/decimal"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

var weeksPerMonth = decimal.RequireFromString("4.33")

// MonthlyEquivalent normalizes a recurring charge to a monthly amount.
// Unknown frequencies are treated as monthly.
func MonthlyEquivalent(amount float64, f domain.Frequency) float64 {
	return monthlyDec(amount, f).InexactFloat64()
}

func monthlyDec(amount float64, f domain.Frequency) decimal.Decimal {
	a := dec(amount)
	switch f {
	case domain.FrequencyWeekly:
		return a.Mul(weeksPerMonth)
	case domain.FrequencyQuarterly:
		return a.Div(decimal.NewFromInt(3))
	case domain.FrequencySemiannual:
		return a.Div(decimal.NewFromInt(6))
	case domain.FrequencyAnnual:
		return a.Div(decimal.NewFromInt(12))
	}
	return a
}
