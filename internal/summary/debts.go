package summary

import (
	"github.com/shopspring/decimal"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// SummarizeDebts aggregates debts and installment plans. Paid debts
// count towards the original and paid totals but not towards the open
// count, the monthly commitment or the breakdown.
func SummarizeDebts(debts []domain.Debt, installments []domain.Installment) domain.DebtsSummary {
	open := make([]domain.Debt, 0, len(debts))
	late := 0
	for _, d := range debts {
		if d.Status == domain.DebtPaid {
			continue
		}
		open = append(open, d)
		if d.Status == domain.DebtLate {
			late++
		}
	}

	original := sumDec(debts, func(d domain.Debt) float64 { return d.OriginalAmount })
	paid := sumDec(debts, func(d domain.Debt) float64 { return d.TotalPaid() })
	byType := Summarize(open, func(d domain.Debt) float64 { return d.CurrentBalance },
		func(d domain.Debt) string { return string(d.Type) },
		WithLabels(func(k string) string { return domain.DebtType(k).Label() }))

	inst, instMonthly := summarizeInstallments(installments)
	monthly := sumDec(open, func(d domain.Debt) float64 { return d.MonthlyPayment }).Add(instMonthly)

	return domain.DebtsSummary{
		TotalOriginal:     original.InexactFloat64(),
		TotalBalance:      sumDec(debts, func(d domain.Debt) float64 { return d.CurrentBalance }).InexactFloat64(),
		TotalPaid:         paid.InexactFloat64(),
		PaidPercentage:    optionalPercent(paid, original),
		MonthlyCommitment: monthly.InexactFloat64(),
		DebtCount:         len(open),
		LateCount:         late,
		ByType:            byType.ByCategory,
		Installments:      inst,
		LiberationDate:    ProjectLiberationDate(debts, installments),
	}
}

// summarizeInstallments reports open plans only. The average over zero
// plans is 0.
func summarizeInstallments(installments []domain.Installment) (domain.InstallmentsSummary, decimal.Decimal) {
	active := make([]domain.Installment, 0, len(installments))
	for _, in := range installments {
		if in.Remaining() > 0 {
			active = append(active, in)
		}
	}

	monthly := sumDec(active, func(in domain.Installment) float64 { return in.InstallmentAmount })
	s := domain.InstallmentsSummary{
		ActiveCount:       len(active),
		TotalRemaining:    Sum(active, func(in domain.Installment) float64 { return in.RemainingAmount }),
		MonthlyCommitment: monthly.InexactFloat64(),
	}
	if len(active) > 0 {
		s.AverageMonthlyCommitment = monthly.Div(decimal.NewFromInt(int64(len(active)))).Round(2).InexactFloat64()
	}
	return s, monthly
}
