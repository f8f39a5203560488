package summary

import (
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// ProjectLiberationDate estimates when the last obligation ends. Paid and
// open-ended debts do not contribute. Nil when nothing contributes.
func ProjectLiberationDate(debts []domain.Debt, installments []domain.Installment) *time.Time {
	var latest *time.Time
	consider := func(t time.Time) {
		if latest == nil || t.After(*latest) {
			tt := t
			latest = &tt
		}
	}

	for _, d := range debts {
		if end, ok := debtEndDate(d); ok {
			consider(end)
		}
	}
	for _, in := range installments {
		if open := in.Remaining(); open > 0 {
			consider(AddMonths(in.NextDueDate, open))
		}
	}
	return latest
}

func debtEndDate(d domain.Debt) (time.Time, bool) {
	if d.Status == domain.DebtPaid {
		return time.Time{}, false
	}
	if d.EndDate != nil {
		return *d.EndDate, true
	}
	if d.RemainingPayments > 0 {
		return AddMonths(d.NextDueDate, d.RemainingPayments), true
	}
	return time.Time{}, false
}
