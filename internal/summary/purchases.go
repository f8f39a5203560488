package summary

import "github.com/boddenberg/money-bfa-go/internal/domain"

// SummarizePurchases aggregates the purchases of one period. The total
// equals the sum of the day groups built from the same slice.
func SummarizePurchases(purchases []domain.Purchase, previousTotal *float64) domain.PurchasesSummary {
	installments := 0
	for _, p := range purchases {
		if p.Type == domain.PurchaseInstallment || (p.Installments != nil && p.Installments.Total > 1) {
			installments++
		}
	}

	byCategory := Summarize(purchases, purchaseAmount,
		func(p domain.Purchase) string { return orDefault(p.Category, Uncategorized) })
	byMethod := Summarize(purchases, purchaseAmount,
		func(p domain.Purchase) string { return string(p.PaymentMethod) },
		WithLabels(func(k string) string { return domain.PaymentMethod(k).Label() }))

	s := domain.PurchasesSummary{
		TotalSpent:       byCategory.Total,
		TransactionCount: byCategory.Count,
		InstallmentCount: installments,
		ByCategory:       byCategory.ByCategory,
		ByPaymentMethod:  byMethod.ByCategory,
		Comparison:       compareOptional(byCategory.Total, previousTotal),
	}
	if s.TransactionCount > 0 {
		s.AverageTicket = sumDec(purchases, purchaseAmount).
			Div(dec(float64(s.TransactionCount))).
			Round(2).
			InexactFloat64()
	}
	return s
}
