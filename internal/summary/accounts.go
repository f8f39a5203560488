package summary

import "github.com/boddenberg/money-bfa-go/internal/domain"

// SummarizeAccounts totals the active accounts. Inactive accounts are only
// counted in AccountCount.
func SummarizeAccounts(accounts []domain.Account, previousTotal *float64) domain.AccountSummary {
	active := make([]domain.Account, 0, len(accounts))
	negative := 0
	for _, a := range accounts {
		if !a.IsActive {
			continue
		}
		active = append(active, a)
		if a.Balance < 0 {
			negative++
		}
	}

	balance := func(a domain.Account) float64 { return a.Balance }
	byType := Summarize(active, balance,
		func(a domain.Account) string { return string(a.Type) },
		WithLabels(func(k string) string { return domain.AccountType(k).Label() }))
	byInstitution := Summarize(active, balance,
		func(a domain.Account) string { return orDefault(a.Institution, Uncategorized) })

	return domain.AccountSummary{
		TotalBalance:         byType.Total,
		AccountCount:         len(accounts),
		ActiveCount:          len(active),
		NegativeBalanceCount: negative,
		ByType:               byType.ByCategory,
		ByInstitution:        byInstitution.ByCategory,
		Comparison:           compareOptional(byType.Total, previousTotal),
	}
}
