package summary

import "github.com/boddenberg/money-bfa-go/internal/domain"

// SummarizeInvestments aggregates the portfolio. Allocations are by
// current value.
func SummarizeInvestments(assets []domain.Asset) domain.InvestmentsSummary {
	value := func(a domain.Asset) float64 { return a.CurrentValue }

	invested := sumDec(assets, func(a domain.Asset) float64 { return a.InvestedAmount })
	current := sumDec(assets, value)
	profit := current.Sub(invested)

	byClass := Summarize(assets, value,
		func(a domain.Asset) string { return string(a.Class) },
		WithLabels(func(k string) string { return domain.AssetClass(k).Label() }))
	byInstitution := Summarize(assets, value,
		func(a domain.Asset) string { return orDefault(a.Institution, Uncategorized) })
	byLiquidity := Summarize(assets, value,
		func(a domain.Asset) string { return string(a.Liquidity) },
		WithLabels(func(k string) string { return domain.Liquidity(k).Label() }))
	byRisk := Summarize(assets, value,
		func(a domain.Asset) string { return string(a.RiskLevel) },
		WithLabels(func(k string) string { return domain.RiskLevel(k).Label() }))

	var strategic []domain.Asset
	for _, a := range assets {
		if a.IsStrategic {
			strategic = append(strategic, a)
		}
	}

	return domain.InvestmentsSummary{
		TotalInvested:        invested.InexactFloat64(),
		CurrentValue:         current.InexactFloat64(),
		Profitability:        profit.InexactFloat64(),
		ProfitabilityPercent: optionalPercent(profit, invested),
		AssetCount:           len(assets),
		ByClass:              byClass.ByCategory,
		ByInstitution:        byInstitution.ByCategory,
		ByLiquidity:          byLiquidity.ByCategory,
		ByRisk:               byRisk.ByCategory,
		StrategicTotal:       Sum(strategic, value),
		StrategicCount:       len(strategic),
	}
}
