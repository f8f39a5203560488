package summary

import "github.com/boddenberg/money-bfa-go/internal/domain"

// SummarizePatrimony computes net worth and its composition. DebtRatio is
// liabilities over assets, nil without assets.
func SummarizePatrimony(assets []domain.PatrimonyAsset, liabilities []domain.PatrimonyLiability, previousNetWorth *float64) domain.PatrimonySummary {
	assetComp := Summarize(assets,
		func(a domain.PatrimonyAsset) float64 { return a.Value },
		func(a domain.PatrimonyAsset) string { return string(a.Type) },
		WithLabels(func(k string) string { return domain.PatrimonyAssetType(k).Label() }))
	liabComp := Summarize(liabilities,
		func(l domain.PatrimonyLiability) float64 { return l.Value },
		func(l domain.PatrimonyLiability) string { return string(l.Type) },
		WithLabels(func(k string) string { return domain.LiabilityType(k).Label() }))

	totalAssets := sumDec(assets, func(a domain.PatrimonyAsset) float64 { return a.Value })
	totalLiabilities := sumDec(liabilities, func(l domain.PatrimonyLiability) float64 { return l.Value })
	net := totalAssets.Sub(totalLiabilities).InexactFloat64()

	var ratio *float64
	if totalAssets.IsPositive() {
		ratio = optionalPercent(totalLiabilities, totalAssets)
	}

	return domain.PatrimonySummary{
		TotalAssets:          totalAssets.InexactFloat64(),
		TotalLiabilities:     totalLiabilities.InexactFloat64(),
		NetWorth:             net,
		DebtRatio:            ratio,
		AssetComposition:     assetComp.ByCategory,
		LiabilityComposition: liabComp.ByCategory,
		Variation:            compareOptional(net, previousNetWorth),
	}
}
