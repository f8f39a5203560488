package summary

import (
	"sort"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// SummarizeBudgets classifies every category budget and the overall total.
// Items come back most utilized first.
func SummarizeBudgets(budgets []domain.Budget) domain.BudgetSummary {
	counts := newStatusCounts()
	items := make([]domain.BudgetItem, 0, len(budgets))
	for _, b := range budgets {
		u := NewUtilization(b.Spent, b.Limit)
		counts[u.Status]++
		items = append(items, domain.BudgetItem{
			Budget:      b,
			Remaining:   dec(b.Limit).Sub(dec(b.Spent)).InexactFloat64(),
			Utilization: u,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return moreUtilized(items[i].Utilization, items[j].Utilization, items[i].Category, items[j].Category)
	})

	limit := sumDec(budgets, func(b domain.Budget) float64 { return b.Limit })
	spent := sumDec(budgets, func(b domain.Budget) float64 { return b.Spent })

	return domain.BudgetSummary{
		TotalLimit:     limit.InexactFloat64(),
		TotalSpent:     spent.InexactFloat64(),
		TotalRemaining: limit.Sub(spent).InexactFloat64(),
		Utilization:    NewUtilization(spent.InexactFloat64(), limit.InexactFloat64()),
		StatusCounts:   counts,
		Items:          items,
	}
}

// SummarizeCards classifies each credit card's usage and the combined limit.
func SummarizeCards(cards []domain.CreditCard) domain.CardsSummary {
	counts := newStatusCounts()
	items := make([]domain.CardItem, 0, len(cards))
	for _, c := range cards {
		u := NewUtilization(c.Used, c.Limit)
		counts[u.Status]++
		items = append(items, domain.CardItem{
			CreditCard: c,
			Available:  c.Available(),
			Usage:      u,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return moreUtilized(items[i].Usage, items[j].Usage, items[i].Name, items[j].Name)
	})

	limit := sumDec(cards, func(c domain.CreditCard) float64 { return c.Limit })
	used := sumDec(cards, func(c domain.CreditCard) float64 { return c.Used })

	return domain.CardsSummary{
		TotalLimit:     limit.InexactFloat64(),
		TotalUsed:      used.InexactFloat64(),
		TotalAvailable: Sum(cards, func(c domain.CreditCard) float64 { return c.Available() }),
		Usage:          NewUtilization(used.InexactFloat64(), limit.InexactFloat64()),
		StatusCounts:   counts,
		Cards:          items,
	}
}

func moreUtilized(a, b domain.Utilization, nameA, nameB string) bool {
	if a.Status.Rank() != b.Status.Rank() {
		return a.Status.Rank() > b.Status.Rank()
	}
	if a.Percentage != b.Percentage {
		return a.Percentage > b.Percentage
	}
	return nameA < nameB
}
