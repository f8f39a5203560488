package summary

import (
	"sort"
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/format"
)

// GroupByDay partitions purchases by calendar date in loc, newest day
// first. Inside a day, purchases are ordered by timestamp descending and
// then by ID, so Flatten followed by GroupByDay is a no-op.
func GroupByDay(purchases []domain.Purchase, now time.Time, loc *time.Location) []domain.DayGroup {
	if loc == nil {
		loc = now.Location()
	}
	if len(purchases) == 0 {
		return []domain.DayGroup{}
	}

	sorted := make([]domain.Purchase, len(purchases))
	copy(sorted, purchases)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	today := StartOfDay(now, loc)
	var groups []domain.DayGroup
	var current *domain.DayGroup
	for _, p := range sorted {
		day := StartOfDay(p.Date, loc)
		if current == nil || !current.Date.Equal(day) {
			groups = append(groups, domain.DayGroup{
				Date:  day,
				Label: format.DayLabel(day, today),
			})
			current = &groups[len(groups)-1]
		}
		current.Purchases = append(current.Purchases, p)
	}

	for i := range groups {
		g := &groups[i]
		g.Count = len(g.Purchases)
		g.TotalSpent = Sum(g.Purchases, purchaseAmount)
		g.TotalFormatted = format.BRL(g.TotalSpent)
	}
	return groups
}

// Flatten returns the members of groups in display order.
func Flatten(groups []domain.DayGroup) []domain.Purchase {
	n := 0
	for _, g := range groups {
		n += len(g.Purchases)
	}
	out := make([]domain.Purchase, 0, n)
	for _, g := range groups {
		out = append(out, g.Purchases...)
	}
	return out
}

func purchaseAmount(p domain.Purchase) float64 { return p.Amount }
