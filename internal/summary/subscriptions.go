package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/format"
)

// DefaultUpcomingWindowDays is used when the caller passes no window.
const DefaultUpcomingWindowDays = 7

// SummarizeSubscriptions normalizes billable subscriptions to monthly
// amounts, groups them by risk tag and lists the charges due within
// windowDays of today (inclusive on both ends).
func SummarizeSubscriptions(subs []domain.Subscription, now time.Time, loc *time.Location, windowDays int, budget *float64) domain.SubscriptionsSummary {
	if windowDays <= 0 {
		windowDays = DefaultUpcomingWindowDays
	}

	billable := make([]domain.Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Status.Billable() {
			billable = append(billable, s)
		}
	}

	monthly := func(s domain.Subscription) float64 { return MonthlyEquivalent(s.Amount, s.Frequency) }
	byCategory := Summarize(billable, monthly,
		func(s domain.Subscription) string { return orDefault(s.Category, Uncategorized) })
	total := decimal.Zero
	for _, s := range billable {
		total = total.Add(monthlyDec(s.Amount, s.Frequency))
	}
	// The annual figure is the displayed monthly one times twelve.
	total = total.Round(2)

	out := domain.SubscriptionsSummary{
		TotalMonthly: total.InexactFloat64(),
		TotalAnnual:  total.Mul(decimal.NewFromInt(12)).InexactFloat64(),
		ActiveCount:  len(billable),
		TotalCount:   len(subs),
		ByCategory:   byCategory.ByCategory,
		WindowDays:   windowDays,
	}

	out.AtRisk, out.AtRiskMonthly, out.AtRiskCount = riskGroups(billable)
	out.Upcoming = upcomingBillings(billable, now, loc, windowDays)

	if budget != nil {
		u := NewUtilization(out.TotalMonthly, *budget)
		out.BudgetUsage = &u
	}
	return out
}

// riskGroups returns one group per risk tag in display order, skipping
// empty ones. The monthly total counts each subscription once even when it
// carries several tags.
func riskGroups(billable []domain.Subscription) ([]domain.RiskGroup, float64, int) {
	groups := make([]domain.RiskGroup, 0, len(domain.AllSubscriptionRisks))
	for _, risk := range domain.AllSubscriptionRisks {
		g := domain.RiskGroup{Risk: risk, Label: risk.Label(), SubscriptionIDs: []string{}}
		sum := decimal.Zero
		for _, s := range billable {
			if s.HasRisk(risk) {
				g.SubscriptionIDs = append(g.SubscriptionIDs, s.ID)
				sum = sum.Add(monthlyDec(s.Amount, s.Frequency))
			}
		}
		if len(g.SubscriptionIDs) == 0 {
			continue
		}
		g.MonthlyTotal = sum.InexactFloat64()
		groups = append(groups, g)
	}

	atRisk := decimal.Zero
	count := 0
	for _, s := range billable {
		if len(s.Risks) > 0 {
			atRisk = atRisk.Add(monthlyDec(s.Amount, s.Frequency))
			count++
		}
	}
	return groups, atRisk.InexactFloat64(), count
}

func upcomingBillings(billable []domain.Subscription, now time.Time, loc *time.Location, windowDays int) []domain.UpcomingBilling {
	if loc == nil {
		loc = now.Location()
	}
	today := StartOfDay(now, loc)
	out := []domain.UpcomingBilling{}
	for _, s := range billable {
		if s.NextBillingDate.IsZero() {
			continue
		}
		days := format.CalendarDaysBetween(today, StartOfDay(s.NextBillingDate, loc))
		if days < 0 || days > windowDays {
			continue
		}
		out = append(out, domain.UpcomingBilling{
			SubscriptionID: s.ID,
			Name:           s.Name,
			Amount:         s.Amount,
			Date:           s.NextBillingDate,
			DaysUntil:      days,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
