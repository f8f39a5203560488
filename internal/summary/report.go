package summary

import (
	"sort"
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/format"
)

const (
	DefaultReportMonths = 6
	MaxReportMonths     = 24
)

// BuildReport compares the current calendar month with the previous one
// per category and lists the totals of the last months calendar months,
// oldest first.
func BuildReport(purchases []domain.Purchase, now time.Time, loc *time.Location, months int) domain.Report {
	if loc == nil {
		loc = now.Location()
	}
	if months <= 0 {
		months = DefaultReportMonths
	}
	if months > MaxReportMonths {
		months = MaxReportMonths
	}

	curStart := StartOfMonth(now, loc)
	curEnd := AddMonths(curStart, 1)
	prevStart := AddMonths(curStart, -1)

	current := inRange(purchases, curStart, curEnd)
	previous := inRange(purchases, prevStart, curStart)

	key := func(p domain.Purchase) string { return orDefault(p.Category, Uncategorized) }
	cur := Summarize(current, purchaseAmount, key)
	prev := Summarize(previous, purchaseAmount, key)

	r := domain.Report{
		Period: domain.ReportPeriod{
			From:  curStart,
			To:    curEnd,
			Label: format.MonthLabel(curStart),
		},
		TotalSpent: cur.Total,
		Comparison: CompareToBaseline(cur.Total, prev.Total),
		Categories: categoryTrends(cur.ByCategory, prev.ByCategory),
		Monthly:    make([]domain.MonthlyTotal, 0, months),
	}

	for i := months - 1; i >= 0; i-- {
		start := AddMonths(curStart, -i)
		in := inRange(purchases, start, AddMonths(start, 1))
		r.Monthly = append(r.Monthly, domain.MonthlyTotal{
			Month: start.Format("2006-01"),
			Total: Sum(in, purchaseAmount),
			Count: len(in),
		})
	}
	return r
}

func categoryTrends(cur, prev domain.Breakdown) []domain.CategoryTrend {
	cats := make(map[string]struct{}, len(cur)+len(prev))
	for _, s := range cur {
		cats[s.Key] = struct{}{}
	}
	for _, s := range prev {
		cats[s.Key] = struct{}{}
	}

	out := make([]domain.CategoryTrend, 0, len(cats))
	for c := range cats {
		a, _ := cur.Lookup(c)
		b, _ := prev.Lookup(c)
		out = append(out, domain.CategoryTrend{
			Category:   c,
			Current:    a.Total,
			Previous:   b.Total,
			Comparison: CompareToBaseline(a.Total, b.Total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current > out[j].Current
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// inRange keeps purchases dated in [from, to).
func inRange(purchases []domain.Purchase, from, to time.Time) []domain.Purchase {
	var out []domain.Purchase
	for _, p := range purchases {
		if !p.Date.Before(from) && p.Date.Before(to) {
			out = append(out, p)
		}
	}
	return out
}

// PurchasePeriod resolves a purchases screen filter ("7d", "30d", "month")
// to a [From, To) range ending at the end of today.
func PurchasePeriod(period string, now time.Time, loc *time.Location) (domain.ReportPeriod, bool) {
	if loc == nil {
		loc = now.Location()
	}
	tomorrow := StartOfDay(now, loc).AddDate(0, 0, 1)
	switch period {
	case "", "month":
		start := StartOfMonth(now, loc)
		return domain.ReportPeriod{From: start, To: tomorrow, Label: format.MonthLabel(start)}, true
	case "7d":
		return domain.ReportPeriod{From: tomorrow.AddDate(0, 0, -7), To: tomorrow, Label: "Últimos 7 dias"}, true
	case "30d":
		return domain.ReportPeriod{From: tomorrow.AddDate(0, 0, -30), To: tomorrow, Label: "Últimos 30 dias"}, true
	}
	return domain.ReportPeriod{}, false
}

// FilterPurchases keeps purchases inside period.
func FilterPurchases(purchases []domain.Purchase, period domain.ReportPeriod) []domain.Purchase {
	return inRange(purchases, period.From, period.To)
}

// PreviousPeriod is the window of the same length right before p.
func PreviousPeriod(p domain.ReportPeriod) domain.ReportPeriod {
	return domain.ReportPeriod{From: p.From.Add(-p.To.Sub(p.From)), To: p.From}
}
