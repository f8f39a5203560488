package summary

import "github.com/boddenberg/money-bfa-go/internal/domain"

// CompareToBaseline compares current against previous. A zero baseline has
// no meaningful percentage: Percentage stays nil and HasBaseline false, but
// the direction still follows the sign of the difference.
func CompareToBaseline(current, previous float64) domain.Comparison {
	cur, prev := dec(current), dec(previous)
	diff := cur.Sub(prev)

	c := domain.Comparison{
		Current:    current,
		Previous:   previous,
		Difference: diff.InexactFloat64(),
		Direction:  direction(diff.Sign()),
	}
	if !prev.IsZero() {
		pct := diff.Div(prev.Abs()).Mul(hundred).InexactFloat64()
		c.Percentage = &pct
		c.HasBaseline = true
	}
	return c
}

func direction(sign int) domain.Trend {
	switch {
	case sign > 0:
		return domain.TrendUp
	case sign < 0:
		return domain.TrendDown
	}
	return domain.TrendStable
}

// compareOptional returns nil when there is no baseline at all.
func compareOptional(current float64, previous *float64) *domain.Comparison {
	if previous == nil {
		return nil
	}
	c := CompareToBaseline(current, *previous)
	return &c
}
