package summary

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

type rec struct {
	cat    string
	amount float64
}

func recAmount(r rec) float64 { return r.amount }
func recKey(r rec) string      { return r.cat }

func TestSummarize_BreakdownAddsUp(t *testing.T) {
	collections := map[string][]rec{
		"cents": {
			{"mercado", 42.90}, {"transporte", 28.50}, {"mercado", 24.80},
		},
		"many categories": {
			{"a", 0.01}, {"b", 0.02}, {"c", 0.03}, {"d", 1000}, {"e", 333.33}, {"f", 0.1}, {"g", 0.2},
		},
		"single": {{"x", 10}},
		"negatives": {
			{"a", 500}, {"b", -120.5}, {"c", 10},
		},
	}

	for name, records := range collections {
		t.Run(name, func(t *testing.T) {
			s := Summarize(records, recAmount, recKey)

			var sumTotals, sumPct float64
			for _, sh := range s.ByCategory {
				sumTotals += sh.Total
				sumPct += sh.Percentage
			}
			assert.InDelta(t, s.Total, sumTotals, 0.01)
			assert.InDelta(t, 100, sumPct, 0.1)
			assert.Equal(t, len(records), s.Count)
		})
	}
}

func TestSummarize_ExactCents(t *testing.T) {
	s := Summarize([]rec{{"a", 0.1}, {"a", 0.2}}, recAmount, recKey)
	assert.Equal(t, 0.3, s.Total)
}

func TestSummarize_EmptyAndZeroTotal(t *testing.T) {
	s := Summarize([]rec{}, recAmount, recKey)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0, s.Count)
	assert.Empty(t, s.ByCategory)

	zero := Summarize([]rec{{"a", 0}, {"b", 0}}, recAmount, recKey)
	for _, sh := range zero.ByCategory {
		assert.Equal(t, 0.0, sh.Percentage)
		assert.False(t, math.IsNaN(sh.Percentage))
	}
}

func TestSummarize_BreakdownOrder(t *testing.T) {
	s := Summarize([]rec{{"b", 10}, {"a", 10}, {"c", 50}}, recAmount, recKey)
	require.Len(t, s.ByCategory, 3)
	assert.Equal(t, "c", s.ByCategory[0].Key)
	assert.Equal(t, "a", s.ByCategory[1].Key)
	assert.Equal(t, "b", s.ByCategory[2].Key)

	sh, ok := s.ByCategory.Lookup("c")
	require.True(t, ok)
	assert.InDelta(t, 71.43, sh.Percentage, 0.01)
}

func TestSummarize_Options(t *testing.T) {
	s := Summarize([]rec{{"a", 95}}, recAmount, nil,
		WithBaseline(50),
		WithCapacity(100),
		WithLabels(func(k string) string { return "L" + k }))

	assert.Nil(t, s.ByCategory)
	require.NotNil(t, s.Comparison)
	assert.Equal(t, domain.TrendUp, s.Comparison.Direction)
	require.NotNil(t, s.Utilization)
	assert.Equal(t, domain.UtilizationNearLimit, s.Utilization.Status)
}

func TestSummarize_NonFiniteAmountsIgnored(t *testing.T) {
	s := Summarize([]rec{{"a", math.NaN()}, {"a", 5}, {"b", math.Inf(1)}}, recAmount, recKey)
	assert.Equal(t, 5.0, s.Total)
}

func TestClassifyUtilization(t *testing.T) {
	tests := []struct {
		used, capacity float64
		want           domain.UtilizationStatus
	}{
		{89, 100, domain.UtilizationNormal},
		{90, 100, domain.UtilizationNearLimit},
		{99.99, 100, domain.UtilizationNearLimit},
		{100, 100, domain.UtilizationExceeded},
		{150, 100, domain.UtilizationExceeded},
		{0, 0, domain.UtilizationNormal},
		{-5, 0, domain.UtilizationNormal},
		{1, 0, domain.UtilizationExceeded},
		{1, -10, domain.UtilizationExceeded},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyUtilization(tt.used, tt.capacity), "used=%v capacity=%v", tt.used, tt.capacity)
	}
}

func TestClassifyUtilization_Monotonic(t *testing.T) {
	for _, capacity := range []float64{0, 1, 3, 100, 1234.56} {
		prev := -1
		for used := -10.0; used <= 2*capacity+10; used += 0.37 {
			rank := ClassifyUtilization(used, capacity).Rank()
			require.GreaterOrEqual(t, rank, prev, "capacity=%v used=%v", capacity, used)
			prev = rank
		}
	}
}

func TestNewUtilization_KeepsTrueValue(t *testing.T) {
	u := NewUtilization(150, 100)
	assert.Equal(t, 150.0, u.Percentage)
	assert.Equal(t, 100.0, u.DisplayPercentage)
	assert.Equal(t, domain.UtilizationExceeded, u.Status)
	assert.Equal(t, domain.SeverityCritical, u.Severity)

	zero := NewUtilization(0, 0)
	assert.Equal(t, 0.0, zero.Percentage)
	assert.Equal(t, domain.UtilizationNormal, zero.Status)

	noCap := NewUtilization(10, 0)
	assert.Equal(t, 100.0, noCap.DisplayPercentage)
	assert.Equal(t, domain.UtilizationExceeded, noCap.Status)
}

func TestCompareToBaseline(t *testing.T) {
	c := CompareToBaseline(500, 0)
	assert.Equal(t, domain.TrendUp, c.Direction)
	assert.Nil(t, c.Percentage)
	assert.False(t, c.HasBaseline)
	assert.Equal(t, 500.0, c.Difference)

	c = CompareToBaseline(80, 100)
	assert.Equal(t, domain.TrendDown, c.Direction)
	require.NotNil(t, c.Percentage)
	assert.InDelta(t, -20, *c.Percentage, 1e-9)
	assert.True(t, c.HasBaseline)

	c = CompareToBaseline(-50, -100)
	assert.Equal(t, domain.TrendUp, c.Direction)
	require.NotNil(t, c.Percentage)
	assert.InDelta(t, 50, *c.Percentage, 1e-9)

	c = CompareToBaseline(0, 0)
	assert.Equal(t, domain.TrendStable, c.Direction)
	assert.Nil(t, c.Percentage)

	c = CompareToBaseline(96.2, 96.20)
	assert.Equal(t, domain.TrendStable, c.Direction)
	assert.Equal(t, 0.0, c.Difference)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{date(2026, 1, 31), 1, date(2026, 2, 28)},
		{date(2028, 1, 31), 1, date(2028, 2, 29)},
		{date(2026, 3, 31), -1, date(2026, 2, 28)},
		{date(2026, 10, 15), 3, date(2027, 1, 15)},
		{date(2026, 5, 31), 12, date(2027, 5, 31)},
		{date(2026, 8, 31), 1, date(2026, 9, 30)},
	}
	for _, tt := range tests {
		assert.True(t, tt.want.Equal(AddMonths(tt.in, tt.n)), "AddMonths(%s, %d) = %s", tt.in, tt.n, AddMonths(tt.in, tt.n))
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	assert.InDelta(t, 33.25, MonthlyEquivalent(399, domain.FrequencyAnnual), 1e-9)
	assert.InDelta(t, 43.30, MonthlyEquivalent(10, domain.FrequencyWeekly), 1e-9)
	assert.InDelta(t, 29.90, MonthlyEquivalent(29.90, domain.FrequencyMonthly), 1e-9)
	assert.InDelta(t, 20, MonthlyEquivalent(60, domain.FrequencyQuarterly), 1e-9)
	assert.InDelta(t, 15, MonthlyEquivalent(90, domain.FrequencySemiannual), 1e-9)
	assert.InDelta(t, 12, MonthlyEquivalent(12, domain.Frequency("daily")), 1e-9)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
