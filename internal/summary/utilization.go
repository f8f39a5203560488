package summary

import "github.com/boddenberg/money-bfa-go/internal/domain"

// Tier thresholds, in percent of capacity.
const (
	NearLimitThreshold = 90.0
	ExceededThreshold  = 100.0
)

// UtilizationPercent is used×100/capacity, uncapped. ok is false when
// capacity is not positive.
func UtilizationPercent(used, capacity float64) (pct float64, ok bool) {
	if capacity <= 0 {
		return 0, false
	}
	return used * 100 / capacity, true
}

// ClassifyUtilization maps used vs capacity onto the three tiers.
// With no capacity, any positive usage is already over the limit.
func ClassifyUtilization(used, capacity float64) domain.UtilizationStatus {
	pct, ok := UtilizationPercent(used, capacity)
	if !ok {
		if used > 0 {
			return domain.UtilizationExceeded
		}
		return domain.UtilizationNormal
	}
	switch {
	case pct >= ExceededThreshold:
		return domain.UtilizationExceeded
	case pct >= NearLimitThreshold:
		return domain.UtilizationNearLimit
	}
	return domain.UtilizationNormal
}

// NewUtilization builds the full utilization record.
func NewUtilization(used, capacity float64) domain.Utilization {
	status := ClassifyUtilization(used, capacity)
	pct, ok := UtilizationPercent(used, capacity)
	if !ok && status == domain.UtilizationExceeded {
		pct = ExceededThreshold
	}
	return domain.Utilization{
		Used:              used,
		Capacity:          capacity,
		Percentage:        pct,
		DisplayPercentage: clamp(pct, 0, 100),
		Status:            status,
		Severity:          status.Severity(),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func newStatusCounts() map[domain.UtilizationStatus]int {
	return map[domain.UtilizationStatus]int{
		domain.UtilizationNormal:    0,
		domain.UtilizationNearLimit: 0,
		domain.UtilizationExceeded:  0,
	}
}
