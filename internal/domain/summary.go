package domain

// ============================================================
// Shared summary building blocks
// ============================================================

// Share is one categorical slice of a summarized collection.
type Share struct {
	Key        string  `json:"key"`
	Label      string  `json:"label,omitempty"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Breakdown is a categorical split, ordered by total descending.
type Breakdown []Share

// Lookup returns the share for key.
func (b Breakdown) Lookup(key string) (Share, bool) {
	for _, s := range b {
		if s.Key == key {
			return s, true
		}
	}
	return Share{}, false
}

// Trend is the direction of a comparison against a baseline.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Comparison describes a value against a previous-period baseline.
// Percentage is nil when there is no usable baseline (previous == 0).
type Comparison struct {
	Current     float64  `json:"current"`
	Previous    float64  `json:"previous"`
	Difference  float64  `json:"difference"`
	Percentage  *float64 `json:"percentage"`
	Direction   Trend    `json:"direction"`
	HasBaseline bool     `json:"hasBaseline"`
}

// UtilizationStatus is the three-tier classification of used vs capacity.
type UtilizationStatus string

const (
	UtilizationNormal    UtilizationStatus = "normal"
	UtilizationNearLimit UtilizationStatus = "near_limit"
	UtilizationExceeded  UtilizationStatus = "exceeded"
)

// Rank orders the tiers: normal < near_limit < exceeded.
func (s UtilizationStatus) Rank() int {
	switch s {
	case UtilizationNormal:
		return 0
	case UtilizationNearLimit:
		return 1
	case UtilizationExceeded:
		return 2
	}
	return -1
}

// Severity maps the tier to the debt/subscription vocabulary.
func (s UtilizationStatus) Severity() Severity {
	switch s {
	case UtilizationNearLimit:
		return SeverityAttention
	case UtilizationExceeded:
		return SeverityCritical
	}
	return SeverityNormal
}

// Label returns the display label.
func (s UtilizationStatus) Label() string {
	switch s {
	case UtilizationNormal:
		return "Dentro do limite"
	case UtilizationNearLimit:
		return "Próximo do limite"
	case UtilizationExceeded:
		return "Limite excedido"
	}
	return string(s)
}

// Severity is the normal/attention/critical vocabulary used by debts,
// subscriptions and alerts.
type Severity string

const (
	SeverityNormal    Severity = "normal"
	SeverityAttention Severity = "attention"
	SeverityCritical  Severity = "critical"
)

// Utilization is used vs capacity. Percentage is the true value (may exceed
// 100); DisplayPercentage is clamped to [0, 100] for progress bars.
type Utilization struct {
	Used              float64           `json:"used"`
	Capacity          float64           `json:"capacity"`
	Percentage        float64           `json:"percentage"`
	DisplayPercentage float64           `json:"displayPercentage"`
	Status            UtilizationStatus `json:"status"`
	Severity          Severity          `json:"severity"`
}

// Summary is the generic aggregate of a collection.
type Summary struct {
	Total       float64      `json:"total"`
	Count       int          `json:"count"`
	ByCategory  Breakdown    `json:"byCategory,omitempty"`
	Comparison  *Comparison  `json:"comparison,omitempty"`
	Utilization *Utilization `json:"utilization,omitempty"`
}
