package domain

import "time"

// ============================================================
// Subscriptions
// ============================================================

// Frequency is the billing cadence of a subscription.
type Frequency string

const (
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

func (f Frequency) Label() string {
	switch f {
	case FrequencyWeekly:
		return "Semanal"
	case FrequencyMonthly:
		return "Mensal"
	case FrequencyQuarterly:
		return "Trimestral"
	case FrequencySemiannual:
		return "Semestral"
	case FrequencyAnnual:
		return "Anual"
	}
	return string(f)
}

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrial, SubscriptionPaused, SubscriptionCancelled:
		return true
	}
	return false
}

func (s SubscriptionStatus) Label() string {
	switch s {
	case SubscriptionActive:
		return "Ativa"
	case SubscriptionTrial:
		return "Período de teste"
	case SubscriptionPaused:
		return "Pausada"
	case SubscriptionCancelled:
		return "Cancelada"
	}
	return string(s)
}

// Billable reports whether the subscription still generates charges.
func (s SubscriptionStatus) Billable() bool {
	return s == SubscriptionActive || s == SubscriptionTrial
}

// SubscriptionRisk is a tag marking a subscription worth reviewing.
type SubscriptionRisk string

const (
	RiskUnused        SubscriptionRisk = "unused"
	RiskOverpriced    SubscriptionRisk = "overpriced"
	RiskRedundant     SubscriptionRisk = "redundant"
	RiskAnnualRenewal SubscriptionRisk = "annual_renewal"
	RiskPriceIncrease SubscriptionRisk = "price_increase"
)

// AllSubscriptionRisks lists the risk tags in display order.
var AllSubscriptionRisks = []SubscriptionRisk{
	RiskUnused, RiskOverpriced, RiskRedundant, RiskAnnualRenewal, RiskPriceIncrease,
}

func (r SubscriptionRisk) Valid() bool {
	switch r {
	case RiskUnused, RiskOverpriced, RiskRedundant, RiskAnnualRenewal, RiskPriceIncrease:
		return true
	}
	return false
}

func (r SubscriptionRisk) Label() string {
	switch r {
	case RiskUnused:
		return "Sem uso recente"
	case RiskOverpriced:
		return "Preço acima da média"
	case RiskRedundant:
		return "Serviço redundante"
	case RiskAnnualRenewal:
		return "Renovação anual próxima"
	case RiskPriceIncrease:
		return "Aumento recente de preço"
	}
	return string(r)
}

// Subscription is a recurring charge.
type Subscription struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Amount          float64            `json:"amount"`
	Frequency       Frequency          `json:"frequency"`
	Category        string             `json:"category"`
	NextBillingDate time.Time          `json:"nextBillingDate"`
	Status          SubscriptionStatus `json:"status"`
	Risks           []SubscriptionRisk `json:"risks,omitempty"`
}

// HasRisk reports whether the subscription is tagged with r.
func (s Subscription) HasRisk(r SubscriptionRisk) bool {
	for _, x := range s.Risks {
		if x == r {
			return true
		}
	}
	return false
}

// RiskGroup collects the billable subscriptions sharing a risk tag.
type RiskGroup struct {
	Risk            SubscriptionRisk `json:"risk"`
	Label           string           `json:"label"`
	MonthlyTotal    float64          `json:"monthlyTotal"`
	SubscriptionIDs []string         `json:"subscriptionIds"`
}

// UpcomingBilling is a charge due inside the upcoming window.
type UpcomingBilling struct {
	SubscriptionID string    `json:"subscriptionId"`
	Name           string    `json:"name"`
	Amount         float64   `json:"amount"`
	Date           time.Time `json:"date"`
	DaysUntil      int       `json:"daysUntil"`
}

// SubscriptionsSummary aggregates recurring charges.
type SubscriptionsSummary struct {
	TotalMonthly  float64           `json:"totalMonthly"`
	TotalAnnual   float64           `json:"totalAnnual"`
	ActiveCount   int               `json:"activeCount"`
	TotalCount    int               `json:"totalCount"`
	ByCategory    Breakdown         `json:"byCategory"`
	AtRisk        []RiskGroup       `json:"atRisk"`
	AtRiskMonthly float64           `json:"atRiskMonthly"`
	AtRiskCount   int               `json:"atRiskCount"`
	Upcoming      []UpcomingBilling `json:"upcoming"`
	WindowDays    int               `json:"windowDays"`
	BudgetUsage   *Utilization      `json:"budgetUsage,omitempty"`
}
