package domain

// ============================================================
// Budgets & Credit Cards
// ============================================================

// BudgetPeriod is the window a budget limit applies to.
type BudgetPeriod string

const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetWeekly, BudgetMonthly, BudgetYearly:
		return true
	}
	return false
}

func (p BudgetPeriod) Label() string {
	switch p {
	case BudgetWeekly:
		return "Semanal"
	case BudgetMonthly:
		return "Mensal"
	case BudgetYearly:
		return "Anual"
	}
	return string(p)
}

// Budget is a spending limit for one category.
type Budget struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Limit    float64      `json:"limit"`
	Spent    float64      `json:"spent"`
	Period   BudgetPeriod `json:"period"`
}

// BudgetItem is a budget with its derived utilization.
type BudgetItem struct {
	Budget
	Remaining   float64     `json:"remaining"`
	Utilization Utilization `json:"utilization"`
}

// BudgetSummary aggregates all category budgets.
type BudgetSummary struct {
	TotalLimit     float64                   `json:"totalLimit"`
	TotalSpent     float64                   `json:"totalSpent"`
	TotalRemaining float64                   `json:"totalRemaining"`
	Utilization    Utilization               `json:"utilization"`
	StatusCounts   map[UtilizationStatus]int `json:"statusCounts"`
	Items          []BudgetItem              `json:"items"`
}

// CreditCard is a card with a credit limit.
type CreditCard struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	LastDigits string  `json:"lastDigits"`
	Limit      float64 `json:"limit"`
	Used       float64 `json:"used"`
	ClosingDay int     `json:"closingDay"`
	DueDay     int     `json:"dueDay"`
}

// Available is the unused part of the limit, never negative.
func (c CreditCard) Available() float64 {
	if c.Used >= c.Limit {
		return 0
	}
	return c.Limit - c.Used
}

// CardItem is a card with its derived usage.
type CardItem struct {
	CreditCard
	Available float64     `json:"available"`
	Usage     Utilization `json:"usage"`
}

// CardsSummary aggregates all credit cards.
type CardsSummary struct {
	TotalLimit     float64                   `json:"totalLimit"`
	TotalUsed      float64                   `json:"totalUsed"`
	TotalAvailable float64                   `json:"totalAvailable"`
	Usage          Utilization               `json:"usage"`
	StatusCounts   map[UtilizationStatus]int `json:"statusCounts"`
	Cards          []CardItem                `json:"cards"`
}
