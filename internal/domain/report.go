package domain

import "time"

// ============================================================
// Reports, Alerts & Dashboard
// ============================================================

// ReportPeriod is a calendar month range [From, To).
type ReportPeriod struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Label string    `json:"label"`
}

// CategoryTrend compares one category across two periods.
type CategoryTrend struct {
	Category   string     `json:"category"`
	Current    float64    `json:"current"`
	Previous   float64    `json:"previous"`
	Comparison Comparison `json:"comparison"`
}

// MonthlyTotal is the spending of one calendar month.
type MonthlyTotal struct {
	Month string  `json:"month"` // 2006-01
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Report compares the current month with the previous one.
type Report struct {
	Period     ReportPeriod    `json:"period"`
	TotalSpent float64         `json:"totalSpent"`
	Comparison Comparison      `json:"comparison"`
	Categories []CategoryTrend `json:"categories"`
	Monthly    []MonthlyTotal  `json:"monthly"`
}

// AlertKind names the rule that produced an alert.
type AlertKind string

const (
	AlertBudget              AlertKind = "budget"
	AlertCard                AlertKind = "card"
	AlertDebtLate            AlertKind = "debt_late"
	AlertGoalBehind          AlertKind = "goal_behind"
	AlertSubscriptionRenewal AlertKind = "subscription_renewal"
)

func (k AlertKind) Label() string {
	switch k {
	case AlertBudget:
		return "Orçamento"
	case AlertCard:
		return "Cartão"
	case AlertDebtLate:
		return "Dívida em atraso"
	case AlertGoalBehind:
		return "Meta atrasada"
	case AlertSubscriptionRenewal:
		return "Renovação de assinatura"
	}
	return string(k)
}

// Alert is a derived, dismissible notice. ID is stable across recomputations.
type Alert struct {
	ID       string    `json:"id"`
	Kind     AlertKind `json:"kind"`
	Severity Severity  `json:"severity"`
	EntityID string    `json:"entityId"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
}

// AlertID builds the deterministic alert identifier.
func AlertID(kind AlertKind, entityID string) string {
	return string(kind) + ":" + entityID
}

// Settings are per-user inputs to the reducers.
type Settings struct {
	Timezone           string   `json:"timezone"`
	SubscriptionBudget *float64 `json:"subscriptionBudget,omitempty"`
	MonthlyCapacity    *float64 `json:"monthlyCapacity,omitempty"`
	UpcomingWindowDays int      `json:"upcomingWindowDays"`
}

// Baselines are previous-period snapshots used for comparisons.
type Baselines struct {
	AccountsBalance *float64 `json:"accountsBalance,omitempty"`
	NetWorth        *float64 `json:"netWorth,omitempty"`
}

// PurchasesView is the purchases screen: summary plus day groups.
type PurchasesView struct {
	Period  ReportPeriod     `json:"period"`
	Summary PurchasesSummary `json:"summary"`
	Days    []DayGroup       `json:"days"`
}

// AccountsView is the accounts screen.
type AccountsView struct {
	Summary  AccountSummary `json:"summary"`
	Accounts []Account      `json:"accounts"`
}

// Dashboard is every summary of the money module in one payload.
type Dashboard struct {
	UserID        string               `json:"userId"`
	GeneratedAt   time.Time            `json:"generatedAt"`
	Accounts      AccountSummary       `json:"accounts"`
	Budgets       BudgetSummary        `json:"budgets"`
	Cards         CardsSummary         `json:"cards"`
	Purchases     PurchasesSummary     `json:"purchases"`
	Subscriptions SubscriptionsSummary `json:"subscriptions"`
	Debts         DebtsSummary         `json:"debts"`
	Investments   InvestmentsSummary   `json:"investments"`
	Patrimony     PatrimonySummary     `json:"patrimony"`
	Goals         GoalsSummary         `json:"goals"`
	Alerts        []Alert              `json:"alerts"`
}
