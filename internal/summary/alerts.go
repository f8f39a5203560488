package summary

import (
	"fmt"
	"sort"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/format"
)

// AlertInput is what the alert rules look at.
type AlertInput struct {
	Budgets       domain.BudgetSummary
	Cards         domain.CardsSummary
	Debts         []domain.Debt
	Goals         []domain.FinancialGoal
	Subscriptions []domain.Subscription
	Upcoming      []domain.UpcomingBilling
}

// DeriveAlerts evaluates every alert rule. Alert IDs only depend on the
// rule and the entity, so a dismissal keeps matching after recomputation.
// Output is ordered critical first, then by ID.
func DeriveAlerts(in AlertInput) []domain.Alert {
	alerts := []domain.Alert{}

	for _, b := range in.Budgets.Items {
		if b.Utilization.Status == domain.UtilizationNormal {
			continue
		}
		alerts = append(alerts, domain.Alert{
			ID:       domain.AlertID(domain.AlertBudget, b.ID),
			Kind:     domain.AlertBudget,
			Severity: b.Utilization.Severity,
			EntityID: b.ID,
			Title:    fmt.Sprintf("Orçamento de %s: %s", b.Category, b.Utilization.Status.Label()),
			Message: fmt.Sprintf("%s de %s usados (%s)",
				format.BRL(b.Spent), format.BRL(b.Limit), format.Percent(b.Utilization.Percentage)),
		})
	}

	for _, c := range in.Cards.Cards {
		if c.Usage.Status == domain.UtilizationNormal {
			continue
		}
		alerts = append(alerts, domain.Alert{
			ID:       domain.AlertID(domain.AlertCard, c.ID),
			Kind:     domain.AlertCard,
			Severity: c.Usage.Severity,
			EntityID: c.ID,
			Title:    fmt.Sprintf("Cartão %s: %s", c.Name, c.Usage.Status.Label()),
			Message:  fmt.Sprintf("Disponível: %s de %s", format.BRL(c.Available), format.BRL(c.Limit)),
		})
	}

	for _, d := range in.Debts {
		if d.Status != domain.DebtLate {
			continue
		}
		alerts = append(alerts, domain.Alert{
			ID:       domain.AlertID(domain.AlertDebtLate, d.ID),
			Kind:     domain.AlertDebtLate,
			Severity: d.Status.Severity(),
			EntityID: d.ID,
			Title:    fmt.Sprintf("%s em atraso", d.Name),
			Message:  fmt.Sprintf("Parcela de %s com %s", format.BRL(d.MonthlyPayment), d.Creditor),
		})
	}

	for _, g := range in.Goals {
		if !g.IsBehind() {
			continue
		}
		alerts = append(alerts, domain.Alert{
			ID:       domain.AlertID(domain.AlertGoalBehind, g.ID),
			Kind:     domain.AlertGoalBehind,
			Severity: domain.SeverityAttention,
			EntityID: g.ID,
			Title:    fmt.Sprintf("Meta %q atrasada", g.Name),
			Message: fmt.Sprintf("Aporte de %s por mês, o necessário é %s",
				format.BRL(g.MonthlyContribution), format.BRL(g.RequiredMonthlyContribution)),
		})
	}

	renewals := make(map[string]domain.Subscription)
	for _, s := range in.Subscriptions {
		if s.Status.Billable() && s.HasRisk(domain.RiskAnnualRenewal) {
			renewals[s.ID] = s
		}
	}
	for _, u := range in.Upcoming {
		if _, ok := renewals[u.SubscriptionID]; !ok {
			continue
		}
		alerts = append(alerts, domain.Alert{
			ID:       domain.AlertID(domain.AlertSubscriptionRenewal, u.SubscriptionID),
			Kind:     domain.AlertSubscriptionRenewal,
			Severity: domain.SeverityAttention,
			EntityID: u.SubscriptionID,
			Title:    fmt.Sprintf("Renovação anual de %s", u.Name),
			Message:  fmt.Sprintf("%s em %d dia(s)", format.BRL(u.Amount), u.DaysUntil),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := severityRank(alerts[i].Severity), severityRank(alerts[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return alerts[i].ID < alerts[j].ID
	})
	return alerts
}

// WithoutDismissed drops alerts whose ID is in dismissed.
func WithoutDismissed(alerts []domain.Alert, dismissed map[string]bool) []domain.Alert {
	out := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !dismissed[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

func severityRank(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return 2
	case domain.SeverityAttention:
		return 1
	}
	return 0
}
