package service

import (
	"context"
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/summary"
)

// ============================================================
// Dashboard
// ============================================================

// Dashboard computes every summary plus the active alerts from one
// concurrent read of the user's collections.
func (s *MoneyService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	ctx, end := startSpan(ctx, "Dashboard", userID)
	defer end()
	defer s.timed("dashboard")()

	return cached(ctx, s, userID, "dashboard", nil, func() (*domain.Dashboard, error) {
		c, err := s.load(ctx, userID, needAll, monthWithPrevious)
		if err != nil {
			return nil, err
		}
		budgets := summary.SummarizeBudgets(c.budgets)
		cards := summary.SummarizeCards(c.cards)
		subs := c.subscriptionsSummary()

		return &domain.Dashboard{
			UserID:        userID,
			GeneratedAt:   c.now,
			Accounts:      summary.SummarizeAccounts(c.accounts, c.baselines.AccountsBalance),
			Budgets:       budgets,
			Cards:         cards,
			Purchases:     c.purchasesView("month").Summary,
			Subscriptions: subs,
			Debts:         summary.SummarizeDebts(c.debts, c.installments),
			Investments:   summary.SummarizeInvestments(c.assets),
			Patrimony:     summary.SummarizePatrimony(c.patAssets, c.patLiabs, c.baselines.NetWorth),
			Goals:         summary.SummarizeGoals(c.goals, c.now, c.settings.MonthlyCapacity),
			Alerts:        c.alerts(budgets, cards, subs),
		}, nil
	})
}

// ============================================================
// Per-domain screens
// ============================================================

func (s *MoneyService) Accounts(ctx context.Context, userID string) (*domain.AccountsView, error) {
	ctx, end := startSpan(ctx, "Accounts", userID)
	defer end()

	return cached(ctx, s, userID, "accounts", nil, func() (*domain.AccountsView, error) {
		c, err := s.load(ctx, userID, needAccounts|needBaselines, nil)
		if err != nil {
			return nil, err
		}
		return &domain.AccountsView{
			Summary:  summary.SummarizeAccounts(c.accounts, c.baselines.AccountsBalance),
			Accounts: c.accounts,
		}, nil
	})
}

func (s *MoneyService) Budgets(ctx context.Context, userID string) (*domain.BudgetSummary, error) {
	ctx, end := startSpan(ctx, "Budgets", userID)
	defer end()

	return cached(ctx, s, userID, "budgets", nil, func() (*domain.BudgetSummary, error) {
		c, err := s.load(ctx, userID, needBudgets, nil)
		if err != nil {
			return nil, err
		}
		out := summary.SummarizeBudgets(c.budgets)
		return &out, nil
	})
}

func (s *MoneyService) Cards(ctx context.Context, userID string) (*domain.CardsSummary, error) {
	ctx, end := startSpan(ctx, "Cards", userID)
	defer end()

	return cached(ctx, s, userID, "cards", nil, func() (*domain.CardsSummary, error) {
		c, err := s.load(ctx, userID, needCards, nil)
		if err != nil {
			return nil, err
		}
		out := summary.SummarizeCards(c.cards)
		return &out, nil
	})
}

// Purchases returns the purchases screen for period ("7d", "30d" or
// "month"), compared against the window of the same length before it.
func (s *MoneyService) Purchases(ctx context.Context, userID, period string) (*domain.PurchasesView, error) {
	ctx, end := startSpan(ctx, "Purchases", userID)
	defer end()

	if _, ok := summary.PurchasePeriod(period, s.now(), s.defaultLoc); !ok {
		return nil, &domain.ErrValidation{Field: "period", Message: "must be one of 7d, 30d, month"}
	}
	if period == "" {
		period = "month"
	}

	return cached(ctx, s, userID, "purchases", []any{period}, func() (*domain.PurchasesView, error) {
		c, err := s.load(ctx, userID, needPurchases, periodWithPrevious(period))
		if err != nil {
			return nil, err
		}
		view := c.purchasesView(period)
		return &view, nil
	})
}

func (s *MoneyService) Subscriptions(ctx context.Context, userID string) (*domain.SubscriptionsSummary, error) {
	ctx, end := startSpan(ctx, "Subscriptions", userID)
	defer end()

	return cached(ctx, s, userID, "subscriptions", nil, func() (*domain.SubscriptionsSummary, error) {
		c, err := s.load(ctx, userID, needSubscriptions, nil)
		if err != nil {
			return nil, err
		}
		out := c.subscriptionsSummary()
		return &out, nil
	})
}

func (s *MoneyService) Debts(ctx context.Context, userID string) (*domain.DebtsSummary, error) {
	ctx, end := startSpan(ctx, "Debts", userID)
	defer end()

	return cached(ctx, s, userID, "debts", nil, func() (*domain.DebtsSummary, error) {
		c, err := s.load(ctx, userID, needDebts|needInstallments, nil)
		if err != nil {
			return nil, err
		}
		out := summary.SummarizeDebts(c.debts, c.installments)
		return &out, nil
	})
}

func (s *MoneyService) Investments(ctx context.Context, userID string) (*domain.InvestmentsSummary, error) {
	ctx, end := startSpan(ctx, "Investments", userID)
	defer end()

	return cached(ctx, s, userID, "investments", nil, func() (*domain.InvestmentsSummary, error) {
		c, err := s.load(ctx, userID, needAssets, nil)
		if err != nil {
			return nil, err
		}
		out := summary.SummarizeInvestments(c.assets)
		return &out, nil
	})
}

func (s *MoneyService) Patrimony(ctx context.Context, userID string) (*domain.PatrimonySummary, error) {
	ctx, end := startSpan(ctx, "Patrimony", userID)
	defer end()

	return cached(ctx, s, userID, "patrimony", nil, func() (*domain.PatrimonySummary, error) {
		c, err := s.load(ctx, userID, needPatrimony|needBaselines, nil)
		if err != nil {
			return nil, err
		}
		out := summary.SummarizePatrimony(c.patAssets, c.patLiabs, c.baselines.NetWorth)
		return &out, nil
	})
}

func (s *MoneyService) Goals(ctx context.Context, userID string) (*domain.GoalsSummary, error) {
	ctx, end := startSpan(ctx, "Goals", userID)
	defer end()

	return cached(ctx, s, userID, "goals", nil, func() (*domain.GoalsSummary, error) {
		c, err := s.load(ctx, userID, needGoals, nil)
		if err != nil {
			return nil, err
		}
		out := summary.SummarizeGoals(c.goals, c.now, c.settings.MonthlyCapacity)
		return &out, nil
	})
}

// Report builds the spending report over the last months calendar months
// (0 means the default).
func (s *MoneyService) Report(ctx context.Context, userID string, months int) (*domain.Report, error) {
	ctx, end := startSpan(ctx, "Report", userID)
	defer end()
	defer s.timed("report")()

	if months == 0 {
		months = summary.DefaultReportMonths
	}
	if months < 1 || months > summary.MaxReportMonths {
		return nil, &domain.ErrValidation{Field: "months", Message: "must be between 1 and 24"}
	}

	return cached(ctx, s, userID, "report", []any{months}, func() (*domain.Report, error) {
		c, err := s.load(ctx, userID, needPurchases, reportWindow(months))
		if err != nil {
			return nil, err
		}
		out := summary.BuildReport(c.purchases, c.now, c.loc, months)
		return &out, nil
	})
}

// Alerts lists the alerts the user has not dismissed.
func (s *MoneyService) Alerts(ctx context.Context, userID string) ([]domain.Alert, error) {
	ctx, end := startSpan(ctx, "Alerts", userID)
	defer end()

	return cached(ctx, s, userID, "alerts", nil, func() ([]domain.Alert, error) {
		c, err := s.load(ctx, userID, needBudgets|needCards|needDebts|needGoals|needSubscriptions|needDismissed, nil)
		if err != nil {
			return nil, err
		}
		return c.alerts(summary.SummarizeBudgets(c.budgets), summary.SummarizeCards(c.cards), c.subscriptionsSummary()), nil
	})
}

// ============================================================
// Derivations over a loaded snapshot
// ============================================================

func (c *collections) subscriptionsSummary() domain.SubscriptionsSummary {
	return summary.SummarizeSubscriptions(c.subscriptions, c.now, c.loc, c.settings.UpcomingWindowDays, c.settings.SubscriptionBudget)
}

func (c *collections) purchasesView(period string) domain.PurchasesView {
	current, _ := summary.PurchasePeriod(period, c.now, c.loc)
	previous := summary.PreviousPeriod(current)

	inPeriod := summary.FilterPurchases(c.purchases, current)
	prevTotal := summary.Sum(summary.FilterPurchases(c.purchases, previous), func(p domain.Purchase) float64 { return p.Amount })

	return domain.PurchasesView{
		Period:  current,
		Summary: summary.SummarizePurchases(inPeriod, &prevTotal),
		Days:    summary.GroupByDay(inPeriod, c.now, c.loc),
	}
}

func (c *collections) alerts(budgets domain.BudgetSummary, cards domain.CardsSummary, subs domain.SubscriptionsSummary) []domain.Alert {
	all := summary.DeriveAlerts(summary.AlertInput{
		Budgets:       budgets,
		Cards:         cards,
		Debts:         c.debts,
		Goals:         c.goals,
		Subscriptions: c.subscriptions,
		Upcoming:      subs.Upcoming,
	})
	return summary.WithoutDismissed(all, c.dismissed)
}

// ============================================================
// Purchase windows
// ============================================================

func periodWithPrevious(period string) window {
	return func(now time.Time, loc *time.Location) (time.Time, time.Time) {
		current, _ := summary.PurchasePeriod(period, now, loc)
		return summary.PreviousPeriod(current).From, current.To
	}
}

var monthWithPrevious = periodWithPrevious("month")

// reportWindow covers the charted months and the month before the current
// one, which the month-over-month comparison needs.
func reportWindow(months int) window {
	return func(now time.Time, loc *time.Location) (time.Time, time.Time) {
		start := summary.StartOfMonth(now, loc)
		return summary.AddMonths(start, -max(months-1, 1)), summary.AddMonths(start, 1)
	}
}
