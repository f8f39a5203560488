package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

var (
	saoPaulo = time.FixedZone("BRT", -3*3600)
	now      = time.Date(2026, 10, 16, 14, 30, 0, 0, saoPaulo)
)

func ptr(v float64) *float64 { return &v }

func TestPurchases_ThreeToday(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: "p1", Amount: 42.90, Date: now.Add(-1 * time.Hour), Category: "Alimentação", PaymentMethod: domain.PaymentPix},
		{ID: "p2", Amount: 28.50, Date: now.Add(-2 * time.Hour), Category: "Transporte", PaymentMethod: domain.PaymentCreditCard},
		{ID: "p3", Amount: 24.80, Date: now.Add(-3 * time.Hour), Category: "Alimentação", PaymentMethod: domain.PaymentDebitCard},
	}

	s := SummarizePurchases(purchases, nil)
	assert.Equal(t, 96.20, s.TotalSpent)
	assert.Equal(t, 3, s.TransactionCount)
	assert.Equal(t, 32.07, s.AverageTicket)
	assert.Nil(t, s.Comparison)

	groups := GroupByDay(purchases, now, saoPaulo)
	require.Len(t, groups, 1)
	assert.Equal(t, "Hoje", groups[0].Label)
	assert.Equal(t, 96.20, groups[0].TotalSpent)
	assert.Equal(t, "R$ 96,20", groups[0].TotalFormatted)
	assert.Equal(t, 3, groups[0].Count)
}

func TestPurchases_EmptyAverage(t *testing.T) {
	s := SummarizePurchases(nil, ptr(100))
	assert.Equal(t, 0.0, s.AverageTicket)
	require.NotNil(t, s.Comparison)
	assert.Equal(t, domain.TrendDown, s.Comparison.Direction)
}

func TestGroupByDay_OrderAndLabels(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: "b", Amount: 10, Date: now.AddDate(0, 0, -1)},
		{ID: "a", Amount: 5, Date: now.AddDate(0, 0, -1)},
		{ID: "c", Amount: 7, Date: now.Add(-10 * time.Minute)},
		{ID: "d", Amount: 3, Date: time.Date(2026, 10, 12, 9, 0, 0, 0, saoPaulo)},
		{ID: "e", Amount: 1, Date: time.Date(2025, 12, 31, 23, 0, 0, 0, saoPaulo)},
	}

	groups := GroupByDay(purchases, now, saoPaulo)
	require.Len(t, groups, 4)
	assert.Equal(t, "Hoje", groups[0].Label)
	assert.Equal(t, "Ontem", groups[1].Label)
	assert.Equal(t, "segunda-feira, 12/10", groups[2].Label)
	assert.Equal(t, "quarta-feira, 31/12/2025", groups[3].Label)

	// Same timestamp: ID breaks the tie.
	require.Len(t, groups[1].Purchases, 2)
	assert.Equal(t, "a", groups[1].Purchases[0].ID)
	assert.Equal(t, "b", groups[1].Purchases[1].ID)
	assert.Equal(t, 15.0, groups[1].TotalSpent)
}

func TestGroupByDay_UsesLocationForDayBoundary(t *testing.T) {
	// 01:00 UTC on the 16th is still the 15th in São Paulo.
	p := domain.Purchase{ID: "late", Amount: 1, Date: time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)}
	groups := GroupByDay([]domain.Purchase{p}, now, saoPaulo)
	require.Len(t, groups, 1)
	assert.Equal(t, "Ontem", groups[0].Label)
}

func TestGroupByDay_Idempotent(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: "3", Amount: 3.33, Date: now.AddDate(0, 0, -2)},
		{ID: "1", Amount: 1.11, Date: now},
		{ID: "2", Amount: 2.22, Date: now.AddDate(0, 0, -2)},
		{ID: "4", Amount: 4.44, Date: now.AddDate(0, 0, -40)},
		{ID: "0", Amount: 9.99, Date: now},
	}
	first := GroupByDay(purchases, now, saoPaulo)
	second := GroupByDay(Flatten(first), now, saoPaulo)
	assert.Equal(t, first, second)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil, now, saoPaulo))
	assert.Empty(t, Flatten(nil))
}

func TestSubscriptions_Normalization(t *testing.T) {
	subs := []domain.Subscription{
		{ID: "s1", Name: "Antivírus", Amount: 399, Frequency: domain.FrequencyAnnual, Category: "Software", Status: domain.SubscriptionActive,
			NextBillingDate: now.AddDate(0, 0, 3), Risks: []domain.SubscriptionRisk{domain.RiskAnnualRenewal, domain.RiskUnused}},
		{ID: "s2", Name: "Lavanderia", Amount: 10, Frequency: domain.FrequencyWeekly, Category: "Serviços", Status: domain.SubscriptionTrial,
			NextBillingDate: now.AddDate(0, 0, 1)},
		{ID: "s3", Name: "Streaming", Amount: 55.90, Frequency: domain.FrequencyMonthly, Category: "Lazer", Status: domain.SubscriptionCancelled,
			NextBillingDate: now.AddDate(0, 0, 2), Risks: []domain.SubscriptionRisk{domain.RiskUnused}},
		{ID: "s4", Name: "Academia", Amount: 120, Frequency: domain.FrequencyMonthly, Category: "Saúde", Status: domain.SubscriptionActive,
			NextBillingDate: now.AddDate(0, 0, 20)},
	}

	s := SummarizeSubscriptions(subs, now, saoPaulo, 7, ptr(150))
	assert.InDelta(t, 33.25+43.30+120, s.TotalMonthly, 1e-9)
	assert.InDelta(t, (33.25+43.30+120)*12, s.TotalAnnual, 1e-6)
	assert.Equal(t, 3, s.ActiveCount)
	assert.Equal(t, 4, s.TotalCount)

	sw, ok := s.ByCategory.Lookup("Software")
	require.True(t, ok)
	assert.InDelta(t, 33.25, sw.Total, 1e-9)
	_, ok = s.ByCategory.Lookup("Lazer")
	assert.False(t, ok, "cancelled subscriptions do not contribute")

	require.Len(t, s.AtRisk, 2)
	assert.Equal(t, domain.RiskUnused, s.AtRisk[0].Risk)
	assert.Equal(t, []string{"s1"}, s.AtRisk[0].SubscriptionIDs)
	assert.Equal(t, domain.RiskAnnualRenewal, s.AtRisk[1].Risk)
	assert.InDelta(t, 33.25, s.AtRiskMonthly, 1e-9, "tagged twice, counted once")
	assert.Equal(t, 1, s.AtRiskCount)

	require.Len(t, s.Upcoming, 2)
	assert.Equal(t, "s2", s.Upcoming[0].SubscriptionID)
	assert.Equal(t, 1, s.Upcoming[0].DaysUntil)
	assert.Equal(t, "s1", s.Upcoming[1].SubscriptionID)

	require.NotNil(t, s.BudgetUsage)
	assert.Equal(t, domain.UtilizationExceeded, s.BudgetUsage.Status)
}

func TestSubscriptions_WindowEdges(t *testing.T) {
	subs := []domain.Subscription{
		{ID: "today", Amount: 1, Frequency: domain.FrequencyMonthly, Status: domain.SubscriptionActive, NextBillingDate: now},
		{ID: "edge", Amount: 1, Frequency: domain.FrequencyMonthly, Status: domain.SubscriptionActive, NextBillingDate: now.AddDate(0, 0, 7)},
		{ID: "out", Amount: 1, Frequency: domain.FrequencyMonthly, Status: domain.SubscriptionActive, NextBillingDate: now.AddDate(0, 0, 8)},
		{ID: "past", Amount: 1, Frequency: domain.FrequencyMonthly, Status: domain.SubscriptionActive, NextBillingDate: now.AddDate(0, 0, -1)},
	}
	s := SummarizeSubscriptions(subs, now, saoPaulo, 0, nil)
	assert.Equal(t, DefaultUpcomingWindowDays, s.WindowDays)
	ids := []string{}
	for _, u := range s.Upcoming {
		ids = append(ids, u.SubscriptionID)
	}
	assert.Equal(t, []string{"today", "edge"}, ids)
	assert.Nil(t, s.BudgetUsage)
}

func TestSubscriptions_AnnualFollowsDisplayedMonthly(t *testing.T) {
	subs := []domain.Subscription{
		{ID: "q", Amount: 100, Frequency: domain.FrequencyQuarterly, Status: domain.SubscriptionActive, NextBillingDate: now.AddDate(0, 2, 0)},
	}
	s := SummarizeSubscriptions(subs, now, saoPaulo, 7, nil)
	assert.Equal(t, 33.33, s.TotalMonthly)
	assert.Equal(t, 399.96, s.TotalAnnual)
}

func TestProjectLiberationDate(t *testing.T) {
	end := date(2029, 6, 10)
	debts := []domain.Debt{
		{ID: "explicit", Status: domain.DebtActive, EndDate: &end, RemainingPayments: 1, NextDueDate: date(2026, 11, 10)},
		{ID: "projected", Status: domain.DebtActive, RemainingPayments: 40, NextDueDate: date(2026, 11, 30)},
		{ID: "revolving", Status: domain.DebtLate, CurrentBalance: 900},
		{ID: "paid", Status: domain.DebtPaid, RemainingPayments: 100, NextDueDate: date(2026, 11, 1)},
	}
	installments := []domain.Installment{
		{ID: "i1", TotalInstallments: 10, PaidInstallments: 4, NextDueDate: date(2026, 11, 5)},
		{ID: "done", TotalInstallments: 10, PaidInstallments: 10, NextDueDate: date(2040, 1, 1)},
	}

	assert.Nil(t, ProjectLiberationDate(nil, nil))

	got := ProjectLiberationDate(debts, installments)
	require.NotNil(t, got)
	// 2026-11-30 + 40 months = 2030-03-30.
	assert.True(t, date(2030, 3, 30).Equal(*got), "got %s", got)

	got = ProjectLiberationDate(debts[:1], installments)
	require.NotNil(t, got)
	assert.True(t, end.Equal(*got))

	got = ProjectLiberationDate(nil, installments)
	require.NotNil(t, got)
	assert.True(t, date(2027, 5, 5).Equal(*got))

	assert.Nil(t, ProjectLiberationDate(debts[2:], installments[1:]))
}

func TestSummarizeDebts(t *testing.T) {
	debts := []domain.Debt{
		{ID: "d1", Name: "Financiamento", Type: domain.DebtFinancing, OriginalAmount: 30000, CurrentBalance: 18000, MonthlyPayment: 850, Status: domain.DebtActive, RemainingPayments: 22, NextDueDate: date(2026, 11, 10)},
		{ID: "d2", Name: "Cheque especial", Type: domain.DebtOverdraft, OriginalAmount: 1000, CurrentBalance: 1200, MonthlyPayment: 200, Status: domain.DebtLate},
		{ID: "d3", Name: "Empréstimo", Type: domain.DebtLoan, OriginalAmount: 5000, CurrentBalance: 0, MonthlyPayment: 400, Status: domain.DebtPaid},
	}
	installments := []domain.Installment{
		{ID: "i1", InstallmentAmount: 250, TotalInstallments: 10, PaidInstallments: 4, RemainingAmount: 1500, NextDueDate: date(2026, 11, 5)},
		{ID: "i2", InstallmentAmount: 100, TotalInstallments: 3, PaidInstallments: 1, RemainingAmount: 200, NextDueDate: date(2026, 11, 5)},
	}

	s := SummarizeDebts(debts, installments)
	assert.Equal(t, 36000.0, s.TotalOriginal)
	assert.Equal(t, 19200.0, s.TotalBalance)
	assert.Equal(t, 17000.0, s.TotalPaid, "interest on d2 counts as nothing paid")
	require.NotNil(t, s.PaidPercentage)
	assert.InDelta(t, 47.22, *s.PaidPercentage, 0.01)
	assert.Equal(t, 850.0+200+250+100, s.MonthlyCommitment)
	assert.Equal(t, 2, s.DebtCount)
	assert.Equal(t, 1, s.LateCount)
	assert.Equal(t, 2, s.Installments.ActiveCount)
	assert.Equal(t, 1700.0, s.Installments.TotalRemaining)
	assert.Equal(t, 175.0, s.Installments.AverageMonthlyCommitment)
	require.NotNil(t, s.LiberationDate)

	empty := SummarizeDebts(nil, nil)
	assert.Nil(t, empty.PaidPercentage)
	assert.Nil(t, empty.LiberationDate)
	assert.Equal(t, 0.0, empty.Installments.AverageMonthlyCommitment)
}

func TestInstallmentValidate(t *testing.T) {
	ok := domain.Installment{InstallmentAmount: 33.33, TotalInstallments: 3, PaidInstallments: 0, RemainingAmount: 100}
	assert.NoError(t, ok.Validate())

	bad := domain.Installment{InstallmentAmount: 100, TotalInstallments: 5, PaidInstallments: 2, RemainingAmount: 500}
	assert.Error(t, bad.Validate())
}

func TestSummarizeBudgetsAndCards(t *testing.T) {
	budgets := []domain.Budget{
		{ID: "b1", Category: "Mercado", Limit: 100, Spent: 89},
		{ID: "b2", Category: "Lazer", Limit: 100, Spent: 90},
		{ID: "b3", Category: "Transporte", Limit: 100, Spent: 150},
	}
	b := SummarizeBudgets(budgets)
	assert.Equal(t, 300.0, b.TotalLimit)
	assert.Equal(t, 329.0, b.TotalSpent)
	assert.Equal(t, -29.0, b.TotalRemaining)
	assert.Equal(t, domain.UtilizationExceeded, b.Utilization.Status)
	assert.Equal(t, 1, b.StatusCounts[domain.UtilizationNormal])
	assert.Equal(t, 1, b.StatusCounts[domain.UtilizationNearLimit])
	assert.Equal(t, 1, b.StatusCounts[domain.UtilizationExceeded])
	require.Len(t, b.Items, 3)
	assert.Equal(t, "b3", b.Items[0].ID)
	assert.Equal(t, 150.0, b.Items[0].Utilization.Percentage)

	cards := []domain.CreditCard{
		{ID: "c1", Name: "Nubank", Limit: 5000, Used: 4600},
		{ID: "c2", Name: "Inter", Limit: 2000, Used: 2500},
	}
	c := SummarizeCards(cards)
	assert.Equal(t, 7000.0, c.TotalLimit)
	assert.Equal(t, 7100.0, c.TotalUsed)
	assert.Equal(t, 400.0, c.TotalAvailable)
	assert.Equal(t, "c2", c.Cards[0].ID)
	assert.Equal(t, domain.UtilizationNearLimit, c.Cards[1].Usage.Status)
}

func TestSummarizeAccounts(t *testing.T) {
	accounts := []domain.Account{
		{ID: "a1", Institution: "Itaú", Type: domain.AccountChecking, Balance: 2500.50, IsActive: true},
		{ID: "a2", Institution: "Nubank", Type: domain.AccountSavings, Balance: 10000, IsActive: true},
		{ID: "a3", Institution: "Itaú", Type: domain.AccountChecking, Balance: -300, IsActive: true},
		{ID: "a4", Institution: "Caixa", Type: domain.AccountSavings, Balance: 999, IsActive: false},
	}
	s := SummarizeAccounts(accounts, ptr(0))
	assert.Equal(t, 12200.50, s.TotalBalance)
	assert.Equal(t, 4, s.AccountCount)
	assert.Equal(t, 3, s.ActiveCount)
	assert.Equal(t, 1, s.NegativeBalanceCount)
	itau, ok := s.ByInstitution.Lookup("Itaú")
	require.True(t, ok)
	assert.Equal(t, 2200.50, itau.Total)
	checking, _ := s.ByType.Lookup(string(domain.AccountChecking))
	assert.Equal(t, "Conta corrente", checking.Label)
	require.NotNil(t, s.Comparison)
	assert.False(t, s.Comparison.HasBaseline)
	assert.Equal(t, domain.TrendUp, s.Comparison.Direction)
}

func TestSummarizeInvestments(t *testing.T) {
	assets := []domain.Asset{
		{ID: "x1", Class: domain.ClassFixedIncome, Institution: "XP", RiskLevel: domain.RiskLow, Liquidity: domain.LiquidityImmediate, InvestedAmount: 10000, CurrentValue: 10800, IsStrategic: true},
		{ID: "x2", Class: domain.ClassStocks, Institution: "XP", RiskLevel: domain.RiskHigh, Liquidity: domain.LiquidityShortTerm, InvestedAmount: 5000, CurrentValue: 4200},
	}
	s := SummarizeInvestments(assets)
	assert.Equal(t, 15000.0, s.TotalInvested)
	assert.Equal(t, 15000.0, s.CurrentValue)
	assert.Equal(t, 0.0, s.Profitability)
	require.NotNil(t, s.ProfitabilityPercent)
	assert.Equal(t, 0.0, *s.ProfitabilityPercent)
	assert.Equal(t, 10800.0, s.StrategicTotal)
	assert.Equal(t, 1, s.StrategicCount)
	assert.Len(t, s.ByRisk, 2)

	assert.Nil(t, SummarizeInvestments(nil).ProfitabilityPercent)
}

func TestSummarizePatrimony(t *testing.T) {
	assets := []domain.PatrimonyAsset{
		{ID: "p1", Type: domain.PatrimonyProperty, Value: 300000},
		{ID: "p2", Type: domain.PatrimonyCash, Value: 20000},
	}
	liabilities := []domain.PatrimonyLiability{
		{ID: "l1", Type: domain.LiabilityDebts, Value: 80000},
	}
	s := SummarizePatrimony(assets, liabilities, ptr(200000))
	assert.Equal(t, 240000.0, s.NetWorth)
	require.NotNil(t, s.DebtRatio)
	assert.Equal(t, 25.0, *s.DebtRatio)
	require.NotNil(t, s.Variation)
	assert.InDelta(t, 20, *s.Variation.Percentage, 1e-9)

	onlyDebt := SummarizePatrimony(nil, liabilities, nil)
	assert.Nil(t, onlyDebt.DebtRatio)
	assert.Nil(t, onlyDebt.Variation)
	assert.Equal(t, -80000.0, onlyDebt.NetWorth)
}

func TestSummarizeGoals(t *testing.T) {
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(1, 0, 0)
	goals := []domain.FinancialGoal{
		{ID: "g1", Name: "Reserva", TargetAmount: 10000, CurrentAmount: 5000, MonthlyContribution: 500, RequiredMonthlyContribution: 800, Status: domain.GoalActive, Deadline: &future},
		{ID: "g2", Name: "Viagem", TargetAmount: 4000, CurrentAmount: 1000, MonthlyContribution: 300, RequiredMonthlyContribution: 300, Status: domain.GoalActive, Deadline: &past},
		{ID: "g3", Name: "Carro", TargetAmount: 1000, CurrentAmount: 1500, Status: domain.GoalCompleted},
		{ID: "g4", Name: "Casa", TargetAmount: 100000, CurrentAmount: 0, MonthlyContribution: 0, RequiredMonthlyContribution: 2000, Status: domain.GoalPaused},
	}

	s := SummarizeGoals(goals, now, ptr(1000))
	assert.Equal(t, 115000.0, s.TotalTarget)
	assert.Equal(t, 7500.0, s.TotalCurrent)
	// (50 + 25 + 100) / 3, paused excluded, over-funded capped.
	assert.InDelta(t, 58.33, s.AverageProgress, 0.01)
	assert.Equal(t, 1, s.BehindCount)
	assert.Equal(t, 800.0, s.TotalMonthlyContribution)
	assert.Equal(t, 1100.0, s.TotalRequiredMonthly)
	assert.Equal(t, 300.0, s.ContributionGap)
	assert.Equal(t, 2, s.StatusCounts[domain.GoalActive])
	assert.Equal(t, 150.0, s.Goals[2].ProgressPercentage)

	require.Len(t, s.Conflicts, 2)
	assert.Equal(t, domain.ConflictDeadlinePassed, s.Conflicts[0].Kind)
	assert.Equal(t, []string{"g2"}, s.Conflicts[0].GoalIDs)
	assert.Equal(t, domain.ConflictInsufficientCapacity, s.Conflicts[1].Kind)
	assert.Equal(t, 100.0, s.Conflicts[1].Amount)

	none := SummarizeGoals(nil, now, nil)
	assert.Equal(t, 0.0, none.AverageProgress)
	assert.Equal(t, 0.0, none.OverallProgress)
	assert.Empty(t, none.Conflicts)
}

func TestBuildReport(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: "1", Amount: 100, Category: "Mercado", Date: time.Date(2026, 10, 2, 10, 0, 0, 0, saoPaulo)},
		{ID: "2", Amount: 50, Category: "Lazer", Date: time.Date(2026, 10, 10, 10, 0, 0, 0, saoPaulo)},
		{ID: "3", Amount: 80, Category: "Mercado", Date: time.Date(2026, 9, 15, 10, 0, 0, 0, saoPaulo)},
		{ID: "4", Amount: 30, Category: "Saúde", Date: time.Date(2026, 9, 30, 23, 59, 0, 0, saoPaulo)},
		{ID: "5", Amount: 999, Category: "Mercado", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, saoPaulo)},
	}

	r := BuildReport(purchases, now, saoPaulo, 3)
	assert.Equal(t, "outubro de 2026", r.Period.Label)
	assert.Equal(t, 150.0, r.TotalSpent)
	require.NotNil(t, r.Comparison.Percentage)
	assert.InDelta(t, 36.36, *r.Comparison.Percentage, 0.01)

	require.Len(t, r.Categories, 3)
	assert.Equal(t, "Mercado", r.Categories[0].Category)
	assert.Equal(t, 80.0, r.Categories[0].Previous)
	lazer := r.Categories[1]
	assert.Equal(t, "Lazer", lazer.Category)
	assert.False(t, lazer.Comparison.HasBaseline)
	assert.Equal(t, domain.TrendUp, lazer.Comparison.Direction)
	assert.Equal(t, domain.TrendDown, r.Categories[2].Comparison.Direction)

	require.Len(t, r.Monthly, 3)
	assert.Equal(t, "2026-08", r.Monthly[0].Month)
	assert.Equal(t, "2026-10", r.Monthly[2].Month)
	assert.Equal(t, 110.0, r.Monthly[1].Total)
	assert.Len(t, BuildReport(nil, now, saoPaulo, 0).Monthly, DefaultReportMonths)
}

func TestPurchasePeriod(t *testing.T) {
	p, ok := PurchasePeriod("7d", now, saoPaulo)
	require.True(t, ok)
	assert.True(t, time.Date(2026, 10, 10, 0, 0, 0, 0, saoPaulo).Equal(p.From))
	assert.True(t, time.Date(2026, 10, 17, 0, 0, 0, 0, saoPaulo).Equal(p.To))

	prev := PreviousPeriod(p)
	assert.True(t, time.Date(2026, 10, 3, 0, 0, 0, 0, saoPaulo).Equal(prev.From))

	_, ok = PurchasePeriod("yesterday", now, saoPaulo)
	assert.False(t, ok)
}

func TestDeriveAlerts(t *testing.T) {
	budgets := SummarizeBudgets([]domain.Budget{
		{ID: "b-ok", Category: "Mercado", Limit: 100, Spent: 10},
		{ID: "b-near", Category: "Lazer", Limit: 100, Spent: 95},
	})
	cards := SummarizeCards([]domain.CreditCard{{ID: "c-over", Name: "Inter", Limit: 1000, Used: 1200}})
	subs := []domain.Subscription{
		{ID: "s-renew", Name: "Antivírus", Amount: 399, Frequency: domain.FrequencyAnnual, Status: domain.SubscriptionActive,
			NextBillingDate: now.AddDate(0, 0, 2), Risks: []domain.SubscriptionRisk{domain.RiskAnnualRenewal}},
	}
	subSummary := SummarizeSubscriptions(subs, now, saoPaulo, 7, nil)

	in := AlertInput{
		Budgets:       budgets,
		Cards:         cards,
		Debts:         []domain.Debt{{ID: "d-late", Name: "Cheque especial", Status: domain.DebtLate}},
		Goals:         []domain.FinancialGoal{{ID: "g-behind", Name: "Reserva", Status: domain.GoalActive, MonthlyContribution: 1, RequiredMonthlyContribution: 2}},
		Subscriptions: subs,
		Upcoming:      subSummary.Upcoming,
	}

	alerts := DeriveAlerts(in)
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{
		"card:c-over",
		"debt_late:d-late",
		"budget:b-near",
		"goal_behind:g-behind",
		"subscription_renewal:s-renew",
	}, ids)

	again := DeriveAlerts(in)
	assert.Equal(t, alerts, again)

	filtered := WithoutDismissed(alerts, map[string]bool{"card:c-over": true})
	assert.Len(t, filtered, 4)
	assert.Equal(t, "debt_late:d-late", filtered[0].ID)
}

func TestRequiredMonthlyContribution(t *testing.T) {
	deadline := time.Date(2027, 3, 20, 0, 0, 0, 0, saoPaulo)
	// Oct..Mar is six months.
	assert.InDelta(t, 1000.0, RequiredMonthlyContribution(7000, 1000, &deadline, now), 0.001)
	assert.Zero(t, RequiredMonthlyContribution(7000, 1000, nil, now))
	assert.Zero(t, RequiredMonthlyContribution(7000, 7500, &deadline, now))

	past := now.AddDate(0, 0, -1)
	assert.Zero(t, RequiredMonthlyContribution(7000, 1000, &past, now))

	thisMonth := now.AddDate(0, 0, 5)
	assert.InDelta(t, 6000.0, RequiredMonthlyContribution(7000, 1000, &thisMonth, now), 0.001)
}
