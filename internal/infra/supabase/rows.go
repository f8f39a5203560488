package supabase

import (
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// Row types mirror the money_* tables. Timestamps come back as strings
// because date and timestamptz columns share the same decoder.

// enumValue is a decoded enumeration column.
type enumValue struct {
	column string
	value  string
	valid  bool
}

func enum[E interface {
	~string
	Valid() bool
}](column string, v E) enumValue {
	return enumValue{column: column, value: string(v), valid: v.Valid()}
}

type accountRow struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Institution string  `json:"institution"`
	Type        string  `json:"type"`
	Balance     float64 `json:"balance"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

func (r accountRow) toDomain(loc *time.Location) domain.Account {
	return domain.Account{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Institution: r.Institution,
		Type:        domain.AccountType(r.Type),
		Balance:     r.Balance,
		IsActive:    r.IsActive,
		CreatedAt:   parseTime(r.CreatedAt, loc),
	}
}

type budgetRow struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit_amount"`
	Spent    float64 `json:"spent"`
	Period   string  `json:"period"`
}

func (r budgetRow) toDomain() domain.Budget {
	return domain.Budget{
		ID:       r.ID,
		Category: r.Category,
		Limit:    r.Limit,
		Spent:    r.Spent,
		Period:   domain.BudgetPeriod(r.Period),
	}
}

type cardRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	LastDigits string  `json:"last_digits"`
	Limit      float64 `json:"limit_amount"`
	Used       float64 `json:"used_amount"`
	ClosingDay int     `json:"closing_day"`
	DueDay     int     `json:"due_day"`
}

func (r cardRow) toDomain() domain.CreditCard {
	return domain.CreditCard{
		ID:         r.ID,
		Name:       r.Name,
		Brand:      r.Brand,
		LastDigits: r.LastDigits,
		Limit:      r.Limit,
		Used:       r.Used,
		ClosingDay: r.ClosingDay,
		DueDay:     r.DueDay,
	}
}

type purchaseRow struct {
	ID                 string   `json:"id,omitempty"`
	UserID             string   `json:"user_id"`
	Description        string   `json:"description"`
	Establishment      string   `json:"establishment,omitempty"`
	Amount             float64  `json:"amount"`
	Date               string   `json:"date"`
	Category           string   `json:"category,omitempty"`
	PaymentMethod      string   `json:"payment_method"`
	Type               string   `json:"type"`
	Status             []string `json:"status"`
	InstallmentCurrent *int     `json:"installment_current,omitempty"`
	InstallmentTotal   *int     `json:"installment_total,omitempty"`
}

func (r purchaseRow) toDomain(loc *time.Location) domain.Purchase {
	p := domain.Purchase{
		ID:            r.ID,
		Description:   r.Description,
		Establishment: r.Establishment,
		Amount:        r.Amount,
		Date:          parseTime(r.Date, loc),
		Category:      r.Category,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Type:          domain.PurchaseType(r.Type),
		Status:        make([]domain.PurchaseStatus, 0, len(r.Status)),
	}
	for _, s := range r.Status {
		p.Status = append(p.Status, domain.PurchaseStatus(s))
	}
	if r.InstallmentCurrent != nil && r.InstallmentTotal != nil {
		p.Installments = &domain.PurchaseInstallments{Current: *r.InstallmentCurrent, Total: *r.InstallmentTotal}
	}
	return p
}

func purchaseToRow(userID string, p *domain.Purchase) purchaseRow {
	r := purchaseRow{
		ID:            p.ID,
		UserID:        userID,
		Description:   p.Description,
		Establishment: p.Establishment,
		Amount:        p.Amount,
		Date:          p.Date.UTC().Format(time.RFC3339),
		Category:      p.Category,
		PaymentMethod: string(p.PaymentMethod),
		Type:          string(p.Type),
		Status:        make([]string, 0, len(p.Status)),
	}
	for _, s := range p.Status {
		r.Status = append(r.Status, string(s))
	}
	if p.Installments != nil {
		cur, total := p.Installments.Current, p.Installments.Total
		r.InstallmentCurrent, r.InstallmentTotal = &cur, &total
	}
	return r
}

type subscriptionRow struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Amount          float64  `json:"amount"`
	Frequency       string   `json:"frequency"`
	Category        string   `json:"category"`
	NextBillingDate string   `json:"next_billing_date"`
	Status          string   `json:"status"`
	Risks           []string `json:"risks"`
}

func (r subscriptionRow) toDomain(loc *time.Location) domain.Subscription {
	s := domain.Subscription{
		ID:              r.ID,
		Name:            r.Name,
		Amount:          r.Amount,
		Frequency:       domain.Frequency(r.Frequency),
		Category:        r.Category,
		NextBillingDate: parseTime(r.NextBillingDate, loc),
		Status:          domain.SubscriptionStatus(r.Status),
	}
	for _, risk := range r.Risks {
		s.Risks = append(s.Risks, domain.SubscriptionRisk(risk))
	}
	return s
}

type debtRow struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Creditor          string   `json:"creditor"`
	Type              string   `json:"type"`
	OriginalAmount    float64  `json:"original_amount"`
	CurrentBalance    float64  `json:"current_balance"`
	MonthlyPayment    float64  `json:"monthly_payment"`
	InterestRate      *float64 `json:"interest_rate"`
	NextDueDate       string   `json:"next_due_date"`
	EndDate           *string  `json:"end_date"`
	RemainingPayments int      `json:"remaining_payments"`
	Status            string   `json:"status"`
}

func (r debtRow) toDomain(loc *time.Location) domain.Debt {
	return domain.Debt{
		ID:                r.ID,
		Name:              r.Name,
		Creditor:          r.Creditor,
		Type:              domain.DebtType(r.Type),
		OriginalAmount:    r.OriginalAmount,
		CurrentBalance:    r.CurrentBalance,
		MonthlyPayment:    r.MonthlyPayment,
		InterestRate:      r.InterestRate,
		NextDueDate:       parseTime(r.NextDueDate, loc),
		EndDate:           parseTimePtr(r.EndDate, loc),
		RemainingPayments: r.RemainingPayments,
		Status:            domain.DebtStatus(r.Status),
	}
}

type installmentRow struct {
	ID                string  `json:"id"`
	Description       string  `json:"description"`
	Store             string  `json:"store"`
	OriginalAmount    float64 `json:"original_amount"`
	InstallmentAmount float64 `json:"installment_amount"`
	TotalInstallments int     `json:"total_installments"`
	PaidInstallments  int     `json:"paid_installments"`
	RemainingAmount   float64 `json:"remaining_amount"`
	NextDueDate       string  `json:"next_due_date"`
}

func (r installmentRow) toDomain(loc *time.Location) domain.Installment {
	return domain.Installment{
		ID:                r.ID,
		Description:       r.Description,
		Store:             r.Store,
		OriginalAmount:    r.OriginalAmount,
		InstallmentAmount: r.InstallmentAmount,
		TotalInstallments: r.TotalInstallments,
		PaidInstallments:  r.PaidInstallments,
		RemainingAmount:   r.RemainingAmount,
		NextDueDate:       parseTime(r.NextDueDate, loc),
	}
}

type assetRow struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Institution      string  `json:"institution"`
	Class            string  `json:"class"`
	RiskLevel        string  `json:"risk_level"`
	Liquidity        string  `json:"liquidity"`
	InvestedAmount   float64 `json:"invested_amount"`
	CurrentValue     float64 `json:"current_value"`
	IsStrategic      bool    `json:"is_strategic"`
	StrategicPurpose string  `json:"strategic_purpose"`
}

func (r assetRow) toDomain() domain.Asset {
	return domain.Asset{
		ID:               r.ID,
		Name:             r.Name,
		Institution:      r.Institution,
		Class:            domain.AssetClass(r.Class),
		RiskLevel:        domain.RiskLevel(r.RiskLevel),
		Liquidity:        domain.Liquidity(r.Liquidity),
		InvestedAmount:   r.InvestedAmount,
		CurrentValue:     r.CurrentValue,
		IsStrategic:      r.IsStrategic,
		StrategicPurpose: r.StrategicPurpose,
	}
}

// patrimonyRow serves both money_patrimony_assets and
// money_patrimony_liabilities.
type patrimonyRow struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type goalRow struct {
	ID                          string  `json:"id,omitempty"`
	UserID                      string  `json:"user_id"`
	Name                        string  `json:"name"`
	TargetAmount                float64 `json:"target_amount"`
	CurrentAmount               float64 `json:"current_amount"`
	MonthlyContribution         float64 `json:"monthly_contribution"`
	RequiredMonthlyContribution float64 `json:"required_monthly_contribution"`
	Status                      string  `json:"status"`
	Deadline                    *string `json:"deadline"`
}

func (r goalRow) toDomain(loc *time.Location) domain.FinancialGoal {
	return domain.FinancialGoal{
		ID:                          r.ID,
		Name:                        r.Name,
		TargetAmount:                r.TargetAmount,
		CurrentAmount:               r.CurrentAmount,
		MonthlyContribution:         r.MonthlyContribution,
		RequiredMonthlyContribution: r.RequiredMonthlyContribution,
		Status:                      domain.GoalStatus(r.Status),
		Deadline:                    parseTimePtr(r.Deadline, loc),
	}
}

func goalToRow(userID string, g *domain.FinancialGoal, loc *time.Location) goalRow {
	return goalRow{
		ID:                          g.ID,
		UserID:                      userID,
		Name:                        g.Name,
		TargetAmount:                g.TargetAmount,
		CurrentAmount:               g.CurrentAmount,
		MonthlyContribution:         g.MonthlyContribution,
		RequiredMonthlyContribution: g.RequiredMonthlyContribution,
		Status:                      string(g.Status),
		Deadline:                    formatDate(g.Deadline, loc),
	}
}

type settingsRow struct {
	Timezone           string   `json:"timezone"`
	SubscriptionBudget *float64 `json:"subscription_budget"`
	MonthlyCapacity    *float64 `json:"monthly_capacity"`
	UpcomingWindowDays int      `json:"upcoming_window_days"`
}

type baselinesRow struct {
	AccountsBalance *float64 `json:"accounts_balance"`
	NetWorth        *float64 `json:"net_worth"`
}

type dismissalRow struct {
	UserID  string `json:"user_id"`
	AlertID string `json:"alert_id"`
}
