package supabase

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// ============================================================
// Reads
// ============================================================

func (c *Client) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	rows, err := fetchRows[accountRow](ctx, c, "ListAccounts", byUser("money_accounts", userID, "order=created_at.asc"))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(rows))
	for _, r := range rows {
		a := r.toDomain(c.loc)
		c.warnUnknown("money_accounts", userID, a.ID, enum("type", a.Type))
		out = append(out, a)
	}
	return out, nil
}

func (c *Client) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	rows, err := fetchRows[budgetRow](ctx, c, "ListBudgets", byUser("money_budgets", userID, "order=category.asc"))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Budget, 0, len(rows))
	for _, r := range rows {
		b := r.toDomain()
		c.warnUnknown("money_budgets", userID, b.ID, enum("period", b.Period))
		out = append(out, b)
	}
	return out, nil
}

func (c *Client) ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	rows, err := fetchRows[cardRow](ctx, c, "ListCards", byUser("money_cards", userID, "order=name.asc"))
	if err != nil {
		return nil, err
	}
	out := make([]domain.CreditCard, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// ListPurchases returns purchases with from <= date < to.
func (c *Client) ListPurchases(ctx context.Context, userID string, from, to time.Time) ([]domain.Purchase, error) {
	path := byUser("money_purchases", userID,
		"date=gte."+timestamp(from),
		"date=lt."+timestamp(to),
		"order=date.desc",
	)
	rows, err := fetchRows[purchaseRow](ctx, c, "ListPurchases", path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Purchase, 0, len(rows))
	for _, r := range rows {
		p := r.toDomain(c.loc)
		values := []enumValue{enum("payment_method", p.PaymentMethod), enum("type", p.Type)}
		for _, st := range p.Status {
			values = append(values, enum("status", st))
		}
		c.warnUnknown("money_purchases", userID, p.ID, values...)
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error) {
	rows, err := fetchRows[subscriptionRow](ctx, c, "ListSubscriptions", byUser("money_subscriptions", userID, "order=next_billing_date.asc"))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Subscription, 0, len(rows))
	for _, r := range rows {
		sub := r.toDomain(c.loc)
		values := []enumValue{enum("frequency", sub.Frequency), enum("status", sub.Status)}
		for _, risk := range sub.Risks {
			values = append(values, enum("risks", risk))
		}
		c.warnUnknown("money_subscriptions", userID, sub.ID, values...)
		out = append(out, sub)
	}
	return out, nil
}

func (c *Client) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	rows, err := fetchRows[debtRow](ctx, c, "ListDebts", byUser("money_debts", userID))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Debt, 0, len(rows))
	for _, r := range rows {
		d := r.toDomain(c.loc)
		c.warnUnknown("money_debts", userID, d.ID, enum("type", d.Type), enum("status", d.Status))
		out = append(out, d)
	}
	return out, nil
}

func (c *Client) ListInstallments(ctx context.Context, userID string) ([]domain.Installment, error) {
	rows, err := fetchRows[installmentRow](ctx, c, "ListInstallments", byUser("money_installments", userID))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Installment, 0, len(rows))
	for _, r := range rows {
		in := r.toDomain(c.loc)
		if err := in.Validate(); err != nil {
			c.logger.Warn("supabase: inconsistent installment",
				zap.String("user_id", userID),
				zap.String("installment_id", in.ID),
				zap.Error(err),
			)
		}
		out = append(out, in)
	}
	return out, nil
}

func (c *Client) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	rows, err := fetchRows[assetRow](ctx, c, "ListAssets", byUser("money_assets", userID))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Asset, 0, len(rows))
	for _, r := range rows {
		a := r.toDomain()
		c.warnUnknown("money_assets", userID, a.ID,
			enum("class", a.Class), enum("risk_level", a.RiskLevel), enum("liquidity", a.Liquidity))
		out = append(out, a)
	}
	return out, nil
}

func (c *Client) ListPatrimonyAssets(ctx context.Context, userID string) ([]domain.PatrimonyAsset, error) {
	rows, err := fetchRows[patrimonyRow](ctx, c, "ListPatrimonyAssets", byUser("money_patrimony_assets", userID))
	if err != nil {
		return nil, err
	}
	out := make([]domain.PatrimonyAsset, 0, len(rows))
	for _, r := range rows {
		a := domain.PatrimonyAsset{ID: r.ID, Name: r.Name, Type: domain.PatrimonyAssetType(r.Type), Value: r.Value}
		c.warnUnknown("money_patrimony_assets", userID, a.ID, enum("type", a.Type))
		out = append(out, a)
	}
	return out, nil
}

func (c *Client) ListPatrimonyLiabilities(ctx context.Context, userID string) ([]domain.PatrimonyLiability, error) {
	rows, err := fetchRows[patrimonyRow](ctx, c, "ListPatrimonyLiabilities", byUser("money_patrimony_liabilities", userID))
	if err != nil {
		return nil, err
	}
	out := make([]domain.PatrimonyLiability, 0, len(rows))
	for _, r := range rows {
		l := domain.PatrimonyLiability{ID: r.ID, Name: r.Name, Type: domain.LiabilityType(r.Type), Value: r.Value}
		c.warnUnknown("money_patrimony_liabilities", userID, l.ID, enum("type", l.Type))
		out = append(out, l)
	}
	return out, nil
}

func (c *Client) ListGoals(ctx context.Context, userID string) ([]domain.FinancialGoal, error) {
	rows, err := fetchRows[goalRow](ctx, c, "ListGoals", byUser("money_goals", userID, "order=name.asc"))
	if err != nil {
		return nil, err
	}
	out := make([]domain.FinancialGoal, 0, len(rows))
	for _, r := range rows {
		g := r.toDomain(c.loc)
		c.warnUnknown("money_goals", userID, g.ID, enum("status", g.Status))
		out = append(out, g)
	}
	return out, nil
}

// GetSettings returns zero settings when the user never saved any.
func (c *Client) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	rows, err := fetchRows[settingsRow](ctx, c, "GetSettings", byUser("money_settings", userID, "limit=1"))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &domain.Settings{}, nil
	}
	r := rows[0]
	return &domain.Settings{
		Timezone:           r.Timezone,
		SubscriptionBudget: r.SubscriptionBudget,
		MonthlyCapacity:    r.MonthlyCapacity,
		UpcomingWindowDays: r.UpcomingWindowDays,
	}, nil
}

// GetBaselines returns the most recent snapshot.
func (c *Client) GetBaselines(ctx context.Context, userID string) (*domain.Baselines, error) {
	rows, err := fetchRows[baselinesRow](ctx, c, "GetBaselines", byUser("money_baselines", userID, "order=period.desc", "limit=1"))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &domain.Baselines{}, nil
	}
	return &domain.Baselines{AccountsBalance: rows[0].AccountsBalance, NetWorth: rows[0].NetWorth}, nil
}

func (c *Client) ListDismissedAlerts(ctx context.Context, userID string) ([]string, error) {
	rows, err := fetchRows[dismissalRow](ctx, c, "ListDismissedAlerts", byUser("money_alert_dismissals", userID, "select=alert_id", "order=alert_id.asc"))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.AlertID)
	}
	return out, nil
}

// warnUnknown logs enumeration values the domain does not know. The row is
// still returned; its label falls back to the raw value.
func (c *Client) warnUnknown(table, userID, rowID string, values ...enumValue) {
	for _, v := range values {
		if v.valid {
			continue
		}
		c.logger.Warn("supabase: unknown enum value",
			zap.String("table", table),
			zap.String("user_id", userID),
			zap.String("row_id", rowID),
			zap.String("column", v.column),
			zap.String("value", v.value),
		)
	}
}

// ============================================================
// Writes
// ============================================================

func (c *Client) CreateAccount(ctx context.Context, userID string, account *domain.Account) (*domain.Account, error) {
	in := accountRow{
		UserID:      userID,
		Name:        account.Name,
		Institution: account.Institution,
		Type:        string(account.Type),
		Balance:     account.Balance,
		IsActive:    account.IsActive,
	}
	var created accountRow
	if err := c.doPost(ctx, "CreateAccount", "money_accounts", in, &created); err != nil {
		return nil, err
	}
	out := created.toDomain(c.loc)
	return &out, nil
}

func (c *Client) CreatePurchase(ctx context.Context, userID string, purchase *domain.Purchase) (*domain.Purchase, error) {
	var created purchaseRow
	if err := c.doPost(ctx, "CreatePurchase", "money_purchases", purchaseToRow(userID, purchase), &created); err != nil {
		return nil, err
	}
	out := created.toDomain(c.loc)
	return &out, nil
}

func (c *Client) CreateGoal(ctx context.Context, userID string, goal *domain.FinancialGoal) (*domain.FinancialGoal, error) {
	var created goalRow
	if err := c.doPost(ctx, "CreateGoal", "money_goals", goalToRow(userID, goal, c.loc), &created); err != nil {
		return nil, err
	}
	out := created.toDomain(c.loc)
	return &out, nil
}

func (c *Client) DeleteSubscription(ctx context.Context, userID, subscriptionID string) error {
	n, err := c.doDelete(ctx, "DeleteSubscription", byUser("money_subscriptions", userID, eq("id", subscriptionID)))
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.ErrNotFound{Resource: "subscription", ID: subscriptionID}
	}
	return nil
}

// DismissAlert is idempotent: a repeated dismissal is ignored by the
// (user_id, alert_id) unique key.
func (c *Client) DismissAlert(ctx context.Context, userID, alertID string) error {
	_, err := c.mutate(ctx, "DismissAlert", http.MethodPost, "money_alert_dismissals?on_conflict=user_id,alert_id",
		dismissalRow{UserID: userID, AlertID: alertID}, preferIgnoreDupes)
	return err
}
