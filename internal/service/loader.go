package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// need selects which collections a use case loads.
type need uint16

const (
	needAccounts need = 1 << iota
	needBudgets
	needCards
	needPurchases
	needSubscriptions
	needDebts
	needInstallments
	needAssets
	needPatrimony
	needGoals
	needBaselines
	needDismissed

	needAll = needAccounts | needBudgets | needCards | needPurchases | needSubscriptions |
		needDebts | needInstallments | needAssets | needPatrimony | needGoals | needBaselines | needDismissed
)

// collections is one consistent read of a user's raw data.
type collections struct {
	settings      *domain.Settings
	now           time.Time
	loc           *time.Location
	accounts      []domain.Account
	budgets       []domain.Budget
	cards         []domain.CreditCard
	purchases     []domain.Purchase
	subscriptions []domain.Subscription
	debts         []domain.Debt
	installments  []domain.Installment
	assets        []domain.Asset
	patAssets     []domain.PatrimonyAsset
	patLiabs      []domain.PatrimonyLiability
	goals         []domain.FinancialGoal
	baselines     *domain.Baselines
	dismissed     map[string]bool
}

// window computes the purchase range once the user's clock is known.
type window func(now time.Time, loc *time.Location) (from, to time.Time)

// load reads settings first (they fix the user's timezone) and then every
// requested collection concurrently.
func (s *MoneyService) load(ctx context.Context, userID string, needs need, purchases window) (*collections, error) {
	settings, err := s.settings(ctx, userID)
	if err != nil {
		return nil, err
	}
	c := &collections{settings: settings}
	c.now, c.loc = s.clock(settings)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxParallel)

	fetch := func(n need, what string, fn func(context.Context) error) {
		if needs&n == 0 {
			return
		}
		g.Go(func() error {
			if err := fn(gCtx); err != nil {
				return s.loadFailed(userID, what, err)
			}
			return nil
		})
	}

	fetch(needAccounts, "accounts", func(ctx context.Context) (err error) {
		c.accounts, err = s.store.ListAccounts(ctx, userID)
		return err
	})
	fetch(needBudgets, "budgets", func(ctx context.Context) (err error) {
		c.budgets, err = s.store.ListBudgets(ctx, userID)
		return err
	})
	fetch(needCards, "cards", func(ctx context.Context) (err error) {
		c.cards, err = s.store.ListCards(ctx, userID)
		return err
	})
	fetch(needPurchases, "purchases", func(ctx context.Context) (err error) {
		from, to := purchases(c.now, c.loc)
		c.purchases, err = s.store.ListPurchases(ctx, userID, from, to)
		return err
	})
	fetch(needSubscriptions, "subscriptions", func(ctx context.Context) (err error) {
		c.subscriptions, err = s.store.ListSubscriptions(ctx, userID)
		return err
	})
	fetch(needDebts, "debts", func(ctx context.Context) (err error) {
		c.debts, err = s.store.ListDebts(ctx, userID)
		return err
	})
	fetch(needInstallments, "installments", func(ctx context.Context) (err error) {
		c.installments, err = s.store.ListInstallments(ctx, userID)
		return err
	})
	fetch(needAssets, "assets", func(ctx context.Context) (err error) {
		c.assets, err = s.store.ListAssets(ctx, userID)
		return err
	})
	fetch(needPatrimony, "patrimony assets", func(ctx context.Context) (err error) {
		c.patAssets, err = s.store.ListPatrimonyAssets(ctx, userID)
		return err
	})
	fetch(needPatrimony, "patrimony liabilities", func(ctx context.Context) (err error) {
		c.patLiabs, err = s.store.ListPatrimonyLiabilities(ctx, userID)
		return err
	})
	fetch(needGoals, "goals", func(ctx context.Context) (err error) {
		c.goals, err = s.store.ListGoals(ctx, userID)
		return err
	})
	fetch(needBaselines, "baselines", func(ctx context.Context) (err error) {
		c.baselines, err = s.store.GetBaselines(ctx, userID)
		return err
	})
	fetch(needDismissed, "dismissed alerts", func(ctx context.Context) error {
		ids, err := s.store.ListDismissedAlerts(ctx, userID)
		if err != nil {
			return err
		}
		c.dismissed = make(map[string]bool, len(ids))
		for _, id := range ids {
			c.dismissed[id] = true
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if c.baselines == nil {
		c.baselines = &domain.Baselines{}
	}
	return c, nil
}

func (s *MoneyService) loadFailed(userID, what string, err error) error {
	s.logger.Error("failed to load collection",
		zap.String("user_id", userID),
		zap.String("collection", what),
		zap.String("backend", s.store.Name()),
		zap.Error(err),
	)
	s.metrics.IncrExternalError(s.store.Name())
	return fmt.Errorf("load %s: %w", what, err)
}
