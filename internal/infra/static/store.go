// Package static is an in-memory data provider seeded with demo data. Every
// user gets their own copy of the seed on first access; dates are relative
// to the injected clock so the demo always looks current.
package static

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// Store implements port.MoneyStore in memory.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	loc      *time.Location
	users    map[string]*dataset
	writeErr error
}

type dataset struct {
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
	settings      domain.Settings
	baselines     domain.Baselines
	dismissed     map[string]bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to date the seed data.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the timezone the seed data is laid out in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// New creates an empty store; datasets are seeded lazily per user.
func New(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		loc:   time.UTC,
		users: make(map[string]*dataset),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FailWrites makes every subsequent mutation fail with err (nil restores
// normal behaviour). Used to demo and test the submission-failure path.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *Store) Name() string { return "static" }

func (s *Store) Ping(context.Context) error { return nil }

// data returns the user's dataset, seeding it if needed. Caller holds s.mu.
func (s *Store) data(userID string) *dataset {
	d, ok := s.users[userID]
	if !ok {
		d = seed(userID, s.now().In(s.loc))
		s.users[userID] = d
	}
	return d
}

// read runs fn under the write lock since the first read seeds.
func (s *Store) read(ctx context.Context, userID string, fn func(d *dataset)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data(userID))
	return nil
}

func (s *Store) write(ctx context.Context, userID string, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	return fn(s.data(userID))
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// ============================================================
// Reads
// ============================================================

func (s *Store) ListAccounts(ctx context.Context, userID string) (out []domain.Account, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.accounts) })
	return out, err
}

func (s *Store) ListBudgets(ctx context.Context, userID string) (out []domain.Budget, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.budgets) })
	return out, err
}

func (s *Store) ListCards(ctx context.Context, userID string) (out []domain.CreditCard, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.cards) })
	return out, err
}

func (s *Store) ListPurchases(ctx context.Context, userID string, from, to time.Time) (out []domain.Purchase, err error) {
	err = s.read(ctx, userID, func(d *dataset) {
		out = make([]domain.Purchase, 0, len(d.purchases))
		for _, p := range d.purchases {
			if !p.Date.Before(from) && p.Date.Before(to) {
				out = append(out, p)
			}
		}
	})
	return out, err
}

func (s *Store) ListSubscriptions(ctx context.Context, userID string) (out []domain.Subscription, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.subscriptions) })
	return out, err
}

func (s *Store) ListDebts(ctx context.Context, userID string) (out []domain.Debt, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.debts) })
	return out, err
}

func (s *Store) ListInstallments(ctx context.Context, userID string) (out []domain.Installment, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.installments) })
	return out, err
}

func (s *Store) ListAssets(ctx context.Context, userID string) (out []domain.Asset, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.assets) })
	return out, err
}

func (s *Store) ListPatrimonyAssets(ctx context.Context, userID string) (out []domain.PatrimonyAsset, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.patAssets) })
	return out, err
}

func (s *Store) ListPatrimonyLiabilities(ctx context.Context, userID string) (out []domain.PatrimonyLiability, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.patLiabs) })
	return out, err
}

func (s *Store) ListGoals(ctx context.Context, userID string) (out []domain.FinancialGoal, err error) {
	err = s.read(ctx, userID, func(d *dataset) { out = clone(d.goals) })
	return out, err
}

func (s *Store) GetSettings(ctx context.Context, userID string) (out *domain.Settings, err error) {
	err = s.read(ctx, userID, func(d *dataset) {
		st := d.settings
		out = &st
	})
	return out, err
}

func (s *Store) GetBaselines(ctx context.Context, userID string) (out *domain.Baselines, err error) {
	err = s.read(ctx, userID, func(d *dataset) {
		b := d.baselines
		out = &b
	})
	return out, err
}

func (s *Store) ListDismissedAlerts(ctx context.Context, userID string) (out []string, err error) {
	err = s.read(ctx, userID, func(d *dataset) {
		out = make([]string, 0, len(d.dismissed))
		for id := range d.dismissed {
			out = append(out, id)
		}
		sort.Strings(out)
	})
	return out, err
}

// ============================================================
// Writes
// ============================================================

func (s *Store) CreateAccount(ctx context.Context, userID string, account *domain.Account) (*domain.Account, error) {
	var out domain.Account
	err := s.write(ctx, userID, func(d *dataset) error {
		out = *account
		if out.ID == "" {
			out.ID = uuid.NewString()
		}
		out.UserID = userID
		if out.CreatedAt.IsZero() {
			out.CreatedAt = s.now()
		}
		d.accounts = append(d.accounts, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) CreatePurchase(ctx context.Context, userID string, purchase *domain.Purchase) (*domain.Purchase, error) {
	var out domain.Purchase
	err := s.write(ctx, userID, func(d *dataset) error {
		out = *purchase
		if out.ID == "" {
			out.ID = uuid.NewString()
		}
		d.purchases = append(d.purchases, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) CreateGoal(ctx context.Context, userID string, goal *domain.FinancialGoal) (*domain.FinancialGoal, error) {
	var out domain.FinancialGoal
	err := s.write(ctx, userID, func(d *dataset) error {
		out = *goal
		if out.ID == "" {
			out.ID = uuid.NewString()
		}
		d.goals = append(d.goals, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) DeleteSubscription(ctx context.Context, userID, subscriptionID string) error {
	return s.write(ctx, userID, func(d *dataset) error {
		for i, sub := range d.subscriptions {
			if sub.ID == subscriptionID {
				d.subscriptions = append(d.subscriptions[:i:i], d.subscriptions[i+1:]...)
				return nil
			}
		}
		return &domain.ErrNotFound{Resource: "subscription", ID: subscriptionID}
	})
}

func (s *Store) DismissAlert(ctx context.Context, userID, alertID string) error {
	return s.write(ctx, userID, func(d *dataset) error {
		d.dismissed[alertID] = true
		return nil
	})
}
