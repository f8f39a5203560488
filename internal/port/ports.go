// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service layer
// from the data provider and cache implementations.
package port

import (
	"context"
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// MoneyReader loads the raw collections of one user. Collections are
// returned as stored; every summary is derived from them by the caller.
type MoneyReader interface {
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	ListCards(ctx context.Context, userID string) ([]domain.CreditCard, error)
	// ListPurchases returns purchases dated in [from, to).
	ListPurchases(ctx context.Context, userID string, from, to time.Time) ([]domain.Purchase, error)
	ListSubscriptions(ctx context.Context, userID string) ([]domain.Subscription, error)
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
	ListInstallments(ctx context.Context, userID string) ([]domain.Installment, error)
	ListAssets(ctx context.Context, userID string) ([]domain.Asset, error)
	ListPatrimonyAssets(ctx context.Context, userID string) ([]domain.PatrimonyAsset, error)
	ListPatrimonyLiabilities(ctx context.Context, userID string) ([]domain.PatrimonyLiability, error)
	ListGoals(ctx context.Context, userID string) ([]domain.FinancialGoal, error)

	// GetSettings returns the user's settings, or defaults when none are stored.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)
	// GetBaselines returns the previous-period snapshot; fields are nil when unknown.
	GetBaselines(ctx context.Context, userID string) (*domain.Baselines, error)
	ListDismissedAlerts(ctx context.Context, userID string) ([]string, error)
}

// MoneyWriter hands mutations to the data provider. Implementations must
// not retry; a failure is reported to the user, who decides to resubmit.
type MoneyWriter interface {
	CreateAccount(ctx context.Context, userID string, account *domain.Account) (*domain.Account, error)
	CreatePurchase(ctx context.Context, userID string, purchase *domain.Purchase) (*domain.Purchase, error)
	CreateGoal(ctx context.Context, userID string, goal *domain.FinancialGoal) (*domain.FinancialGoal, error)
	DeleteSubscription(ctx context.Context, userID, subscriptionID string) error
	DismissAlert(ctx context.Context, userID, alertID string) error
}

// MoneyStore is the full data provider, implemented by the Supabase adapter
// and the static mock provider.
type MoneyStore interface {
	MoneyReader
	MoneyWriter

	// Name identifies the backend in health responses.
	Name() string
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	DeletePrefix(prefix string) int
}
