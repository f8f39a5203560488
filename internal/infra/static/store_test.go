package static_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/infra/static"
	"github.com/boddenberg/money-bfa-go/internal/port"
)

var _ port.MoneyStore = (*static.Store)(nil)

var fixedNow = time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC)

func newStore() *static.Store {
	return static.New(static.WithClock(func() time.Time { return fixedNow }))
}

func TestStore_SeedIsRelativeToClock(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	purchases, err := s.ListPurchases(ctx, "u1", today, today.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(purchases) != 3 {
		t.Fatalf("expected the 3 purchases of today, got %d", len(purchases))
	}
	var total float64
	for _, p := range purchases {
		total += p.Amount
	}
	if total < 96.19 || total > 96.21 {
		t.Errorf("expected R$96.20 today, got %v", total)
	}
}

func TestStore_InstallmentsAreConsistent(t *testing.T) {
	installments, err := newStore().ListInstallments(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range installments {
		if err := in.Validate(); err != nil {
			t.Errorf("installment %s: %v", in.ID, err)
		}
	}
}

func TestStore_UsersAreIsolated(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	if err := s.DeleteSubscription(ctx, "u1", "sub-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u1, _ := s.ListSubscriptions(ctx, "u1")
	u2, _ := s.ListSubscriptions(ctx, "u2")
	if len(u1) != len(u2)-1 {
		t.Errorf("expected u1 to have one subscription less than u2: %d vs %d", len(u1), len(u2))
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	accounts, _ := s.ListAccounts(ctx, "u1")
	accounts[0].Balance = -1

	again, _ := s.ListAccounts(ctx, "u1")
	if again[0].Balance == -1 {
		t.Error("caller mutation leaked into the store")
	}
}

func TestStore_CreateAccount(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	created, err := s.CreateAccount(ctx, "u1", &domain.Account{Name: "Nova", Institution: "Inter", Type: domain.AccountChecking, IsActive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.UserID != "u1" || !created.CreatedAt.Equal(fixedNow) {
		t.Errorf("unexpected account: %+v", created)
	}
	accounts, _ := s.ListAccounts(ctx, "u1")
	if accounts[len(accounts)-1].ID != created.ID {
		t.Error("created account not listed")
	}
}

func TestStore_DeleteUnknownSubscription(t *testing.T) {
	err := newStore().DeleteSubscription(context.Background(), "u1", "nope")
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_FailWrites(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	boom := errors.New("provider down")

	s.FailWrites(boom)
	if _, err := s.CreateGoal(ctx, "u1", &domain.FinancialGoal{Name: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}
	goals, _ := s.ListGoals(ctx, "u1")
	for _, g := range goals {
		if g.Name == "x" {
			t.Fatal("failed write must not be stored")
		}
	}

	s.FailWrites(nil)
	if _, err := s.CreateGoal(ctx, "u1", &domain.FinancialGoal{Name: "x"}); err != nil {
		t.Fatalf("expected success after reset, got %v", err)
	}
}

func TestStore_DismissAlert(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	_ = s.DismissAlert(ctx, "u1", "debt_late:debt-3")
	_ = s.DismissAlert(ctx, "u1", "budget:bud-3")
	_ = s.DismissAlert(ctx, "u1", "budget:bud-3")

	ids, err := s.ListDismissedAlerts(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "budget:bud-3" {
		t.Errorf("unexpected dismissals %v", ids)
	}
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newStore().ListDebts(ctx, "u1"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
