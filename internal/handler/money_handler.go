package handler

import (
	"context"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/service"
)

// summaryHandler serves a read-only screen with ETag support.
func summaryHandler[T any](route string, logger *zap.Logger, get func(ctx context.Context, r *http.Request, userID string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET "+route)
		defer span.End()

		userID := UserIDFromContext(ctx)
		span.SetAttributes(attribute.String("user.id", userID))

		out, err := get(ctx, r, userID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeCachedJSON(w, r, out, logger)
	}
}

// ============================================================
// GET /v1/users/{userId}/money/...
// ============================================================

func dashboardHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/dashboard", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.Dashboard, error) {
		return svc.Dashboard(ctx, userID)
	})
}

func accountsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/accounts", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.AccountsView, error) {
		return svc.Accounts(ctx, userID)
	})
}

func budgetsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/budgets", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.BudgetSummary, error) {
		return svc.Budgets(ctx, userID)
	})
}

func cardsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/cards", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.CardsSummary, error) {
		return svc.Cards(ctx, userID)
	})
}

// purchasesHandler accepts ?period=7d|30d|month (default month).
func purchasesHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/purchases", logger, func(ctx context.Context, r *http.Request, userID string) (*domain.PurchasesView, error) {
		return svc.Purchases(ctx, userID, r.URL.Query().Get("period"))
	})
}

func subscriptionsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/subscriptions", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.SubscriptionsSummary, error) {
		return svc.Subscriptions(ctx, userID)
	})
}

func debtsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/debts", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.DebtsSummary, error) {
		return svc.Debts(ctx, userID)
	})
}

func investmentsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/investments", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.InvestmentsSummary, error) {
		return svc.Investments(ctx, userID)
	})
}

func patrimonyHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/patrimony", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.PatrimonySummary, error) {
		return svc.Patrimony(ctx, userID)
	})
}

func goalsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/goals", logger, func(ctx context.Context, _ *http.Request, userID string) (*domain.GoalsSummary, error) {
		return svc.Goals(ctx, userID)
	})
}

// reportHandler accepts ?months=N (1..24, default 6).
func reportHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/reports", logger, func(ctx context.Context, r *http.Request, userID string) (*domain.Report, error) {
		months := 0
		if v := r.URL.Query().Get("months"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, &domain.ErrValidation{Field: "months", Message: "must be an integer"}
			}
			months = n
		}
		return svc.Report(ctx, userID, months)
	})
}

func alertsHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return summaryHandler("/alerts", logger, func(ctx context.Context, _ *http.Request, userID string) ([]domain.Alert, error) {
		return svc.Alerts(ctx, userID)
	})
}
