package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/service"
)

// Request bodies carry dates as strings so both "2026-10-16" and RFC 3339
// timestamps are accepted.

type purchaseRequest struct {
	Description   string               `json:"description"`
	Establishment string               `json:"establishment,omitempty"`
	Amount        float64              `json:"amount"`
	Date          string               `json:"date"`
	Category      string               `json:"category,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Installments  int                  `json:"installments,omitempty"`
}

type goalRequest struct {
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Deadline            string  `json:"deadline,omitempty"`
}

// ============================================================
// POST /v1/users/{userId}/money/accounts
// ============================================================

func submitAccountHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /accounts")
		defer span.End()

		userID := UserIDFromContext(ctx)
		span.SetAttributes(attribute.String("user.id", userID))

		var form domain.AccountForm
		if !decodeJSON(w, r, &form) {
			return
		}

		account, err := svc.SubmitAccount(ctx, userID, form)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, account)
	}
}

// ============================================================
// POST /v1/users/{userId}/money/purchases
// ============================================================

func submitPurchaseHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /purchases")
		defer span.End()

		userID := UserIDFromContext(ctx)
		span.SetAttributes(attribute.String("user.id", userID))

		var req purchaseRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		date, err := parseDate("date", req.Date, svc.Location())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		purchase, err := svc.SubmitPurchase(ctx, userID, domain.PurchaseForm{
			Description:   req.Description,
			Establishment: req.Establishment,
			Amount:        req.Amount,
			Date:          date,
			Category:      req.Category,
			PaymentMethod: req.PaymentMethod,
			Installments:  req.Installments,
		})
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		span.SetAttributes(attribute.Float64("purchase.amount", purchase.Amount))
		writeJSON(w, http.StatusCreated, purchase)
	}
}

// ============================================================
// POST /v1/users/{userId}/money/goals
// ============================================================

func submitGoalHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /goals")
		defer span.End()

		userID := UserIDFromContext(ctx)
		span.SetAttributes(attribute.String("user.id", userID))

		var req goalRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		form := domain.GoalForm{
			Name:                req.Name,
			TargetAmount:        req.TargetAmount,
			CurrentAmount:       req.CurrentAmount,
			MonthlyContribution: req.MonthlyContribution,
		}
		deadline, err := parseDate("deadline", req.Deadline, svc.Location())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		if !deadline.IsZero() {
			form.Deadline = &deadline
		}

		goal, err := svc.SubmitGoal(ctx, userID, form)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, goal)
	}
}

// ============================================================
// DELETE /v1/users/{userId}/money/subscriptions/{subscriptionId}
// ============================================================

func deleteSubscriptionHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /subscriptions/{subscriptionId}")
		defer span.End()

		userID := UserIDFromContext(ctx)
		subscriptionID := chi.URLParam(r, "subscriptionId")
		span.SetAttributes(
			attribute.String("user.id", userID),
			attribute.String("subscription.id", subscriptionID),
		)

		if err := svc.DeleteSubscription(ctx, userID, subscriptionID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "Assinatura removida", ID: subscriptionID})
	}
}

// ============================================================
// POST /v1/users/{userId}/money/alerts/{alertId}/dismiss
// ============================================================

func dismissAlertHandler(svc *service.MoneyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /alerts/{alertId}/dismiss")
		defer span.End()

		userID := UserIDFromContext(ctx)
		alertID := chi.URLParam(r, "alertId")
		span.SetAttributes(attribute.String("user.id", userID), attribute.String("alert.id", alertID))

		if err := svc.DismissAlert(ctx, userID, alertID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.SuccessResponse{Message: "Alerta dispensado", ID: alertID})
	}
}
