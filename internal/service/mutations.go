package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/infra/observability"
	"github.com/boddenberg/money-bfa-go/internal/summary"
)

// ============================================================
// Submissions: validated here, never retried
// ============================================================

func (s *MoneyService) SubmitAccount(ctx context.Context, userID string, form domain.AccountForm) (*domain.Account, error) {
	ctx, end := startSpan(ctx, "SubmitAccount", userID)
	defer end()

	if err := s.validate("account", form.Validate()); err != nil {
		return nil, err
	}
	account := &domain.Account{
		Name:        strings.TrimSpace(form.Name),
		Institution: strings.TrimSpace(form.Institution),
		Type:        form.Type,
		Balance:     form.InitialBalance,
		IsActive:    true,
		CreatedAt:   s.now(),
	}
	created, err := s.store.CreateAccount(ctx, userID, account)
	if err != nil {
		return nil, s.submissionFailed(userID, "account", err)
	}
	s.submitted(userID, "account")
	return created, nil
}

func (s *MoneyService) SubmitPurchase(ctx context.Context, userID string, form domain.PurchaseForm) (*domain.Purchase, error) {
	ctx, end := startSpan(ctx, "SubmitPurchase", userID)
	defer end()

	if err := s.validate("purchase", form.Validate()); err != nil {
		return nil, err
	}
	purchase := &domain.Purchase{
		Description:   strings.TrimSpace(form.Description),
		Establishment: strings.TrimSpace(form.Establishment),
		Amount:        form.Amount,
		Date:          form.Date,
		Category:      strings.TrimSpace(form.Category),
		PaymentMethod: form.PaymentMethod,
		Type:          domain.PurchaseSingle,
		Status:        []domain.PurchaseStatus{domain.PurchaseConfirmed},
	}
	if form.Installments > 1 {
		purchase.Type = domain.PurchaseInstallment
		purchase.Installments = &domain.PurchaseInstallments{Current: 1, Total: form.Installments}
	}
	if form.Date.After(s.now()) {
		purchase.Status = []domain.PurchaseStatus{domain.PurchaseScheduled}
	}

	created, err := s.store.CreatePurchase(ctx, userID, purchase)
	if err != nil {
		return nil, s.submissionFailed(userID, "purchase", err)
	}
	s.submitted(userID, "purchase")
	return created, nil
}

func (s *MoneyService) SubmitGoal(ctx context.Context, userID string, form domain.GoalForm) (*domain.FinancialGoal, error) {
	ctx, end := startSpan(ctx, "SubmitGoal", userID)
	defer end()

	if err := s.validate("goal", form.Validate()); err != nil {
		return nil, err
	}
	goal := &domain.FinancialGoal{
		Name:                strings.TrimSpace(form.Name),
		TargetAmount:        form.TargetAmount,
		CurrentAmount:       form.CurrentAmount,
		MonthlyContribution: form.MonthlyContribution,
		Status:              domain.GoalActive,
		Deadline:            form.Deadline,
	}
	goal.RequiredMonthlyContribution = summary.RequiredMonthlyContribution(goal.TargetAmount, goal.CurrentAmount, goal.Deadline, s.now())
	if goal.Reached() {
		goal.Status = domain.GoalCompleted
	}

	created, err := s.store.CreateGoal(ctx, userID, goal)
	if err != nil {
		return nil, s.submissionFailed(userID, "goal", err)
	}
	s.submitted(userID, "goal")
	return created, nil
}

// DeleteSubscription removes a subscription. An unknown ID is reported as
// not found rather than as a failed submission.
func (s *MoneyService) DeleteSubscription(ctx context.Context, userID, subscriptionID string) error {
	ctx, end := startSpan(ctx, "DeleteSubscription", userID)
	defer end()

	if strings.TrimSpace(subscriptionID) == "" {
		return s.validate("subscription", &domain.ErrValidation{Field: "subscriptionId", Message: "required"})
	}
	if err := s.store.DeleteSubscription(ctx, userID, subscriptionID); err != nil {
		var nf *domain.ErrNotFound
		if errors.As(err, &nf) {
			s.metrics.IncrSubmission("subscription", observability.OutcomeRejected)
			return nf
		}
		return s.submissionFailed(userID, "subscription", err)
	}
	s.submitted(userID, "subscription")
	return nil
}

// DismissAlert hides an alert for the user. Dismissing twice is harmless.
func (s *MoneyService) DismissAlert(ctx context.Context, userID, alertID string) error {
	ctx, end := startSpan(ctx, "DismissAlert", userID)
	defer end()

	if strings.TrimSpace(alertID) == "" {
		return s.validate("alert", &domain.ErrValidation{Field: "alertId", Message: "required"})
	}
	if err := s.store.DismissAlert(ctx, userID, alertID); err != nil {
		return s.submissionFailed(userID, "alert", err)
	}
	s.metrics.IncrAlertDismissed()
	s.submitted(userID, "alert")
	return nil
}

func (s *MoneyService) validate(resource string, err error) error {
	if err != nil {
		s.metrics.IncrSubmission(resource, observability.OutcomeRejected)
	}
	return err
}

func (s *MoneyService) submissionFailed(userID, resource string, err error) error {
	s.logger.Error("submission failed",
		zap.String("user_id", userID),
		zap.String("resource", resource),
		zap.String("backend", s.store.Name()),
		zap.Error(err),
	)
	s.metrics.IncrSubmission(resource, observability.OutcomeFailure)
	return &domain.ErrSubmission{Resource: resource, Err: err}
}

func (s *MoneyService) submitted(userID, resource string) {
	s.metrics.IncrSubmission(resource, observability.OutcomeSuccess)
	s.invalidate(userID)
	s.logger.Info("submission stored", zap.String("user_id", userID), zap.String("resource", resource))
}
