package domain

import (
	"fmt"
	"math"
	"time"
)

// ============================================================
// Debts & Installments
// ============================================================

// DebtType is the kind of obligation.
type DebtType string

const (
	DebtLoan       DebtType = "loan"
	DebtFinancing  DebtType = "financing"
	DebtCreditCard DebtType = "credit_card"
	DebtOverdraft  DebtType = "overdraft"
	DebtPersonal   DebtType = "personal"
	DebtOther      DebtType = "other"
)

func (t DebtType) Valid() bool {
	switch t {
	case DebtLoan, DebtFinancing, DebtCreditCard, DebtOverdraft, DebtPersonal, DebtOther:
		return true
	}
	return false
}

func (t DebtType) Label() string {
	switch t {
	case DebtLoan:
		return "Empréstimo"
	case DebtFinancing:
		return "Financiamento"
	case DebtCreditCard:
		return "Cartão de crédito"
	case DebtOverdraft:
		return "Cheque especial"
	case DebtPersonal:
		return "Dívida pessoal"
	case DebtOther:
		return "Outros"
	}
	return string(t)
}

// DebtStatus is the repayment state of a debt.
type DebtStatus string

const (
	DebtActive       DebtStatus = "active"
	DebtLate         DebtStatus = "late"
	DebtRenegotiated DebtStatus = "renegotiated"
	DebtPaid         DebtStatus = "paid"
)

func (s DebtStatus) Valid() bool {
	switch s {
	case DebtActive, DebtLate, DebtRenegotiated, DebtPaid:
		return true
	}
	return false
}

func (s DebtStatus) Label() string {
	switch s {
	case DebtActive:
		return "Em dia"
	case DebtLate:
		return "Em atraso"
	case DebtRenegotiated:
		return "Renegociada"
	case DebtPaid:
		return "Quitada"
	}
	return string(s)
}

// Severity maps the repayment state to the alert vocabulary.
func (s DebtStatus) Severity() Severity {
	switch s {
	case DebtLate:
		return SeverityCritical
	case DebtRenegotiated:
		return SeverityAttention
	}
	return SeverityNormal
}

// Debt is a monthly obligation with an outstanding balance.
type Debt struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Creditor          string     `json:"creditor"`
	Type              DebtType   `json:"type"`
	OriginalAmount    float64    `json:"originalAmount"`
	CurrentBalance    float64    `json:"currentBalance"`
	MonthlyPayment    float64    `json:"monthlyPayment"`
	InterestRate      *float64   `json:"interestRate,omitempty"`
	NextDueDate       time.Time  `json:"nextDueDate"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	RemainingPayments int        `json:"remainingPayments"`
	Status            DebtStatus `json:"status"`
}

// TotalPaid is what has been paid so far. Interest can push the balance
// above the original amount; that counts as nothing paid.
func (d Debt) TotalPaid() float64 {
	return math.Max(0, d.OriginalAmount-d.CurrentBalance)
}

// Installment is a purchase split into fixed monthly parts.
type Installment struct {
	ID                string    `json:"id"`
	Description       string    `json:"description"`
	Store             string    `json:"store,omitempty"`
	OriginalAmount    float64   `json:"originalAmount"`
	InstallmentAmount float64   `json:"installmentAmount"`
	TotalInstallments int       `json:"totalInstallments"`
	PaidInstallments  int       `json:"paidInstallments"`
	RemainingAmount   float64   `json:"remainingAmount"`
	NextDueDate       time.Time `json:"nextDueDate"`
}

// Remaining is the number of installments still open.
func (i Installment) Remaining() int {
	if i.PaidInstallments >= i.TotalInstallments {
		return 0
	}
	return i.TotalInstallments - i.PaidInstallments
}

// installmentTolerance absorbs cent rounding per open installment.
const installmentTolerance = 0.05

// Validate checks remainingAmount ≈ installmentAmount × open installments.
func (i Installment) Validate() error {
	if i.TotalInstallments <= 0 {
		return &ErrValidation{Field: "totalInstallments", Message: "must be positive"}
	}
	if i.PaidInstallments < 0 || i.PaidInstallments > i.TotalInstallments {
		return &ErrValidation{Field: "paidInstallments", Message: "must be between 0 and totalInstallments"}
	}
	open := i.Remaining()
	expected := i.InstallmentAmount * float64(open)
	if math.Abs(expected-i.RemainingAmount) > installmentTolerance*float64(max(open, 1)) {
		return &ErrValidation{
			Field:   "remainingAmount",
			Message: fmt.Sprintf("expected %.2f for %d open installments, got %.2f", expected, open, i.RemainingAmount),
		}
	}
	return nil
}

// InstallmentsSummary aggregates installment plans.
type InstallmentsSummary struct {
	ActiveCount              int     `json:"activeCount"`
	TotalRemaining           float64 `json:"totalRemaining"`
	MonthlyCommitment        float64 `json:"monthlyCommitment"`
	AverageMonthlyCommitment float64 `json:"averageMonthlyCommitment"`
}

// DebtsSummary aggregates debts and installment plans.
type DebtsSummary struct {
	TotalOriginal     float64             `json:"totalOriginal"`
	TotalBalance      float64             `json:"totalBalance"`
	TotalPaid         float64             `json:"totalPaid"`
	PaidPercentage    *float64            `json:"paidPercentage"`
	MonthlyCommitment float64             `json:"monthlyCommitment"`
	DebtCount         int                 `json:"debtCount"`
	LateCount         int                 `json:"lateCount"`
	ByType            Breakdown           `json:"byType"`
	Installments      InstallmentsSummary `json:"installments"`
	LiberationDate    *time.Time          `json:"liberationDate"`
}
