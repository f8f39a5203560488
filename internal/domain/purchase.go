package domain

import (
	"strings"
	"time"
)

// ============================================================
// Purchases
// ============================================================

// PaymentMethod is how a purchase was paid.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentCash       PaymentMethod = "cash"
	PaymentBoleto     PaymentMethod = "boleto"
	PaymentTransfer   PaymentMethod = "transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentCash, PaymentBoleto, PaymentTransfer:
		return true
	}
	return false
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Cartão de crédito"
	case PaymentDebitCard:
		return "Cartão de débito"
	case PaymentPix:
		return "Pix"
	case PaymentCash:
		return "Dinheiro"
	case PaymentBoleto:
		return "Boleto"
	case PaymentTransfer:
		return "Transferência"
	}
	return string(m)
}

// PurchaseType distinguishes one-off, split and recurring purchases.
type PurchaseType string

const (
	PurchaseSingle      PurchaseType = "single"
	PurchaseInstallment PurchaseType = "installment"
	PurchaseRecurring   PurchaseType = "recurring"
)

func (t PurchaseType) Valid() bool {
	switch t {
	case PurchaseSingle, PurchaseInstallment, PurchaseRecurring:
		return true
	}
	return false
}

func (t PurchaseType) Label() string {
	switch t {
	case PurchaseSingle:
		return "À vista"
	case PurchaseInstallment:
		return "Parcelada"
	case PurchaseRecurring:
		return "Recorrente"
	}
	return string(t)
}

// PurchaseStatus is a status tag; a purchase may carry several.
type PurchaseStatus string

const (
	PurchaseConfirmed PurchaseStatus = "confirmed"
	PurchasePending   PurchaseStatus = "pending"
	PurchaseScheduled PurchaseStatus = "scheduled"
	PurchaseRefunded  PurchaseStatus = "refunded"
	PurchaseDisputed  PurchaseStatus = "disputed"
)

func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseConfirmed, PurchasePending, PurchaseScheduled, PurchaseRefunded, PurchaseDisputed:
		return true
	}
	return false
}

func (s PurchaseStatus) Label() string {
	switch s {
	case PurchaseConfirmed:
		return "Confirmada"
	case PurchasePending:
		return "Pendente"
	case PurchaseScheduled:
		return "Agendada"
	case PurchaseRefunded:
		return "Estornada"
	case PurchaseDisputed:
		return "Contestada"
	}
	return string(s)
}

// PurchaseInstallments tells which installment of how many this is.
type PurchaseInstallments struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Purchase is a single spending record.
type Purchase struct {
	ID            string                `json:"id"`
	Description   string                `json:"description"`
	Establishment string                `json:"establishment,omitempty"`
	Amount        float64               `json:"amount"`
	Date          time.Time             `json:"date"`
	Category      string                `json:"category,omitempty"`
	PaymentMethod PaymentMethod         `json:"paymentMethod"`
	Type          PurchaseType          `json:"type"`
	Status        []PurchaseStatus      `json:"status"`
	Installments  *PurchaseInstallments `json:"installments,omitempty"`
}

// HasStatus reports whether the purchase carries tag s.
func (p Purchase) HasStatus(s PurchaseStatus) bool {
	for _, st := range p.Status {
		if st == s {
			return true
		}
	}
	return false
}

// PurchaseForm is the payload of the "new purchase" form.
type PurchaseForm struct {
	Description   string        `json:"description"`
	Establishment string        `json:"establishment,omitempty"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	Category      string        `json:"category,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Installments  int           `json:"installments,omitempty"`
}

func (f PurchaseForm) Validate() error {
	if strings.TrimSpace(f.Description) == "" {
		return &ErrValidation{Field: "description", Message: "required"}
	}
	if len(f.Description) > 200 {
		return &ErrValidation{Field: "description", Message: "too long (max 200 characters)"}
	}
	if f.Amount <= 0 {
		return &ErrValidation{Field: "amount", Message: "must be positive"}
	}
	if f.Date.IsZero() {
		return &ErrValidation{Field: "date", Message: "required"}
	}
	if !f.PaymentMethod.Valid() {
		return &ErrValidation{Field: "paymentMethod", Message: "unknown payment method"}
	}
	if f.Installments < 0 || f.Installments > 48 {
		return &ErrValidation{Field: "installments", Message: "must be between 0 and 48"}
	}
	if f.Installments > 1 && f.PaymentMethod != PaymentCreditCard {
		return &ErrValidation{Field: "installments", Message: "only credit card purchases can be split"}
	}
	return nil
}

// DayGroup is the purchases sharing one calendar date.
type DayGroup struct {
	Date           time.Time  `json:"date"`
	Label          string     `json:"label"`
	TotalSpent     float64    `json:"totalSpent"`
	TotalFormatted string     `json:"totalFormatted"`
	Count          int        `json:"count"`
	Purchases      []Purchase `json:"purchases"`
}

// PurchasesSummary aggregates purchases of a period.
type PurchasesSummary struct {
	TotalSpent       float64     `json:"totalSpent"`
	TransactionCount int         `json:"transactionCount"`
	AverageTicket    float64     `json:"averageTicket"`
	InstallmentCount int         `json:"installmentCount"`
	ByCategory       Breakdown   `json:"byCategory"`
	ByPaymentMethod  Breakdown   `json:"byPaymentMethod"`
	Comparison       *Comparison `json:"comparison,omitempty"`
}
