package domain

import (
	"strings"
	"time"
)

// ============================================================
// Accounts
// ============================================================

// AccountType is the kind of account a balance is held in.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountWallet     AccountType = "wallet"
	AccountInvestment AccountType = "investment"
	AccountCredit     AccountType = "credit"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountWallet, AccountInvestment, AccountCredit:
		return true
	}
	return false
}

func (t AccountType) Label() string {
	switch t {
	case AccountChecking:
		return "Conta corrente"
	case AccountSavings:
		return "Poupança"
	case AccountWallet:
		return "Carteira"
	case AccountInvestment:
		return "Conta investimento"
	case AccountCredit:
		return "Conta crédito"
	}
	return string(t)
}

// Account is a place where the user keeps money.
type Account struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Name        string      `json:"name"`
	Institution string      `json:"institution"`
	Type        AccountType `json:"type"`
	Balance     float64     `json:"balance"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// AccountForm is the payload of the "new account" form.
type AccountForm struct {
	Name           string      `json:"name"`
	Institution    string      `json:"institution"`
	Type           AccountType `json:"type"`
	InitialBalance float64     `json:"initialBalance"`
}

// Validate checks required fields. It never touches the data provider.
func (f AccountForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ErrValidation{Field: "name", Message: "required"}
	}
	if len(f.Name) > 80 {
		return &ErrValidation{Field: "name", Message: "too long (max 80 characters)"}
	}
	if strings.TrimSpace(f.Institution) == "" {
		return &ErrValidation{Field: "institution", Message: "required"}
	}
	if !f.Type.Valid() {
		return &ErrValidation{Field: "type", Message: "unknown account type"}
	}
	return nil
}

// AccountSummary aggregates the user's accounts.
type AccountSummary struct {
	TotalBalance         float64     `json:"totalBalance"`
	AccountCount         int         `json:"accountCount"`
	ActiveCount          int         `json:"activeCount"`
	NegativeBalanceCount int         `json:"negativeBalanceCount"`
	ByType               Breakdown   `json:"byType"`
	ByInstitution        Breakdown   `json:"byInstitution"`
	Comparison           *Comparison `json:"comparison,omitempty"`
}
