package domain

import (
	"strings"
	"time"
)

// ============================================================
// Financial Goals
// ============================================================

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalPaused:
		return true
	}
	return false
}

func (s GoalStatus) Label() string {
	switch s {
	case GoalActive:
		return "Em andamento"
	case GoalCompleted:
		return "Concluída"
	case GoalPaused:
		return "Pausada"
	}
	return string(s)
}

// FinancialGoal is a savings target.
type FinancialGoal struct {
	ID                          string     `json:"id"`
	Name                        string     `json:"name"`
	TargetAmount                float64    `json:"targetAmount"`
	CurrentAmount               float64    `json:"currentAmount"`
	MonthlyContribution         float64    `json:"monthlyContribution"`
	RequiredMonthlyContribution float64    `json:"requiredMonthlyContribution"`
	Status                      GoalStatus `json:"status"`
	Deadline                    *time.Time `json:"deadline,omitempty"`
}

// Progress is currentAmount / targetAmount as a fraction, 0 when the target is 0.
func (g FinancialGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}

// IsBehind reports whether contributions fall short of what the deadline needs.
func (g FinancialGoal) IsBehind() bool {
	return g.Status == GoalActive && g.MonthlyContribution < g.RequiredMonthlyContribution
}

// Reached reports whether the target amount is met.
func (g FinancialGoal) Reached() bool {
	return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount
}

// GoalForm is the payload of the "new goal" form.
type GoalForm struct {
	Name                string     `json:"name"`
	TargetAmount        float64    `json:"targetAmount"`
	CurrentAmount       float64    `json:"currentAmount"`
	MonthlyContribution float64    `json:"monthlyContribution"`
	Deadline            *time.Time `json:"deadline,omitempty"`
}

func (f GoalForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ErrValidation{Field: "name", Message: "required"}
	}
	if f.TargetAmount <= 0 {
		return &ErrValidation{Field: "targetAmount", Message: "must be positive"}
	}
	if f.CurrentAmount < 0 {
		return &ErrValidation{Field: "currentAmount", Message: "cannot be negative"}
	}
	if f.MonthlyContribution < 0 {
		return &ErrValidation{Field: "monthlyContribution", Message: "cannot be negative"}
	}
	return nil
}

// GoalConflictKind names why a goal plan does not add up.
type GoalConflictKind string

const (
	ConflictDeadlinePassed       GoalConflictKind = "deadline_passed"
	ConflictInsufficientCapacity GoalConflictKind = "insufficient_capacity"
)

func (k GoalConflictKind) Label() string {
	switch k {
	case ConflictDeadlinePassed:
		return "Prazo vencido"
	case ConflictInsufficientCapacity:
		return "Capacidade mensal insuficiente"
	}
	return string(k)
}

// GoalConflict is a detected inconsistency in the goal plan.
type GoalConflict struct {
	Kind    GoalConflictKind `json:"kind"`
	GoalIDs []string         `json:"goalIds"`
	Amount  float64          `json:"amount,omitempty"`
	Message string           `json:"message"`
}

// GoalProgress is one goal with its derived progress.
type GoalProgress struct {
	FinancialGoal
	ProgressPercentage float64 `json:"progressPercentage"`
	Behind             bool    `json:"behind"`
}

// GoalsSummary aggregates all goals.
type GoalsSummary struct {
	TotalTarget              float64            `json:"totalTarget"`
	TotalCurrent             float64            `json:"totalCurrent"`
	OverallProgress          float64            `json:"overallProgress"`
	AverageProgress          float64            `json:"averageProgress"`
	StatusCounts             map[GoalStatus]int `json:"statusCounts"`
	BehindCount              int                `json:"behindCount"`
	TotalMonthlyContribution float64            `json:"totalMonthlyContribution"`
	TotalRequiredMonthly     float64            `json:"totalRequiredMonthly"`
	ContributionGap          float64            `json:"contributionGap"`
	Goals                    []GoalProgress     `json:"goals"`
	Conflicts                []GoalConflict     `json:"conflicts"`
}
