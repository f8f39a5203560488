package summary

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/format"
)

// SummarizeGoals aggregates goals and detects plan conflicts. capacity is
// the user's monthly saving capacity; without it no capacity conflict is
// reported.
func SummarizeGoals(goals []domain.FinancialGoal, now time.Time, capacity *float64) domain.GoalsSummary {
	counts := map[domain.GoalStatus]int{
		domain.GoalActive:    0,
		domain.GoalCompleted: 0,
		domain.GoalPaused:    0,
	}

	target := decimal.Zero
	current := decimal.Zero
	contribution := decimal.Zero
	required := decimal.Zero
	progressSum := decimal.Zero
	progressN := 0
	behind := 0
	items := make([]domain.GoalProgress, 0, len(goals))

	for _, g := range goals {
		counts[g.Status]++
		target = target.Add(dec(g.TargetAmount))
		current = current.Add(dec(g.CurrentAmount))

		// Average progress caps each goal at 100% so an over-funded goal
		// does not mask the others.
		if g.Status != domain.GoalPaused {
			progressSum = progressSum.Add(dec(clamp(g.Progress()*100, 0, 100)))
			progressN++
		}
		if g.Status == domain.GoalActive {
			contribution = contribution.Add(dec(g.MonthlyContribution))
			required = required.Add(dec(g.RequiredMonthlyContribution))
		}
		if g.IsBehind() {
			behind++
		}
		items = append(items, domain.GoalProgress{
			FinancialGoal:      g,
			ProgressPercentage: g.Progress() * 100,
			Behind:             g.IsBehind(),
		})
	}

	s := domain.GoalsSummary{
		TotalTarget:              target.InexactFloat64(),
		TotalCurrent:             current.InexactFloat64(),
		OverallProgress:          percentOf(current, target),
		StatusCounts:             counts,
		BehindCount:              behind,
		TotalMonthlyContribution: contribution.InexactFloat64(),
		TotalRequiredMonthly:     required.InexactFloat64(),
		Goals:                    items,
		Conflicts:                detectGoalConflicts(goals, now, required, capacity),
	}
	if progressN > 0 {
		s.AverageProgress = progressSum.Div(decimal.NewFromInt(int64(progressN))).InexactFloat64()
	}
	if gap := required.Sub(contribution); gap.IsPositive() {
		s.ContributionGap = gap.InexactFloat64()
	}
	return s
}

func detectGoalConflicts(goals []domain.FinancialGoal, now time.Time, required decimal.Decimal, capacity *float64) []domain.GoalConflict {
	conflicts := []domain.GoalConflict{}
	today := StartOfDay(now, now.Location())

	for _, g := range goals {
		if g.Status != domain.GoalActive || g.Deadline == nil || g.Reached() {
			continue
		}
		if g.Deadline.Before(today) {
			conflicts = append(conflicts, domain.GoalConflict{
				Kind:    domain.ConflictDeadlinePassed,
				GoalIDs: []string{g.ID},
				Amount:  dec(g.TargetAmount).Sub(dec(g.CurrentAmount)).InexactFloat64(),
				Message: fmt.Sprintf("O prazo de %q venceu em %s sem atingir a meta", g.Name, g.Deadline.Format("02/01/2006")),
			})
		}
	}

	if capacity != nil && required.GreaterThan(dec(*capacity)) {
		var ids []string
		for _, g := range goals {
			if g.Status == domain.GoalActive && g.RequiredMonthlyContribution > 0 {
				ids = append(ids, g.ID)
			}
		}
		sort.Strings(ids)
		excess := required.Sub(dec(*capacity)).InexactFloat64()
		conflicts = append(conflicts, domain.GoalConflict{
			Kind:    domain.ConflictInsufficientCapacity,
			GoalIDs: ids,
			Amount:  excess,
			Message: fmt.Sprintf("As metas exigem %s por mês, %s acima da sua capacidade de %s",
				format.BRL(required.InexactFloat64()), format.BRL(excess), format.BRL(*capacity)),
		})
	}
	return conflicts
}

// RequiredMonthlyContribution spreads what is left of target over the
// calendar months until deadline, counting the current month. Without a
// deadline, or once it has passed, nothing is required.
func RequiredMonthlyContribution(target, current float64, deadline *time.Time, now time.Time) float64 {
	remaining := dec(target).Sub(dec(current))
	if deadline == nil || !remaining.IsPositive() {
		return 0
	}
	d := deadline.In(now.Location())
	months := (d.Year()-now.Year())*12 + int(d.Month()-now.Month()) + 1
	if months < 1 || StartOfDay(d, now.Location()).Before(StartOfDay(now, now.Location())) {
		return 0
	}
	return remaining.Div(decimal.NewFromInt(int64(months))).Round(2).InexactFloat64()
}
