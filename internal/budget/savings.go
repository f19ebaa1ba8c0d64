package budget

import (
	"math"
	"time"

	"spendaily/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// minMonthsToSave floors the amortization horizon at half a month so
	// near-deadline goals do not demand their whole balance at once.
	minMonthsToSave = 0.5

	// undatedGoalRate caps the monthly contribution of a goal without a
	// deadline at 5% of discretionary income.
	undatedGoalRate = 0.05
)

// MonthlySavingsTarget apportions monthly income toward the given goals and
// returns the summed monthly target. The sum is unclamped and may exceed
// income. Goals whose target date is today or in the past contribute nothing.
func MonthlySavingsTarget(goals []models.SavingsGoal, discretionaryIncome float64, now time.Time) float64 {
	today := dateOnly(now)

	var total float64
	for i := range goals {
		goal := &goals[i]
		if !goal.IsActive {
			continue
		}

		amountNeeded := goal.TargetAmount.Sub(goal.CurrentAmount).InexactFloat64()
		if amountNeeded <= 0 {
			continue
		}

		if goal.TargetDate != nil {
			daysUntilTarget := daysBetween(today, *goal.TargetDate)
			if daysUntilTarget <= 0 {
				continue
			}
			monthsToSave := math.Max(minMonthsToSave, float64(daysUntilTarget)/DaysPerMonth)
			total += amountNeeded / monthsToSave
		} else {
			total += math.Min(amountNeeded, discretionaryIncome*undatedGoalRate)
		}
	}

	return total
}

// JumpStart returns the immediate contribution applied when a goal with a
// future target date is created: day one's worth of the remaining balance,
// front-loaded because no recurring accrual job exists. Zero for undated,
// past-due or already-funded goals.
func JumpStart(goal *models.SavingsGoal, now time.Time) decimal.Decimal {
	if goal.TargetDate == nil {
		return decimal.Zero
	}

	daysUntilTarget := daysBetween(dateOnly(now), *goal.TargetDate)
	if daysUntilTarget <= 0 {
		return decimal.Zero
	}

	amountNeeded := goal.TargetAmount.Sub(goal.CurrentAmount)
	if !amountNeeded.IsPositive() {
		return decimal.Zero
	}

	return amountNeeded.Div(decimal.NewFromInt(int64(daysUntilTarget)))
}
