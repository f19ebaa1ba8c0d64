// Package budget derives the daily spending allowance from a snapshot of a
// user's settings, transaction history and active savings goals. Everything
// here is a pure function over its inputs: no I/O and no server-side caching,
// so every request recomputes from current store state.
package budget

import (
	"time"

	"spendaily/internal/models"
)

// DaysPerMonth is the average-month constant used to convert monthly savings
// targets into daily figures. Deliberately month-relative: it does not follow
// custom budget-period lengths.
const DaysPerMonth = 30.44

// Report is the derived daily-budget view. All figures are unrounded;
// formatting happens at presentation time. Negative values are valid outputs,
// not errors. RemainingToday and DailyBudgetRemaining are the same figure
// under two names, kept for client compatibility.
type Report struct {
	DailyBudget          float64 `json:"dailyBudget"`
	DailyBudgetRemaining float64 `json:"dailyBudgetRemaining"`
	FullDailyBudget      float64 `json:"fullDailyBudget"`
	DailySavingsTarget   float64 `json:"dailySavingsTarget"`
	MonthlySavingsTarget float64 `json:"monthlySavingsTarget"`
	TodaysExpenses       float64 `json:"todaysExpenses"`
	RemainingToday       float64 `json:"remainingToday"`
	SpentThisMonth       float64 `json:"spentThisMonth"`
	TotalBudget          float64 `json:"totalBudget"`
	RemainingThisMonth   float64 `json:"remainingThisMonth"`
	DaysLeft             int     `json:"daysLeft"`
}

// ResolvePeriod returns the inclusive [start, end] budget period: the explicit
// dates from the settings when both are present, the current calendar month
// otherwise.
func ResolvePeriod(settings *models.BudgetSetting, now time.Time) (time.Time, time.Time) {
	if settings.BudgetStartDate != nil && settings.BudgetEndDate != nil {
		return dateOnly(*settings.BudgetStartDate), dateOnly(*settings.BudgetEndDate)
	}
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// Compute derives the report. spentTransactions must cover [period start,
// today] and todayTransactions just today; the engine sums only expense-type
// entries from each, so passing unfiltered slices is fine.
func Compute(settings *models.BudgetSetting, spentTransactions, todayTransactions []models.Transaction, goals []models.SavingsGoal, now time.Time) Report {
	start, end := ResolvePeriod(settings, now)
	today := dateOnly(now)

	periodLengthDays := daysBetween(start, end) + 1

	remainingDays := 1
	if !end.Before(today) {
		remainingDays = daysBetween(today, end) + 1
	}

	monthlyIncome := settings.MonthlyIncome.InexactFloat64()
	monthlyFixed := settings.MonthlyFixedExpenses.InexactFloat64()
	discretionaryIncome := monthlyIncome - monthlyFixed

	spent := sumExpenses(spentTransactions)
	todaysExpenses := sumExpenses(todayTransactions)

	monthlySavingsTarget := MonthlySavingsTarget(goals, discretionaryIncome, now)
	dailySavingsTarget := monthlySavingsTarget / DaysPerMonth

	// Flat allowance over the whole period; past spending does not rebalance
	// the remaining days.
	baseDailyBudget := discretionaryIncome / float64(periodLengthDays)
	dailySpendingBudget := baseDailyBudget - dailySavingsTarget

	remainingToday := dailySpendingBudget - todaysExpenses

	// Only today's savings slice is subtracted here, not the cumulative
	// savings committed so far this period.
	remainingThisMonth := discretionaryIncome - spent - dailySavingsTarget

	return Report{
		DailyBudget:          dailySpendingBudget,
		DailyBudgetRemaining: remainingToday,
		FullDailyBudget:      baseDailyBudget,
		DailySavingsTarget:   dailySavingsTarget,
		MonthlySavingsTarget: monthlySavingsTarget,
		TodaysExpenses:       todaysExpenses,
		RemainingToday:       remainingToday,
		SpentThisMonth:       spent,
		TotalBudget:          discretionaryIncome,
		RemainingThisMonth:   remainingThisMonth,
		DaysLeft:             remainingDays,
	}
}

func sumExpenses(transactions []models.Transaction) float64 {
	var sum float64
	for i := range transactions {
		if transactions[i].Type == models.TransactionTypeExpense {
			sum += transactions[i].Amount.InexactFloat64()
		}
	}
	return sum
}

// dateOnly normalizes a timestamp to its civil date at UTC midnight so that
// day arithmetic is immune to time-of-day and DST offsets.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)) / (24 * time.Hour))
}
