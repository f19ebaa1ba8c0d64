package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendaily/internal/models"
)

func settings(income, fixed int64) *models.BudgetSetting {
	return &models.BudgetSetting{
		MonthlyIncome:        decimal.NewFromInt(income),
		MonthlyFixedExpenses: decimal.NewFromInt(fixed),
	}
}

func expense(amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Type:   models.TransactionTypeExpense,
	}
}

func TestResolvePeriodDefaultsToCalendarMonth(t *testing.T) {
	now := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)

	start, end := ResolvePeriod(settings(3000, 1500), now)

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestResolvePeriodUsesExplicitDates(t *testing.T) {
	start := time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 9, 23, 0, 0, 0, time.UTC)
	s := settings(3000, 1500)
	s.BudgetStartDate = &start
	s.BudgetEndDate = &end

	gotStart, gotEnd := ResolvePeriod(s, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestComputeFlatAllowanceNoGoals(t *testing.T) {
	// June has 30 days: 1500 discretionary over 30 days is 50 per day.
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	report := Compute(settings(3000, 1500), nil, nil, nil, now)

	assert.InDelta(t, 50, report.DailyBudget, 1e-9)
	assert.InDelta(t, 50, report.FullDailyBudget, 1e-9)
	assert.InDelta(t, 50, report.RemainingToday, 1e-9)
	assert.Equal(t, report.RemainingToday, report.DailyBudgetRemaining)
	assert.InDelta(t, 1500, report.TotalBudget, 1e-9)
	assert.Zero(t, report.MonthlySavingsTarget)
	assert.Zero(t, report.DailySavingsTarget)
	assert.Zero(t, report.TodaysExpenses)
	assert.Zero(t, report.SpentThisMonth)
	assert.Equal(t, 16, report.DaysLeft)
}

func TestComputeTodaysExpenseReducesRemainingOnly(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	today := []models.Transaction{expense(10, now)}

	report := Compute(settings(3000, 1500), today, today, nil, now)

	assert.InDelta(t, 50, report.DailyBudget, 1e-9, "the allowance itself must not move")
	assert.InDelta(t, 40, report.RemainingToday, 1e-9)
	assert.InDelta(t, 10, report.TodaysExpenses, 1e-9)
	assert.InDelta(t, 10, report.SpentThisMonth, 1e-9)
}

func TestComputeIncomeTransactionsIgnored(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		expense(10, now),
		{Date: now, Amount: decimal.NewFromInt(500), Type: models.TransactionTypeIncome},
	}

	report := Compute(settings(3000, 1500), txs, txs, nil, now)

	assert.InDelta(t, 10, report.SpentThisMonth, 1e-9)
	assert.InDelta(t, 10, report.TodaysExpenses, 1e-9)
}

func TestComputeIsIdempotent(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	spent := []models.Transaction{
		expense(25, now.AddDate(0, 0, -3)),
		expense(10, now),
	}
	today := []models.Transaction{expense(10, now)}
	goals := []models.SavingsGoal{{
		Name:         "Bike",
		TargetAmount: decimal.NewFromInt(300),
		TargetDate:   timePtr(now.AddDate(0, 0, 30)),
		IsActive:     true,
	}}

	first := Compute(settings(3000, 1500), spent, today, goals, now)
	second := Compute(settings(3000, 1500), spent, today, goals, now)

	assert.Equal(t, first, second)
}

func TestComputeRemainingThisMonthSubtractsOnlyTodaysSlice(t *testing.T) {
	// A dated goal of 300 due in ~1 month yields a monthly target near 300
	// and a daily slice near 10. remainingThisMonth subtracts the daily
	// slice, not the cumulative savings committed this period.
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	goals := []models.SavingsGoal{{
		TargetAmount: decimal.NewFromInt(300),
		TargetDate:   timePtr(now.AddDate(0, 0, 31)),
		IsActive:     true,
	}}
	spent := []models.Transaction{expense(100, now.AddDate(0, 0, -5))}

	report := Compute(settings(3000, 1500), spent, nil, goals, now)

	monthsToSave := 31.0 / DaysPerMonth
	wantMonthly := 300.0 / monthsToSave
	wantDaily := wantMonthly / DaysPerMonth
	require.InDelta(t, wantMonthly, report.MonthlySavingsTarget, 1e-9)
	assert.InDelta(t, 1500-100-wantDaily, report.RemainingThisMonth, 1e-9)
}

func TestComputeDaysLeftFloorsAtOneWhenPeriodEnded(t *testing.T) {
	end := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	s := settings(3000, 1500)
	s.BudgetStartDate = &start
	s.BudgetEndDate = &end

	report := Compute(s, nil, nil, nil, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, report.DaysLeft)
}

func TestComputeCustomPeriodLength(t *testing.T) {
	// A 10-day period spreads the full discretionary income across 10 days.
	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 19, 0, 0, 0, 0, time.UTC)
	s := settings(3000, 1500)
	s.BudgetStartDate = &start
	s.BudgetEndDate = &end

	report := Compute(s, nil, nil, nil, time.Date(2025, time.June, 12, 8, 0, 0, 0, time.UTC))

	assert.InDelta(t, 150, report.FullDailyBudget, 1e-9)
	assert.Equal(t, 8, report.DaysLeft)
}

func TestComputeNegativeOutputsAreValid(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	today := []models.Transaction{expense(500, now)}

	report := Compute(settings(1500, 1500), today, today, nil, now)

	assert.InDelta(t, 0, report.DailyBudget, 1e-9)
	assert.InDelta(t, -500, report.RemainingToday, 1e-9)
	assert.InDelta(t, -500, report.RemainingThisMonth, 1e-9)
}

func timePtr(t time.Time) *time.Time { return &t }
