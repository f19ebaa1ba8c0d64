package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spendaily/internal/dto"
	"spendaily/internal/events"
	"spendaily/internal/models"
)

var budgetNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newBudgetFixture() (*BudgetService, *fakeBudgetSettingsStore, *fakeTransactionStore, *fakeSavingsGoalStore, *recordingBus) {
	settingsStore := newFakeBudgetSettingsStore()
	txStore := newFakeTransactionStore()
	goalStore := newFakeSavingsGoalStore()
	bus := &recordingBus{}
	svc := NewBudgetService(settingsStore, txStore, goalStore, bus, zap.NewNop())
	svc.now = func() time.Time { return budgetNow }
	return svc, settingsStore, txStore, goalStore, bus
}

func TestBudgetSettingsMissingIsNotFound(t *testing.T) {
	svc, _, _, _, _ := newBudgetFixture()

	_, err := svc.GetSettings(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DailyBudget(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBudgetUpsertPublishesEvent(t *testing.T) {
	svc, _, _, _, bus := newBudgetFixture()
	userID := uuid.New()

	resp, err := svc.UpsertSettings(context.Background(), userID, &dto.UpsertBudgetSettingsRequest{
		MonthlyIncome:        decimal.NewFromInt(3000),
		MonthlyFixedExpenses: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	require.Len(t, bus.published, 1)
	assert.Equal(t, events.BudgetSettingsUpdated, bus.published[0].Type)
	assert.Equal(t, *resp, bus.published[0].Data)
}

func TestBudgetUpsertKeepsRowIdentity(t *testing.T) {
	svc, _, _, _, _ := newBudgetFixture()
	userID := uuid.New()

	first, err := svc.UpsertSettings(context.Background(), userID, &dto.UpsertBudgetSettingsRequest{
		MonthlyIncome:        decimal.NewFromInt(3000),
		MonthlyFixedExpenses: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	second, err := svc.UpsertSettings(context.Background(), userID, &dto.UpsertBudgetSettingsRequest{
		MonthlyIncome:        decimal.NewFromInt(3500),
		MonthlyFixedExpenses: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.MonthlyIncome.Equal(decimal.NewFromInt(3500)))
}

func TestBudgetUpsertRejectsLoneDate(t *testing.T) {
	svc, _, _, _, bus := newBudgetFixture()

	_, err := svc.UpsertSettings(context.Background(), uuid.New(), &dto.UpsertBudgetSettingsRequest{
		MonthlyIncome:   decimal.NewFromInt(3000),
		BudgetStartDate: "2025-06-01",
	})

	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, bus.published)
}

func TestDailyBudgetReadsOwnWrites(t *testing.T) {
	svc, _, txStore, _, _ := newBudgetFixture()
	userID := uuid.New()

	_, err := svc.UpsertSettings(context.Background(), userID, &dto.UpsertBudgetSettingsRequest{
		MonthlyIncome:        decimal.NewFromInt(3000),
		MonthlyFixedExpenses: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	before, err := svc.DailyBudget(context.Background(), userID)
	require.NoError(t, err)
	assert.InDelta(t, 50, before.RemainingToday, 1e-9)

	require.NoError(t, txStore.Create(context.Background(), &models.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Date:   budgetNow,
		Amount: decimal.NewFromInt(10),
		Type:   models.TransactionTypeExpense,
	}))

	after, err := svc.DailyBudget(context.Background(), userID)
	require.NoError(t, err)
	assert.InDelta(t, 40, after.RemainingToday, 1e-9)
	assert.InDelta(t, 10, after.TodaysExpenses, 1e-9)
	assert.InDelta(t, before.DailyBudget, after.DailyBudget, 1e-9)
}

func TestDailyBudgetIncludesActiveGoalsOnly(t *testing.T) {
	svc, _, _, goalStore, _ := newBudgetFixture()
	userID := uuid.New()

	_, err := svc.UpsertSettings(context.Background(), userID, &dto.UpsertBudgetSettingsRequest{
		MonthlyIncome:        decimal.NewFromInt(3000),
		MonthlyFixedExpenses: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	date := budgetNow.AddDate(0, 0, 30)
	active := &models.SavingsGoal{
		ID:           uuid.New(),
		UserID:       userID,
		TargetAmount: decimal.NewFromInt(300),
		TargetDate:   &date,
		IsActive:     true,
	}
	archived := &models.SavingsGoal{
		ID:           uuid.New(),
		UserID:       userID,
		TargetAmount: decimal.NewFromInt(5000),
		TargetDate:   &date,
	}
	require.NoError(t, goalStore.Create(context.Background(), active))
	require.NoError(t, goalStore.Create(context.Background(), archived))

	report, err := svc.DailyBudget(context.Background(), userID)
	require.NoError(t, err)

	want := 300.0 / (30.0 / 30.44)
	assert.InDelta(t, want, report.MonthlySavingsTarget, 1e-9)
}
