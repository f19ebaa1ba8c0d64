package service

import (
	"context"
	"time"

	"spendaily/internal/budget"
	"spendaily/internal/dto"
	"spendaily/internal/events"
	"spendaily/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetService owns the budget-settings lifecycle and the daily-budget
// derivation. Reports are recomputed from store state on every call so the
// requester always reads their own writes.
type BudgetService struct {
	settingsStore    BudgetSettingsStore
	transactionStore TransactionStore
	goalStore        SavingsGoalStore
	bus              events.Publisher
	logger           *zap.Logger
	now              func() time.Time
}

func NewBudgetService(
	settingsStore BudgetSettingsStore,
	transactionStore TransactionStore,
	goalStore SavingsGoalStore,
	bus events.Publisher,
	logger *zap.Logger,
) *BudgetService {
	return &BudgetService{
		settingsStore:    settingsStore,
		transactionStore: transactionStore,
		goalStore:        goalStore,
		bus:              bus,
		logger:           logger,
		now:              time.Now,
	}
}

// GetSettings surfaces a missing row as ErrNotFound; it is never defaulted,
// so "no settings yet" stays distinguishable from "zero income".
func (s *BudgetService) GetSettings(ctx context.Context, userID uuid.UUID) (*dto.BudgetSettingsResponse, error) {
	settings, err := s.settingsStore.GetByUser(ctx, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	resp := dto.NewBudgetSettingsResponse(settings)
	return &resp, nil
}

func (s *BudgetService) UpsertSettings(ctx context.Context, userID uuid.UUID, req *dto.UpsertBudgetSettingsRequest) (*dto.BudgetSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings := &models.BudgetSetting{
		UserID:               userID,
		MonthlyIncome:        req.MonthlyIncome,
		MonthlyFixedExpenses: req.MonthlyFixedExpenses,
	}
	if req.BudgetStartDate != "" {
		start, _ := dto.ParseDate(req.BudgetStartDate)
		end, _ := dto.ParseDate(req.BudgetEndDate)
		settings.BudgetStartDate = &start
		settings.BudgetEndDate = &end
	}

	saved, err := s.settingsStore.Upsert(ctx, settings)
	if err != nil {
		return nil, err
	}

	resp := dto.NewBudgetSettingsResponse(saved)
	s.bus.Publish(events.Event{Type: events.BudgetSettingsUpdated, Data: resp})

	return &resp, nil
}

// DailyBudget assembles the store snapshot and delegates the arithmetic to
// the derivation engine. Missing settings abort with ErrNotFound.
func (s *BudgetService) DailyBudget(ctx context.Context, userID uuid.UUID) (*budget.Report, error) {
	settings, err := s.settingsStore.GetByUser(ctx, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	now := s.now()
	start, _ := budget.ResolvePeriod(settings, now)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	spentTransactions, err := s.transactionStore.ListByDateRange(ctx, userID, start, today)
	if err != nil {
		return nil, err
	}

	todayTransactions, err := s.transactionStore.ListByDateRange(ctx, userID, today, today)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalStore.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := budget.Compute(settings, spentTransactions, todayTransactions, goals, now)
	return &report, nil
}
