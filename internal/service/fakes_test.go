package service

import (
	"context"
	"time"

	"spendaily/internal/events"
	"spendaily/internal/models"
	"spendaily/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recordingBus captures published events for assertion.
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(e events.Event) {
	b.published = append(b.published, e)
}

type fakeTransactionStore struct {
	transactions map[uuid.UUID]*models.Transaction
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{transactions: make(map[uuid.UUID]*models.Transaction)}
}

func (s *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	cp := *tx
	s.transactions[tx.ID] = &cp
	return nil
}

func (s *fakeTransactionStore) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (s *fakeTransactionStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (s *fakeTransactionStore) ListByDateRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range s.transactions {
		if tx.UserID != userID {
			continue
		}
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, *tx)
	}
	return out, nil
}

func (s *fakeTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	if _, ok := s.transactions[tx.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *tx
	s.transactions[tx.ID] = &cp
	return nil
}

func (s *fakeTransactionStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.transactions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

type fakeSavingsGoalStore struct {
	goals map[uuid.UUID]*models.SavingsGoal
}

func newFakeSavingsGoalStore() *fakeSavingsGoalStore {
	return &fakeSavingsGoalStore{goals: make(map[uuid.UUID]*models.SavingsGoal)}
}

func (s *fakeSavingsGoalStore) Create(_ context.Context, goal *models.SavingsGoal) error {
	cp := *goal
	s.goals[goal.ID] = &cp
	return nil
}

func (s *fakeSavingsGoalStore) GetByID(_ context.Context, id uuid.UUID) (*models.SavingsGoal, error) {
	goal, ok := s.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *goal
	return &cp, nil
}

func (s *fakeSavingsGoalStore) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	var out []models.SavingsGoal
	for _, goal := range s.goals {
		if goal.UserID == userID && goal.IsActive {
			out = append(out, *goal)
		}
	}
	return out, nil
}

func (s *fakeSavingsGoalStore) AddAmount(_ context.Context, id uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, error) {
	goal, ok := s.goals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	cp := *goal
	return &cp, nil
}

func (s *fakeSavingsGoalStore) Replace(_ context.Context, goal *models.SavingsGoal) error {
	if _, ok := s.goals[goal.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *goal
	s.goals[goal.ID] = &cp
	return nil
}

func (s *fakeSavingsGoalStore) Archive(_ context.Context, id uuid.UUID) error {
	goal, ok := s.goals[id]
	if !ok {
		return repository.ErrNotFound
	}
	goal.IsActive = false
	return nil
}

type fakeBudgetSettingsStore struct {
	settings map[uuid.UUID]*models.BudgetSetting
}

func newFakeBudgetSettingsStore() *fakeBudgetSettingsStore {
	return &fakeBudgetSettingsStore{settings: make(map[uuid.UUID]*models.BudgetSetting)}
}

func (s *fakeBudgetSettingsStore) GetByUser(_ context.Context, userID uuid.UUID) (*models.BudgetSetting, error) {
	settings, ok := s.settings[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *settings
	return &cp, nil
}

func (s *fakeBudgetSettingsStore) Upsert(_ context.Context, settings *models.BudgetSetting) (*models.BudgetSetting, error) {
	if existing, ok := s.settings[settings.UserID]; ok {
		settings.ID = existing.ID
	} else if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	cp := *settings
	s.settings[settings.UserID] = &cp
	out := cp
	return &out, nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *fakeCategoryStore) ListByUser(_ context.Context, userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error) {
	var out []models.Category
	for _, c := range s.categories {
		if c.UserID != userID {
			continue
		}
		if categoryType != "" && c.Type != categoryType {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (s *fakeCategoryStore) SeedDefaults(_ context.Context, userID uuid.UUID) ([]models.Category, error) {
	var out []models.Category
	for _, def := range models.DefaultCategories {
		c := models.Category{
			ID:     uuid.New(),
			UserID: userID,
			Name:   def.Name,
			Color:  def.Color,
			Icon:   def.Icon,
			Type:   def.Type,
		}
		cp := c
		s.categories[c.ID] = &cp
		out = append(out, c)
	}
	return out, nil
}
