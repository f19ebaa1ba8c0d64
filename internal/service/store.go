package service

import (
	"context"
	"time"

	"spendaily/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The store interfaces describe what each service needs from the entity
// store. internal/repository provides the Postgres implementations; tests
// substitute in-memory ones.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	ListByUser(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error)
	SeedDefaults(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BudgetSettingsStore interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.BudgetSetting, error)
	Upsert(ctx context.Context, settings *models.BudgetSetting) (*models.BudgetSetting, error)
}

type SavingsGoalStore interface {
	Create(ctx context.Context, goal *models.SavingsGoal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavingsGoal, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error)
	AddAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, error)
	Replace(ctx context.Context, goal *models.SavingsGoal) error
	Archive(ctx context.Context, id uuid.UUID) error
}
