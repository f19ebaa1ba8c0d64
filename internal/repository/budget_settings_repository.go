package repository

import (
	"context"

	"spendaily/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var budgetSettingColumns = []string{"id", "user_id", "monthly_income", "monthly_fixed_expenses", "budget_start_date", "budget_end_date"}

type BudgetSettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetSettingsRepository {
	return &BudgetSettingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BudgetSettingsRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.BudgetSetting, error) {
	query := squirrel.Select(budgetSettingColumns...).
		From("budget_settings").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s models.BudgetSetting
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.UserID, &s.MonthlyIncome, &s.MonthlyFixedExpenses, &s.BudgetStartDate, &s.BudgetEndDate,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}

	return &s, nil
}

// Upsert creates the user's settings row on first write and updates it in
// place afterwards; the user_id unique constraint guarantees a single row.
func (r *BudgetSettingsRepository) Upsert(ctx context.Context, settings *models.BudgetSetting) (*models.BudgetSetting, error) {
	existing, err := r.GetByUser(ctx, settings.UserID)
	if err != nil && err != ErrNotFound {
		return nil, err
	}

	if existing != nil {
		settings.ID = existing.ID
		query := squirrel.Update("budget_settings").
			Set("monthly_income", settings.MonthlyIncome).
			Set("monthly_fixed_expenses", settings.MonthlyFixedExpenses).
			Set("budget_start_date", settings.BudgetStartDate).
			Set("budget_end_date", settings.BudgetEndDate).
			Where(squirrel.Eq{"user_id": settings.UserID}).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := query.ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := r.db.Exec(ctx, sql, args...); err != nil {
			return nil, err
		}
		return settings, nil
	}

	settings.ID = uuid.New()
	query := squirrel.Insert("budget_settings").
		Columns(budgetSettingColumns...).
		Values(settings.ID, settings.UserID, settings.MonthlyIncome, settings.MonthlyFixedExpenses, settings.BudgetStartDate, settings.BudgetEndDate).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, err
	}
	return settings, nil
}
