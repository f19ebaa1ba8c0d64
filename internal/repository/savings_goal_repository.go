package repository

import (
	"context"

	"spendaily/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var savingsGoalColumns = []string{"id", "user_id", "name", "target_amount", "current_amount", "target_date", "is_active", "created_at"}

type SavingsGoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSavingsGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *SavingsGoalRepository {
	return &SavingsGoalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SavingsGoalRepository) Create(ctx context.Context, goal *models.SavingsGoal) error {
	query := squirrel.Insert("savings_goals").
		Columns(savingsGoalColumns...).
		Values(goal.ID, goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate, goal.IsActive, goal.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SavingsGoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavingsGoal, error) {
	query := squirrel.Select(savingsGoalColumns...).
		From("savings_goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var g models.SavingsGoal
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.IsActive, &g.CreatedAt,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}

	return &g, nil
}

// ListActiveByUser excludes archived goals.
func (r *SavingsGoalRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.SavingsGoal, error) {
	query := squirrel.Select(savingsGoalColumns...).
		From("savings_goals").
		Where(squirrel.And{
			squirrel.Eq{"user_id": userID},
			squirrel.Eq{"is_active": true},
		}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.IsActive, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// AddAmount accumulates a contribution into current_amount.
func (r *SavingsGoalRepository) AddAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.SavingsGoal, error) {
	query := squirrel.Update("savings_goals").
		Set("current_amount", squirrel.Expr("current_amount + ?", amount)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Replace rewrites the goal's mutable fields in place, preserving its identity.
func (r *SavingsGoalRepository) Replace(ctx context.Context, goal *models.SavingsGoal) error {
	query := squirrel.Update("savings_goals").
		Set("name", goal.Name).
		Set("target_amount", goal.TargetAmount).
		Set("current_amount", goal.CurrentAmount).
		Set("target_date", goal.TargetDate).
		Where(squirrel.Eq{"id": goal.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Archive soft-deletes a goal. The row and its accumulated current_amount
// stay in place; reads exclude it from then on.
func (r *SavingsGoalRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Update("savings_goals").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
