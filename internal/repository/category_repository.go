package repository

import (
	"context"

	"spendaily/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var categoryColumns = []string{"id", "user_id", "name", "color", "icon", "type"}

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := squirrel.Insert("categories").
		Columns(categoryColumns...).
		Values(category.ID, category.UserID, category.Name, category.Color, category.Icon, category.Type).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's categories, optionally restricted to one type.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, categoryType models.CategoryType) ([]models.Category, error) {
	where := squirrel.Eq{"user_id": userID}
	if categoryType != "" {
		where["type"] = categoryType
	}

	query := squirrel.Select(categoryColumns...).
		From("categories").
		Where(where).
		OrderBy("name ASC").
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

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := squirrel.Select(categoryColumns...).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.Icon, &c.Type)
	if err != nil {
		return nil, translateNoRows(err)
	}

	return &c, nil
}

// SeedDefaults inserts the default category set for a newly registered user.
func (r *CategoryRepository) SeedDefaults(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	builder := squirrel.Insert("categories").
		Columns(categoryColumns...).
		PlaceholderFormat(squirrel.Dollar)

	seeded := make([]models.Category, 0, len(models.DefaultCategories))
	for _, def := range models.DefaultCategories {
		c := def
		c.ID = uuid.New()
		c.UserID = userID
		builder = builder.Values(c.ID, c.UserID, c.Name, c.Color, c.Icon, c.Type)
		seeded = append(seeded, c)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, err
	}

	return seeded, nil
}
