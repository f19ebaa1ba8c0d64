package service

import (
	"context"

	"spendaily/internal/dto"
	"spendaily/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	store  CategoryStore
	logger *zap.Logger
}

func NewCategoryService(store CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		logger: logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
		Type:   models.CategoryType(req.Type),
	}

	if err := s.store.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// List returns the user's categories; categoryType narrows the result to
// income or expense buckets when set.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, categoryType string) ([]dto.CategoryResponse, error) {
	filter := models.CategoryType("")
	if categoryType == string(models.CategoryTypeIncome) || categoryType == string(models.CategoryTypeExpense) {
		filter = models.CategoryType(categoryType)
	}

	categories, err := s.store.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryResponse(&categories[i]))
	}
	return out, nil
}
