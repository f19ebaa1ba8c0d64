package dto

import "spendaily/internal/models"

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

func (r *CreateCategoryRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if r.Type != string(models.CategoryTypeIncome) && r.Type != string(models.CategoryTypeExpense) {
		return &ValidationError{Field: "type", Message: "must be income or expense"}
	}
	return nil
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Color: c.Color,
		Icon:  c.Icon,
		Type:  string(c.Type),
	}
}
