package models

import "github.com/google/uuid"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

type Category struct {
	ID     uuid.UUID    `db:"id"`
	UserID uuid.UUID    `db:"user_id"`
	Name   string       `db:"name"`
	Color  string       `db:"color"`
	Icon   string       `db:"icon"`
	Type   CategoryType `db:"type"`
}

// DefaultCategories are seeded for every newly registered user.
var DefaultCategories = []Category{
	{Name: "Groceries", Color: "#26C7C3", Icon: "shopping-basket", Type: CategoryTypeExpense},
	{Name: "Transport", Color: "#FF7A5A", Icon: "bus", Type: CategoryTypeExpense},
	{Name: "Entertainment", Color: "#8E64F0", Icon: "music", Type: CategoryTypeExpense},
	{Name: "Utilities", Color: "#4CAF50", Icon: "bolt", Type: CategoryTypeExpense},
	{Name: "Other", Color: "#9E9E9E", Icon: "ellipsis-h", Type: CategoryTypeExpense},
	{Name: "Salary", Color: "#4285F4", Icon: "briefcase", Type: CategoryTypeIncome},
	{Name: "Investments", Color: "#0F9D58", Icon: "chart-line", Type: CategoryTypeIncome},
	{Name: "Gifts", Color: "#F4B400", Icon: "gift", Type: CategoryTypeIncome},
	{Name: "Freelance", Color: "#DB4437", Icon: "laptop", Type: CategoryTypeIncome},
	{Name: "Other", Color: "#9E9E9E", Icon: "ellipsis-h", Type: CategoryTypeIncome},
}
