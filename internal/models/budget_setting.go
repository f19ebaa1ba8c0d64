package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetSetting holds a user's monthly budget parameters. There is exactly one
// row per user; writes upsert. BudgetStartDate/BudgetEndDate, when both set,
// override the default calendar-month budget period.
type BudgetSetting struct {
	ID                   uuid.UUID       `db:"id"`
	UserID               uuid.UUID       `db:"user_id"`
	MonthlyIncome        decimal.Decimal `db:"monthly_income"`
	MonthlyFixedExpenses decimal.Decimal `db:"monthly_fixed_expenses"`
	BudgetStartDate      *time.Time      `db:"budget_start_date"`
	BudgetEndDate        *time.Time      `db:"budget_end_date"`
}
