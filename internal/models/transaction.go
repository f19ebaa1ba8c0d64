package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a dated monetary movement. Amount is always non-negative;
// direction comes from Type.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Date        time.Time       `db:"date"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CategoryID  *uuid.UUID      `db:"category_id"`
	Type        TransactionType `db:"type"`
	CreatedAt   time.Time       `db:"created_at"`
}
