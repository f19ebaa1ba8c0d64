package dto

import (
	"time"

	"spendaily/internal/models"

	"github.com/shopspring/decimal"
)

// Amounts arrive as either a JSON number or a decimal string; decimal.Decimal
// accepts both representations when unmarshalling.
type CreateTransactionRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Type        string          `json:"type"`
}

func (r *CreateTransactionRequest) Validate() error {
	if _, err := parseDateField("date", r.Date); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	if r.Type != string(models.TransactionTypeIncome) && r.Type != string(models.TransactionTypeExpense) {
		return &ValidationError{Field: "type", Message: "must be income or expense"}
	}
	return nil
}

// UpdateTransactionRequest is a partial update; nil fields keep their current
// value. ID, owner and creation time are never updatable.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"categoryId"`
	Type        *string          `json:"type"`
}

func (r *UpdateTransactionRequest) Validate() error {
	if r.Date != nil {
		if _, err := parseDateField("date", *r.Date); err != nil {
			return err
		}
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	if r.Type != nil && *r.Type != string(models.TransactionTypeIncome) && *r.Type != string(models.TransactionTypeExpense) {
		return &ValidationError{Field: "type", Message: "must be income or expense"}
	}
	return nil
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Type        string          `json:"type"`
	CreatedAt   string          `json:"createdAt"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          tx.ID.String(),
		Date:        tx.Date.Format(DateLayout),
		Amount:      tx.Amount,
		Description: tx.Description,
		Type:        string(tx.Type),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		resp.CategoryID = tx.CategoryID.String()
	}
	return resp
}

func NewTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
