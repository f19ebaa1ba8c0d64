package dto

import (
	"time"

	"spendaily/internal/models"

	"github.com/shopspring/decimal"
)

type CreateSavingsGoalRequest struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate"`
}

func (r *CreateSavingsGoalRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !r.TargetAmount.IsPositive() {
		return &ValidationError{Field: "targetAmount", Message: "must be positive"}
	}
	if r.CurrentAmount.IsNegative() {
		return &ValidationError{Field: "currentAmount", Message: "must not be negative"}
	}
	if r.TargetDate != "" {
		if _, err := parseDateField("targetDate", r.TargetDate); err != nil {
			return err
		}
	}
	return nil
}

// PatchSavingsGoalRequest carries the dual update contract: a request with
// only Amount set is an add-funds contribution; anything else is a full
// replace and must carry name and targetAmount.
type PatchSavingsGoalRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *string          `json:"targetDate"`
}

// IsAddFunds reports whether the request is a bare contribution.
func (r *PatchSavingsGoalRequest) IsAddFunds() bool {
	return r.Amount != nil && r.Name == nil && r.TargetAmount == nil &&
		r.CurrentAmount == nil && r.TargetDate == nil
}

func (r *PatchSavingsGoalRequest) ValidateReplace() error {
	if r.Name == nil || *r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if r.TargetAmount == nil || !r.TargetAmount.IsPositive() {
		return &ValidationError{Field: "targetAmount", Message: "must be positive"}
	}
	if r.CurrentAmount != nil && r.CurrentAmount.IsNegative() {
		return &ValidationError{Field: "currentAmount", Message: "must not be negative"}
	}
	if r.TargetDate != nil && *r.TargetDate != "" {
		if _, err := parseDateField("targetDate", *r.TargetDate); err != nil {
			return err
		}
	}
	return nil
}

type SavingsGoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    string          `json:"targetDate,omitempty"`
	CreatedAt     string          `json:"createdAt"`
}

func NewSavingsGoalResponse(g *models.SavingsGoal) SavingsGoalResponse {
	resp := SavingsGoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
	if g.TargetDate != nil {
		resp.TargetDate = g.TargetDate.Format(DateLayout)
	}
	return resp
}

func NewSavingsGoalResponses(goals []models.SavingsGoal) []SavingsGoalResponse {
	out := make([]SavingsGoalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, NewSavingsGoalResponse(&goals[i]))
	}
	return out
}
