package dto

import (
	"spendaily/internal/models"

	"github.com/shopspring/decimal"
)

type UpsertBudgetSettingsRequest struct {
	MonthlyIncome        decimal.Decimal `json:"monthlyIncome"`
	MonthlyFixedExpenses decimal.Decimal `json:"monthlyFixedExpenses"`
	BudgetStartDate      string          `json:"budgetStartDate"`
	BudgetEndDate        string          `json:"budgetEndDate"`
}

func (r *UpsertBudgetSettingsRequest) Validate() error {
	if r.MonthlyIncome.IsNegative() {
		return &ValidationError{Field: "monthlyIncome", Message: "must not be negative"}
	}
	if r.MonthlyFixedExpenses.IsNegative() {
		return &ValidationError{Field: "monthlyFixedExpenses", Message: "must not be negative"}
	}
	if (r.BudgetStartDate == "") != (r.BudgetEndDate == "") {
		return &ValidationError{Field: "budgetStartDate", Message: "start and end dates must be set together"}
	}
	if r.BudgetStartDate != "" {
		start, err := parseDateField("budgetStartDate", r.BudgetStartDate)
		if err != nil {
			return err
		}
		end, err := parseDateField("budgetEndDate", r.BudgetEndDate)
		if err != nil {
			return err
		}
		if end.Before(start) {
			return &ValidationError{Field: "budgetEndDate", Message: "must not precede budgetStartDate"}
		}
	}
	return nil
}

type BudgetSettingsResponse struct {
	ID                   string          `json:"id"`
	MonthlyIncome        decimal.Decimal `json:"monthlyIncome"`
	MonthlyFixedExpenses decimal.Decimal `json:"monthlyFixedExpenses"`
	BudgetStartDate      string          `json:"budgetStartDate,omitempty"`
	BudgetEndDate        string          `json:"budgetEndDate,omitempty"`
}

func NewBudgetSettingsResponse(s *models.BudgetSetting) BudgetSettingsResponse {
	resp := BudgetSettingsResponse{
		ID:                   s.ID.String(),
		MonthlyIncome:        s.MonthlyIncome,
		MonthlyFixedExpenses: s.MonthlyFixedExpenses,
	}
	if s.BudgetStartDate != nil {
		resp.BudgetStartDate = s.BudgetStartDate.Format(DateLayout)
	}
	if s.BudgetEndDate != nil {
		resp.BudgetEndDate = s.BudgetEndDate.Format(DateLayout)
	}
	return resp
}
