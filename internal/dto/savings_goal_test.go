package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchRequestAcceptsStringAndNumericAmounts(t *testing.T) {
	var fromString PatchSavingsGoalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.50"}`), &fromString))

	var fromNumber PatchSavingsGoalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":12.50}`), &fromNumber))

	assert.True(t, fromString.Amount.Equal(*fromNumber.Amount))
}

func TestPatchRequestAddFundsDetection(t *testing.T) {
	amount := decimal.NewFromInt(50)
	name := "Bike"

	addFunds := PatchSavingsGoalRequest{Amount: &amount}
	assert.True(t, addFunds.IsAddFunds())

	replace := PatchSavingsGoalRequest{Amount: &amount, Name: &name}
	assert.False(t, replace.IsAddFunds(), "any extra field makes it a replace")

	empty := PatchSavingsGoalRequest{}
	assert.False(t, empty.IsAddFunds())
}

func TestValidateReplaceRequiresNameAndTarget(t *testing.T) {
	target := decimal.NewFromInt(300)
	name := "Bike"

	valid := PatchSavingsGoalRequest{Name: &name, TargetAmount: &target}
	assert.NoError(t, valid.ValidateReplace())

	missingName := PatchSavingsGoalRequest{TargetAmount: &target}
	assert.Error(t, missingName.ValidateReplace())

	zero := decimal.Zero
	badTarget := PatchSavingsGoalRequest{Name: &name, TargetAmount: &zero}
	assert.Error(t, badTarget.ValidateReplace())
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("2025-06-15")
	assert.NoError(t, err)

	for _, bad := range []string{"15/06/2025", "2025-6-1", "June 15 2025", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
