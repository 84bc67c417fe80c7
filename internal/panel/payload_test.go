// ABOUTME: Tests for capability-gated payload and query builders
// ABOUTME: Covers unset-field omission, admin gating, and filter encoding

package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bankexample/bankdesk/internal/model"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestBuildUserUpdate_OmitsUnsetFields(t *testing.T) {
	body := BuildUserUpdate(true, UserUpdate{Name: "New Name"})
	assert.Equal(t, map[string]any{"name": "New Name"}, body)
}

func TestBuildUserUpdate_EmptyFormIsEmptyBody(t *testing.T) {
	body := BuildUserUpdate(true, UserUpdate{})
	assert.Empty(t, body)
}

func TestBuildUserUpdate_IsActiveIsAdminOnly(t *testing.T) {
	in := UserUpdate{IsActive: boolPtr(false)}

	asAdmin := BuildUserUpdate(true, in)
	assert.Equal(t, map[string]any{"is_active": false}, asAdmin)

	asUser := BuildUserUpdate(false, in)
	assert.NotContains(t, asUser, "is_active")
}

func TestBuildAccountUpdate(t *testing.T) {
	body := BuildAccountUpdate(AccountUpdate{AccountType: model.AccountSavings})
	assert.Equal(t, map[string]any{"account_type": model.AccountSavings}, body)

	body = BuildAccountUpdate(AccountUpdate{IsActive: boolPtr(true)})
	assert.Equal(t, map[string]any{"is_active": true}, body)

	assert.Empty(t, BuildAccountUpdate(AccountUpdate{}))
}

func TestBuildTransactionUpdate_StatusIsAdminOnly(t *testing.T) {
	in := TransactionUpdate{Description: "corrected", Status: model.TxnSuccess}

	asAdmin := BuildTransactionUpdate(true, in)
	assert.Equal(t, map[string]any{"description": "corrected", "status": model.TxnSuccess}, asAdmin)

	asUser := BuildTransactionUpdate(false, in)
	assert.Equal(t, map[string]any{"description": "corrected"}, asUser)
}

func TestBuildTransactionQuery_EmptyFilterIsEmptyString(t *testing.T) {
	assert.Empty(t, BuildTransactionQuery(TransactionFilter{}))
}

func TestBuildTransactionQuery_OmitsEmptyFields(t *testing.T) {
	query := BuildTransactionQuery(TransactionFilter{
		DateFrom:  "2026-01-01",
		MinAmount: floatPtr(100.5),
	})
	assert.Equal(t, "?date_from=2026-01-01&min_amount=100.5", query)
}

func TestBuildTransactionQuery_AllFields(t *testing.T) {
	query := BuildTransactionQuery(TransactionFilter{
		DateFrom:  "2026-01-01",
		DateTo:    "2026-01-31",
		Type:      model.TxnTransfer,
		MinAmount: floatPtr(10),
		MaxAmount: floatPtr(1000),
	})
	assert.Equal(t, "?date_from=2026-01-01&date_to=2026-01-31&max_amount=1000&min_amount=10&transaction_type=transfer", query)
}
