// ABOUTME: Capability-gated payload and query builders for panel mutations
// ABOUTME: Pure functions of operator role + form state; unset fields are omitted

package panel

import (
	"net/url"
	"strconv"

	"github.com/bankexample/bankdesk/internal/model"
)

// UserUpdate carries the fields an operator may change on a user. Empty
// strings mean "leave unchanged" and are omitted from the payload, never
// sent as null or empty.
type UserUpdate struct {
	Name     string
	Contact  string
	Address  string
	Password string
	IsActive *bool // admin-only
}

// BuildUserUpdate assembles the PUT /users/{id} body. The is_active flag
// is included only for administrators.
func BuildUserUpdate(operatorIsAdmin bool, in UserUpdate) map[string]any {
	body := map[string]any{}
	if in.Name != "" {
		body["name"] = in.Name
	}
	if in.Contact != "" {
		body["contact"] = in.Contact
	}
	if in.Address != "" {
		body["address"] = in.Address
	}
	if in.Password != "" {
		body["password"] = in.Password
	}
	if operatorIsAdmin && in.IsActive != nil {
		body["is_active"] = *in.IsActive
	}
	return body
}

// AccountUpdate carries the mutable account fields.
type AccountUpdate struct {
	AccountType model.AccountType
	IsActive    *bool
}

// BuildAccountUpdate assembles the PUT /accounts/{id} body with unset
// fields omitted so the server's leave-unchanged semantics hold.
func BuildAccountUpdate(in AccountUpdate) map[string]any {
	body := map[string]any{}
	if in.AccountType != "" {
		body["account_type"] = in.AccountType
	}
	if in.IsActive != nil {
		body["is_active"] = *in.IsActive
	}
	return body
}

// TransactionUpdate carries the admin-editable transaction fields.
type TransactionUpdate struct {
	Description string
	Status      model.TransactionStatus // admin-only
}

// BuildTransactionUpdate assembles the PUT /transactions/{id} body. Status
// is included only for administrators.
func BuildTransactionUpdate(operatorIsAdmin bool, in TransactionUpdate) map[string]any {
	body := map[string]any{}
	if in.Description != "" {
		body["description"] = in.Description
	}
	if operatorIsAdmin && in.Status != "" {
		body["status"] = in.Status
	}
	return body
}

// TransactionFilter holds the history filters the operator populated.
// Empty fields are omitted from the query entirely; the server decides
// what "no filter" means.
type TransactionFilter struct {
	DateFrom  string
	DateTo    string
	Type      model.TransactionType
	MinAmount *float64
	MaxAmount *float64
}

// BuildTransactionQuery renders the filter as a query string, including
// the leading "?" when any filter is set.
func BuildTransactionQuery(f TransactionFilter) string {
	params := url.Values{}
	if f.DateFrom != "" {
		params.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		params.Set("date_to", f.DateTo)
	}
	if f.Type != "" {
		params.Set("transaction_type", string(f.Type))
	}
	if f.MinAmount != nil {
		params.Set("min_amount", strconv.FormatFloat(*f.MinAmount, 'f', -1, 64))
	}
	if f.MaxAmount != nil {
		params.Set("max_amount", strconv.FormatFloat(*f.MaxAmount, 'f', -1, 64))
	}
	query := params.Encode()
	if query == "" {
		return ""
	}
	return "?" + query
}
