// ABOUTME: Shared contracts for resource panels: session view and notifier
// ABOUTME: Panels own their collections and replace them wholesale on reload

package panel

import (
	"errors"

	"github.com/bankexample/bankdesk/internal/model"
)

// Session is the read-only view of the authenticated session a panel
// needs. Only the session manager mutates the underlying state.
type Session interface {
	Credential() string
	Operator() *model.User
}

// Notifier receives the transient outcome notice for each operation.
// Implementations hold a single slot; a new notice replaces any pending
// one.
type Notifier interface {
	Success(format string, args ...any)
	Error(format string, args ...any)
}

// ErrAdminOnly is returned by operations that have no non-admin path at
// all, before any network call is made.
var ErrAdminOnly = errors.New("admin access required")
