// ABOUTME: Session manager owning the credential lifecycle and operator identity
// ABOUTME: State machine: Anonymous -> Authenticating -> Authenticated -> Anonymous

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// State identifies where the session is in its lifecycle.
type State string

const (
	// StateAnonymous means no credential is held, or a persisted credential
	// has not yet been validated.
	StateAnonymous State = "anonymous"
	// StateAuthenticating means a credential is present but the operator
	// profile has not yet been confirmed by the server.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means the credential validated and the operator
	// profile is cached.
	StateAuthenticated State = "authenticated"
)

// ErrNotAuthenticated is returned when an operation requires a validated
// session and none is held.
var ErrNotAuthenticated = errors.New("not authenticated")

// RegisterInput is the self-registration form. Registration never grants
// admin rights.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// Manager owns the bearer credential and the validated operator profile.
// The operator profile is trusted only after the /auth/me round-trip; a
// credential string alone never counts as authenticated.
//
// Manager is driven from a single goroutine, matching the console's
// cooperative scheduling model; it is not safe for concurrent use.
type Manager struct {
	api    *api.Client
	tokens TokenStore
	logger *slog.Logger

	state      State
	credential string
	operator   *model.User
}

// NewManager creates an anonymous session over the given gateway and
// credential slot.
func NewManager(client *api.Client, tokens TokenStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		api:    client,
		tokens: tokens,
		logger: logger,
		state:  StateAnonymous,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// Credential returns the held bearer credential, or "" when anonymous.
func (m *Manager) Credential() string {
	return m.credential
}

// Operator returns the validated operator profile, or nil before
// validation completes.
func (m *Manager) Operator() *model.User {
	return m.operator
}

// Bootstrap restores a persisted credential and re-validates it before any
// panel is permitted to render. A server rejection clears the slot and
// leaves the session anonymous.
func (m *Manager) Bootstrap(ctx context.Context) error {
	token, err := m.tokens.Load()
	if err != nil {
		return fmt.Errorf("loading persisted credential: %w", err)
	}
	if token == "" {
		m.state = StateAnonymous
		return nil
	}

	m.credential = token
	m.state = StateAuthenticating

	if err := m.validate(ctx); err != nil {
		m.discard(true)
		return fmt.Errorf("restored credential rejected: %w", err)
	}

	if err := m.tokens.Save(m.credential); err != nil {
		m.logger.Warn("persisting credential failed", "error", err)
	}
	m.state = StateAuthenticated
	m.logger.Info("session restored", "operator", m.operator.Email, "is_admin", m.operator.IsAdmin)
	return nil
}

// Login exchanges credentials for a bearer token, then validates it. The
// credential is persisted only after validation succeeds.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	env, err := m.api.Request(ctx, "/auth/token", api.RequestOptions{
		Method: http.MethodPost,
		Payload: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return err
	}

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := env.DecodeData(&data); err != nil {
		return err
	}

	m.credential = data.AccessToken
	m.state = StateAuthenticating

	if err := m.validate(ctx); err != nil {
		m.discard(false)
		return err
	}

	if err := m.tokens.Save(m.credential); err != nil {
		m.logger.Warn("persisting credential failed", "error", err)
	}
	m.state = StateAuthenticated
	m.logger.Info("logged in", "operator", m.operator.Email, "is_admin", m.operator.IsAdmin)
	return nil
}

// Register creates a new non-admin user via the open registration
// endpoint. It does not log the user in.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (int64, error) {
	env, err := m.api.Request(ctx, "/users/register", api.RequestOptions{
		Method:  http.MethodPost,
		Payload: in,
	})
	if err != nil {
		return 0, err
	}

	var data struct {
		UserID int64 `json:"user_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		return 0, err
	}
	return data.UserID, nil
}

// Logout discards the credential and cached operator unconditionally. No
// server call is made.
func (m *Manager) Logout() {
	m.discard(true)
	m.logger.Info("logged out")
}

// TokenExpiry reports the credential's expiry claim for display purposes
// only. The token is otherwise opaque to the console; expiry on the wire
// still manifests as a generic request failure.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	if m.credential == "" {
		return time.Time{}, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(m.credential, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// validate confirms the held credential against /auth/me and caches the
// operator profile. Any gateway failure is fatal for the session.
func (m *Manager) validate(ctx context.Context) error {
	env, err := m.api.Request(ctx, "/auth/me", api.RequestOptions{
		Credential: m.credential,
	})
	if err != nil {
		return err
	}

	var data struct {
		User model.User `json:"user"`
	}
	if err := env.DecodeData(&data); err != nil {
		return err
	}
	m.operator = &data.User
	return nil
}

// discard returns the session to anonymous. clearSlot also empties the
// persisted credential.
func (m *Manager) discard(clearSlot bool) {
	m.credential = ""
	m.operator = nil
	m.state = StateAnonymous
	if clearSlot {
		if err := m.tokens.Clear(); err != nil {
			m.logger.Warn("clearing persisted credential failed", "error", err)
		}
	}
}
