// ABOUTME: Tests for the shell's session gating and mount-once tab loading
// ABOUTME: Uses a fake API covering auth plus all seven panel collections

package console

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/session"
)

// fakeBank is an in-memory API fake that counts requests per path.
type fakeBank struct {
	mu     sync.Mutex
	counts map[string]int
	admin  bool
}

func (f *fakeBank) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[path]
}

func (f *fakeBank) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, data map[string]any) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "success",
			"message": "ok",
			"data":    data,
		})
	}
	items := func(w http.ResponseWriter) {
		writeJSON(w, map[string]any{"items": []any{}})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.counts[r.URL.Path]++
		f.mu.Unlock()

		switch {
		case r.URL.Path == "/auth/token":
			writeJSON(w, map[string]any{"access_token": "tok-shell", "token_type": "bearer", "user_id": 1})
		case r.URL.Path == "/auth/me":
			writeJSON(w, map[string]any{"user": map[string]any{
				"id": 1, "name": "Op", "email": "op@bankexample.com",
				"is_admin": f.admin, "is_active": true,
			}})
		case r.URL.Path == "/users/1":
			writeJSON(w, map[string]any{"user": map[string]any{"id": 1, "name": "Op"}})
		default:
			items(w)
		}
	})
}

func newTestShell(t *testing.T, admin bool) (*Shell, *fakeBank) {
	t.Helper()
	bank := &fakeBank{counts: map[string]int{}, admin: admin}
	srv := httptest.NewServer(bank.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.DiscardHandler)
	client := api.New(srv.URL, logger)
	store := session.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	sess := session.NewManager(client, store, logger)
	shell := New(client, sess, NewNotices(newFakeClock(), 0))
	return shell, bank
}

func TestShell_UnauthenticatedGating(t *testing.T) {
	shell, bank := newTestShell(t, true)

	assert.False(t, shell.Authenticated())
	assert.ErrorIs(t, shell.SwitchTab(context.Background(), TabUsers), session.ErrNotAuthenticated)
	assert.ErrorIs(t, shell.Refresh(context.Background()), session.ErrNotAuthenticated)
	assert.Zero(t, bank.count("/accounts/"), "no panel traffic before login")
}

func TestShell_LoginMountsAccountsTab(t *testing.T) {
	shell, bank := newTestShell(t, true)

	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))

	assert.True(t, shell.Authenticated())
	assert.Equal(t, TabAccounts, shell.ActiveTab())
	assert.Equal(t, 1, bank.count("/accounts/"))

	cur := shell.Notices().Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Logged in", cur.Message)
}

func TestShell_SwitchTabLoadsOnFirstMountOnly(t *testing.T) {
	shell, bank := newTestShell(t, true)
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))

	require.NoError(t, shell.SwitchTab(context.Background(), TabDeposits))
	assert.Equal(t, 1, bank.count("/deposits/"))

	// Switching away and back does not re-fetch.
	require.NoError(t, shell.SwitchTab(context.Background(), TabAccounts))
	require.NoError(t, shell.SwitchTab(context.Background(), TabDeposits))
	assert.Equal(t, 1, bank.count("/deposits/"))
	assert.Equal(t, 1, bank.count("/accounts/"))
}

func TestShell_RefreshAlwaysReloads(t *testing.T) {
	shell, bank := newTestShell(t, true)
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))

	require.NoError(t, shell.Refresh(context.Background()))
	require.NoError(t, shell.Refresh(context.Background()))
	assert.Equal(t, 3, bank.count("/accounts/"), "mount plus two refreshes")
}

func TestShell_SwitchTabRejectsUnknownTab(t *testing.T) {
	shell, _ := newTestShell(t, true)
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))

	err := shell.SwitchTab(context.Background(), Tab("bogus"))
	require.Error(t, err)
	assert.Equal(t, TabAccounts, shell.ActiveTab(), "active tab unchanged")
}

func TestShell_LogoutUnmountsPanels(t *testing.T) {
	shell, bank := newTestShell(t, true)
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))
	require.NoError(t, shell.SwitchTab(context.Background(), TabDeposits))

	shell.Logout()
	assert.False(t, shell.Authenticated())

	// Next login re-mounts fresh.
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))
	require.NoError(t, shell.SwitchTab(context.Background(), TabDeposits))
	assert.Equal(t, 2, bank.count("/deposits/"))
}

func TestShell_AuditTabBlockedForNonAdminWithoutNetworkCall(t *testing.T) {
	shell, bank := newTestShell(t, false)
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))

	require.NoError(t, shell.SwitchTab(context.Background(), TabAudit))
	require.NoError(t, shell.Refresh(context.Background()))

	assert.True(t, shell.AuditLogs().Blocked())
	assert.Zero(t, bank.count("/audit-logs/"), "blocked audit view must not fetch")
}

func TestShell_MutualFundsTabFansOutOnce(t *testing.T) {
	shell, bank := newTestShell(t, true)
	require.NoError(t, shell.Login(context.Background(), "op@bankexample.com", "pw"))

	require.NoError(t, shell.SwitchTab(context.Background(), TabMutualFunds))

	assert.Equal(t, 1, bank.count("/mutual-funds/"))
	assert.Equal(t, 1, bank.count("/mutual-funds/holdings"))
	assert.Equal(t, 1, bank.count("/mutual-funds/trades"))
}

func TestShell_BootstrapRestoresSession(t *testing.T) {
	bank := &fakeBank{counts: map[string]int{}, admin: true}
	srv := httptest.NewServer(bank.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.DiscardHandler)
	client := api.New(srv.URL, logger)
	store := session.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Save("tok-shell"))

	shell := New(client, session.NewManager(client, store, logger), NewNotices(newFakeClock(), 0))
	shell.Bootstrap(context.Background())

	assert.True(t, shell.Authenticated())
	assert.Equal(t, 1, bank.count("/accounts/"), "bootstrap mounts the active tab")
}
