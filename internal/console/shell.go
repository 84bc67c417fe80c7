// ABOUTME: Console shell: session gating, active tab, mount-once panel loads
// ABOUTME: Composes the seven resource panels over one session and notice slot

package console

import (
	"context"
	"fmt"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/panel"
	"github.com/bankexample/bankdesk/internal/session"
)

// Tab identifies one resource panel.
type Tab string

const (
	TabUsers        Tab = "users"
	TabAccounts     Tab = "accounts"
	TabTransactions Tab = "transactions"
	TabDebitCards   Tab = "debit_cards"
	TabMutualFunds  Tab = "mutual_funds"
	TabDeposits     Tab = "deposits"
	TabAudit        Tab = "audit"
)

// Tabs lists the panels in display order.
var Tabs = []Tab{TabUsers, TabAccounts, TabTransactions, TabDebitCards, TabMutualFunds, TabDeposits, TabAudit}

// Shell is the top-level composition: the session, the active panel
// selection, and the transient notice slot. The workspace renders only
// while the session is authenticated.
type Shell struct {
	session *session.Manager
	notices *Notices

	users        *panel.UsersPanel
	accounts     *panel.AccountsPanel
	transactions *panel.TransactionsPanel
	debitCards   *panel.DebitCardsPanel
	mutualFunds  *panel.MutualFundsPanel
	deposits     *panel.DepositsPanel
	auditLogs    *panel.AuditLogsPanel

	active  Tab
	mounted map[Tab]bool
}

// New wires the seven panels over one gateway, session, and notice slot.
// The accounts tab is selected initially, as in the original console.
func New(client *api.Client, sess *session.Manager, notices *Notices) *Shell {
	return &Shell{
		session:      sess,
		notices:      notices,
		users:        panel.NewUsersPanel(client, sess, notices),
		accounts:     panel.NewAccountsPanel(client, sess, notices),
		transactions: panel.NewTransactionsPanel(client, sess, notices),
		debitCards:   panel.NewDebitCardsPanel(client, sess, notices),
		mutualFunds:  panel.NewMutualFundsPanel(client, sess, notices),
		deposits:     panel.NewDepositsPanel(client, sess, notices),
		auditLogs:    panel.NewAuditLogsPanel(client, sess, notices),
		active:       TabAccounts,
		mounted:      map[Tab]bool{},
	}
}

// Session returns the underlying session manager.
func (s *Shell) Session() *session.Manager { return s.session }

// Notices returns the shared notice slot.
func (s *Shell) Notices() *Notices { return s.notices }

// Panel accessors.
func (s *Shell) Users() *panel.UsersPanel               { return s.users }
func (s *Shell) Accounts() *panel.AccountsPanel         { return s.accounts }
func (s *Shell) Transactions() *panel.TransactionsPanel { return s.transactions }
func (s *Shell) DebitCards() *panel.DebitCardsPanel     { return s.debitCards }
func (s *Shell) MutualFunds() *panel.MutualFundsPanel   { return s.mutualFunds }
func (s *Shell) Deposits() *panel.DepositsPanel         { return s.deposits }
func (s *Shell) AuditLogs() *panel.AuditLogsPanel       { return s.auditLogs }

// Authenticated reports whether the workspace may render.
func (s *Shell) Authenticated() bool {
	return s.session.State() == session.StateAuthenticated
}

// ActiveTab returns the current panel selection.
func (s *Shell) ActiveTab() Tab {
	return s.active
}

// Bootstrap restores a persisted session. A rejected credential surfaces
// as a notice and leaves the shell on the authentication surface.
func (s *Shell) Bootstrap(ctx context.Context) {
	if err := s.session.Bootstrap(ctx); err != nil {
		s.notices.Error("Authentication failed: %s", err)
		return
	}
	if s.Authenticated() {
		s.mountActive(ctx)
	}
}

// Login authenticates and, on success, mounts the active tab.
func (s *Shell) Login(ctx context.Context, email, password string) error {
	if err := s.session.Login(ctx, email, password); err != nil {
		s.notices.Error("%s", err)
		return err
	}
	s.notices.Success("Logged in")
	s.mountActive(ctx)
	return nil
}

// Logout collapses the shell back to the unauthenticated state. Panels
// unmount, so the next login reloads them fresh.
func (s *Shell) Logout() {
	s.session.Logout()
	s.mounted = map[Tab]bool{}
	s.notices.Success("Logged out")
}

// SwitchTab changes the active selection. The newly selected panel loads
// only on first mount; switching back and forth does not re-fetch.
func (s *Shell) SwitchTab(ctx context.Context, tab Tab) error {
	if !s.Authenticated() {
		return session.ErrNotAuthenticated
	}
	if !validTab(tab) {
		return fmt.Errorf("unknown tab %q", tab)
	}
	s.active = tab
	s.mountActive(ctx)
	return nil
}

// Refresh reloads the active panel unconditionally.
func (s *Shell) Refresh(ctx context.Context) error {
	if !s.Authenticated() {
		return session.ErrNotAuthenticated
	}
	return s.loadTab(ctx, s.active)
}

// mountActive performs the mount-time load for the active tab, once.
func (s *Shell) mountActive(ctx context.Context) {
	if s.mounted[s.active] {
		return
	}
	s.mounted[s.active] = true
	// Load failures are already surfaced through the notice slot; the
	// prior (empty) state stays visible.
	_ = s.loadTab(ctx, s.active)
}

func (s *Shell) loadTab(ctx context.Context, tab Tab) error {
	switch tab {
	case TabUsers:
		return s.users.Load(ctx)
	case TabAccounts:
		return s.accounts.Load(ctx)
	case TabTransactions:
		return s.transactions.Load(ctx)
	case TabDebitCards:
		return s.debitCards.Load(ctx)
	case TabMutualFunds:
		return s.mutualFunds.Load(ctx)
	case TabDeposits:
		return s.deposits.Load(ctx)
	case TabAudit:
		if s.auditLogs.Blocked() {
			// Blocked view: no network call, the renderer shows the
			// blocked-access message instead of a form.
			return nil
		}
		return s.auditLogs.Load(ctx)
	}
	return fmt.Errorf("unknown tab %q", tab)
}

func validTab(tab Tab) bool {
	for _, t := range Tabs {
		if t == tab {
			return true
		}
	}
	return false
}
