// ABOUTME: Audit logs panel: admin-only, read-only view of the audit trail
// ABOUTME: Non-admins get a blocked view and no network call is issued

package panel

import (
	"context"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// AuditLogsPanel owns the audit log collection. It is the only panel with
// no non-admin rendering path.
type AuditLogsPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	entries []model.AuditLogEntry
}

// NewAuditLogsPanel creates the panel.
func NewAuditLogsPanel(client *api.Client, sess Session, notify Notifier) *AuditLogsPanel {
	return &AuditLogsPanel{api: client, session: sess, notify: notify}
}

// Entries returns the current collection in server order.
func (p *AuditLogsPanel) Entries() []model.AuditLogEntry {
	return p.entries
}

// Blocked reports whether the current operator may not view audit logs.
func (p *AuditLogsPanel) Blocked() bool {
	return !p.session.Operator().IsAdmin
}

// Load replaces the collection wholesale. For non-admins it returns
// ErrAdminOnly without touching the network.
func (p *AuditLogsPanel) Load(ctx context.Context) error {
	if p.Blocked() {
		return ErrAdminOnly
	}

	env, err := p.api.Request(ctx, "/audit-logs/", api.RequestOptions{Credential: p.session.Credential()})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}
	var data struct {
		Items []model.AuditLogEntry `json:"items"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}
	p.entries = data.Items
	return nil
}
