// ABOUTME: Deposits panel: open, cancel (with penalty), and delete term deposits
// ABOUTME: Penalty computation is server-side; the notice echoes the result

package panel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// DepositsPanel owns the deposits collection.
type DepositsPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	deposits []model.Deposit
}

// NewDepositsPanel creates the panel.
func NewDepositsPanel(client *api.Client, sess Session, notify Notifier) *DepositsPanel {
	return &DepositsPanel{api: client, session: sess, notify: notify}
}

// Deposits returns the current collection in server order.
func (p *DepositsPanel) Deposits() []model.Deposit {
	return p.deposits
}

// Load replaces the collection wholesale.
func (p *DepositsPanel) Load(ctx context.Context) error {
	env, err := p.api.Request(ctx, "/deposits/", api.RequestOptions{Credential: p.session.Credential()})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}
	var data struct {
		Items []model.Deposit `json:"items"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}
	p.deposits = data.Items
	return nil
}

// DepositCreate is the open-deposit form.
type DepositCreate struct {
	AccountID    int64             `json:"account_id"`
	DepositType  model.DepositType `json:"deposit_type"`
	TermMonths   int               `json:"term_months"`
	Amount       float64           `json:"amount"`
	InterestRate float64           `json:"interest_rate"`
}

// Create opens a term deposit.
func (p *DepositsPanel) Create(ctx context.Context, in DepositCreate) error {
	env, err := p.api.Request(ctx, "/deposits/", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    in,
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		DepositID int64 `json:"deposit_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Deposit created: %d", data.DepositID)
	return p.Load(ctx)
}

// Cancel cancels a deposit before maturity. The server computes the
// penalty and returns it as a decimal string.
func (p *DepositsPanel) Cancel(ctx context.Context, depositID int64) error {
	env, err := p.api.Request(ctx, fmt.Sprintf("/deposits/%d/cancel", depositID), api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		DepositID int64  `json:"deposit_id"`
		Penalty   string `json:"penalty"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Deposit cancelled, penalty %s", data.Penalty)
	return p.Load(ctx)
}

// Delete removes a deposit record.
func (p *DepositsPanel) Delete(ctx context.Context, depositID int64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/deposits/%d", depositID), api.RequestOptions{
		Method:     http.MethodDelete,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Deposit removed")
	return p.Load(ctx)
}
