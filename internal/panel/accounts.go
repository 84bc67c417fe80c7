// ABOUTME: Accounts panel: list, create, update, soft-delete, balance enquiry
// ABOUTME: Balances are authoritative only on the server, never computed here

package panel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// AccountsPanel owns the accounts collection.
type AccountsPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	accounts []model.Account
}

// NewAccountsPanel creates the panel.
func NewAccountsPanel(client *api.Client, sess Session, notify Notifier) *AccountsPanel {
	return &AccountsPanel{api: client, session: sess, notify: notify}
}

// Accounts returns the current collection in server order.
func (p *AccountsPanel) Accounts() []model.Account {
	return p.accounts
}

// Load replaces the collection wholesale.
func (p *AccountsPanel) Load(ctx context.Context) error {
	env, err := p.api.Request(ctx, "/accounts/", api.RequestOptions{Credential: p.session.Credential()})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}
	var data struct {
		Items []model.Account `json:"items"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}
	p.accounts = data.Items
	return nil
}

// AccountCreate is the create-account form.
type AccountCreate struct {
	UserID         int64             `json:"user_id"`
	AccountType    model.AccountType `json:"account_type"`
	InitialDeposit float64           `json:"initial_deposit"`
}

// Create opens a new account for a user.
func (p *AccountsPanel) Create(ctx context.Context, in AccountCreate) error {
	env, err := p.api.Request(ctx, "/accounts/", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    in,
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		AccountID int64 `json:"account_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Account created: %d", data.AccountID)
	return p.Load(ctx)
}

// Update sends only the fields the operator changed.
func (p *AccountsPanel) Update(ctx context.Context, accountID int64, in AccountUpdate) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/accounts/%d", accountID), api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
		Payload:    BuildAccountUpdate(in),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Account updated")
	return p.Load(ctx)
}

// Delete soft-deletes an account server-side; the row remains visible
// after reload with its flags updated.
func (p *AccountsPanel) Delete(ctx context.Context, accountID int64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/accounts/%d", accountID), api.RequestOptions{
		Method:     http.MethodDelete,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Account soft deleted")
	return p.Load(ctx)
}

// Balance fetches the server-side balance for a single account. It does
// not touch the collection.
func (p *AccountsPanel) Balance(ctx context.Context, accountID int64) (float64, error) {
	env, err := p.api.Request(ctx, fmt.Sprintf("/accounts/%d/balance", accountID), api.RequestOptions{
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return 0, err
	}

	var data struct {
		Balance struct {
			AccountID int64   `json:"account_id"`
			Balance   float64 `json:"balance"`
		} `json:"balance"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return 0, err
	}

	p.notify.Success("Balance fetched")
	return data.Balance.Balance, nil
}
