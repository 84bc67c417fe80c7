// ABOUTME: Transactions panel: filtered history, transfers, admin edit/delete
// ABOUTME: Only populated filter fields are sent; the server defines "no filter"

package panel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// TransactionsPanel owns the transactions collection and the operator's
// current history filter.
type TransactionsPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	filter       TransactionFilter
	transactions []model.Transaction
}

// NewTransactionsPanel creates the panel.
func NewTransactionsPanel(client *api.Client, sess Session, notify Notifier) *TransactionsPanel {
	return &TransactionsPanel{api: client, session: sess, notify: notify}
}

// Transactions returns the current collection in server order.
func (p *TransactionsPanel) Transactions() []model.Transaction {
	return p.transactions
}

// SetFilter replaces the history filter. It takes effect on the next Load.
func (p *TransactionsPanel) SetFilter(f TransactionFilter) {
	p.filter = f
}

// Filter returns the current history filter.
func (p *TransactionsPanel) Filter() TransactionFilter {
	return p.filter
}

// Load replaces the collection wholesale, applying the current filter.
func (p *TransactionsPanel) Load(ctx context.Context) error {
	env, err := p.api.Request(ctx, "/transactions/"+BuildTransactionQuery(p.filter), api.RequestOptions{
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}
	var data struct {
		Items []model.Transaction `json:"items"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}
	p.transactions = data.Items
	return nil
}

// Transfer is the fund-transfer form. ToAccountID is nil for inter-bank
// transfers, which carry the external bank name instead.
type Transfer struct {
	FromAccountID    int64   `json:"from_account_id"`
	ToAccountID      *int64  `json:"to_account_id"`
	ExternalBankName *string `json:"external_bank_name"`
	Amount           float64 `json:"amount"`
	Description      string  `json:"description"`
}

// SubmitTransfer posts a transfer. All semantic validation (balance,
// account state) happens server-side.
func (p *TransactionsPanel) SubmitTransfer(ctx context.Context, in Transfer) error {
	env, err := p.api.Request(ctx, "/transactions/", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    in,
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		TransactionID int64 `json:"transaction_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Transfer complete: %d", data.TransactionID)
	return p.Load(ctx)
}

// Update edits a transaction's description and, for administrators, its
// status.
func (p *TransactionsPanel) Update(ctx context.Context, transactionID int64, in TransactionUpdate) error {
	body := BuildTransactionUpdate(p.session.Operator().IsAdmin, in)

	_, err := p.api.Request(ctx, fmt.Sprintf("/transactions/%d", transactionID), api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
		Payload:    body,
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Transaction updated")
	return p.Load(ctx)
}

// Delete removes a transaction record (admin endpoint).
func (p *TransactionsPanel) Delete(ctx context.Context, transactionID int64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/transactions/%d", transactionID), api.RequestOptions{
		Method:     http.MethodDelete,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Transaction deleted")
	return p.Load(ctx)
}
