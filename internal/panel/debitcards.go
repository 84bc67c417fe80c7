// ABOUTME: Debit cards panel: issue, OTP activation, enable/disable
// ABOUTME: The creation OTP is surfaced once in the success notice

package panel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// DebitCardsPanel owns the debit cards collection.
type DebitCardsPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	cards []model.DebitCard
}

// NewDebitCardsPanel creates the panel.
func NewDebitCardsPanel(client *api.Client, sess Session, notify Notifier) *DebitCardsPanel {
	return &DebitCardsPanel{api: client, session: sess, notify: notify}
}

// Cards returns the current collection in server order.
func (p *DebitCardsPanel) Cards() []model.DebitCard {
	return p.cards
}

// Load replaces the collection wholesale.
func (p *DebitCardsPanel) Load(ctx context.Context) error {
	env, err := p.api.Request(ctx, "/debit-cards/", api.RequestOptions{Credential: p.session.Credential()})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}
	var data struct {
		Items []model.DebitCard `json:"items"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}
	p.cards = data.Items
	return nil
}

// Create issues a card for an account. The server returns the card id and
// a one-time OTP; the OTP appears only in the success notice.
func (p *DebitCardsPanel) Create(ctx context.Context, accountID int64) error {
	env, err := p.api.Request(ctx, "/debit-cards/", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"account_id": accountID},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		CardID int64  `json:"card_id"`
		OTP    string `json:"otp"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Card %d created. OTP: %s", data.CardID, data.OTP)
	return p.Load(ctx)
}

// Activate redeems the creation OTP. A wrong OTP fails server-side and
// leaves the card's status unchanged.
func (p *DebitCardsPanel) Activate(ctx context.Context, cardID int64, otp string) error {
	_, err := p.api.Request(ctx, "/debit-cards/activate", api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"card_id": cardID, "otp": otp},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Card activated")
	return p.Load(ctx)
}

// SetStatus enables or disables a card.
func (p *DebitCardsPanel) SetStatus(ctx context.Context, cardID int64, status model.CardStatus) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/debit-cards/%d/status", cardID), api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"status": status},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Card status updated")
	return p.Load(ctx)
}

// Delete disables a card; the row stays visible after reload.
func (p *DebitCardsPanel) Delete(ctx context.Context, cardID int64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/debit-cards/%d", cardID), api.RequestOptions{
		Method:     http.MethodDelete,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Card disabled")
	return p.Load(ctx)
}
