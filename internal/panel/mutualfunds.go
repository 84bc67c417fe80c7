// ABOUTME: Mutual funds panel: catalog, holdings, trades, buy/sell, admin NAV
// ABOUTME: The three collections load concurrently and commit all-or-nothing

package panel

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/bankexample/bankdesk/internal/api"
	"github.com/bankexample/bankdesk/internal/model"
)

// MutualFundsPanel owns three independent collections: the fund catalog,
// the operator's holdings, and the trade history.
type MutualFundsPanel struct {
	api     *api.Client
	session Session
	notify  Notifier

	funds    []model.Fund
	holdings []model.Holding
	trades   []model.Trade
}

// NewMutualFundsPanel creates the panel.
func NewMutualFundsPanel(client *api.Client, sess Session, notify Notifier) *MutualFundsPanel {
	return &MutualFundsPanel{api: client, session: sess, notify: notify}
}

// Funds returns the fund catalog in server order.
func (p *MutualFundsPanel) Funds() []model.Fund {
	return p.funds
}

// Holdings returns the holdings collection in server order.
func (p *MutualFundsPanel) Holdings() []model.Holding {
	return p.holdings
}

// Trades returns the trade history in server order.
func (p *MutualFundsPanel) Trades() []model.Trade {
	return p.trades
}

// Load fans out the three collection fetches concurrently and waits for
// all of them to settle. If any fails, nothing is replaced: the previous
// state stays visible and the failure is surfaced once.
func (p *MutualFundsPanel) Load(ctx context.Context) error {
	var (
		funds    []model.Fund
		holdings []model.Holding
		trades   []model.Trade
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		funds, err = fetchItems[model.Fund](gctx, p, "/mutual-funds/")
		return err
	})
	g.Go(func() error {
		var err error
		holdings, err = fetchItems[model.Holding](gctx, p, "/mutual-funds/holdings")
		return err
	})
	g.Go(func() error {
		var err error
		trades, err = fetchItems[model.Trade](gctx, p, "/mutual-funds/trades")
		return err
	})

	if err := g.Wait(); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.funds = funds
	p.holdings = holdings
	p.trades = trades
	return nil
}

// fetchItems decodes one {items: [...]} collection envelope.
func fetchItems[T any](ctx context.Context, p *MutualFundsPanel, path string) ([]T, error) {
	env, err := p.api.Request(ctx, path, api.RequestOptions{Credential: p.session.Credential()})
	if err != nil {
		return nil, err
	}
	var data struct {
		Items []T `json:"items"`
	}
	if err := env.DecodeData(&data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

// CreateFund registers a new fund in the catalog (admin action).
func (p *MutualFundsPanel) CreateFund(ctx context.Context, name, symbol string, nav float64) error {
	env, err := p.api.Request(ctx, "/mutual-funds/", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"name": name, "symbol": symbol, "nav": nav},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		FundID int64 `json:"fund_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Fund created: %d", data.FundID)
	return p.Load(ctx)
}

// UpdateNAV sets a fund's NAV (admin action, independent of trades).
func (p *MutualFundsPanel) UpdateNAV(ctx context.Context, fundID int64, nav float64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/mutual-funds/%d", fundID), api.RequestOptions{
		Method:     http.MethodPut,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"nav": nav},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Fund NAV updated")
	return p.Load(ctx)
}

// DeleteFund deactivates a fund; it stays visible in the catalog.
func (p *MutualFundsPanel) DeleteFund(ctx context.Context, fundID int64) error {
	_, err := p.api.Request(ctx, fmt.Sprintf("/mutual-funds/%d", fundID), api.RequestOptions{
		Method:     http.MethodDelete,
		Credential: p.session.Credential(),
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Fund deactivated")
	return p.Load(ctx)
}

// Buy purchases fund units for an amount.
func (p *MutualFundsPanel) Buy(ctx context.Context, accountID, fundID int64, amount float64) error {
	env, err := p.api.Request(ctx, "/mutual-funds/buy", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"account_id": accountID, "fund_id": fundID, "amount": amount},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		TradeID int64 `json:"trade_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Buy trade: %d", data.TradeID)
	return p.Load(ctx)
}

// Sell redeems fund units.
func (p *MutualFundsPanel) Sell(ctx context.Context, accountID, fundID int64, units float64) error {
	env, err := p.api.Request(ctx, "/mutual-funds/sell", api.RequestOptions{
		Method:     http.MethodPost,
		Credential: p.session.Credential(),
		Payload:    map[string]any{"account_id": accountID, "fund_id": fundID, "units": units},
	})
	if err != nil {
		p.notify.Error("%s", err)
		return err
	}

	var data struct {
		TradeID int64 `json:"trade_id"`
	}
	if err := env.DecodeData(&data); err != nil {
		p.notify.Error("%s", err)
		return err
	}

	p.notify.Success("Sell trade: %d", data.TradeID)
	return p.Load(ctx)
}
