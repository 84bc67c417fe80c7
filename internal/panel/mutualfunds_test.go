// ABOUTME: Tests for the mutual funds panel's concurrent three-way load
// ABOUTME: Covers all-or-nothing commit, single error notice, and trades

package panel

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankexample/bankdesk/internal/model"
)

func fundsMux(failTrades bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mutual-funds/", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, map[string]any{"items": []model.Fund{
			{ID: 1, Name: "Index Growth", Symbol: "IDXG", NAV: 52.4, IsActive: true},
		}})
	})
	mux.HandleFunc("GET /mutual-funds/holdings", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, map[string]any{"items": []model.Holding{
			{ID: 1, FundID: 1, Units: 10, AverageNAV: 50},
		}})
	})
	mux.HandleFunc("GET /mutual-funds/trades", func(w http.ResponseWriter, r *http.Request) {
		if failTrades {
			writeError(w, http.StatusInternalServerError, "Trade history unavailable")
			return
		}
		writeSuccess(w, map[string]any{"items": []model.Trade{
			{ID: 1, FundID: 1, TradeType: model.TradeBuy, Units: 10, Amount: 500},
		}})
	})
	return mux
}

func TestMutualFundsPanel_LoadCommitsAllThree(t *testing.T) {
	notify := &noticeRecorder{}
	p := NewMutualFundsPanel(newTestClient(t, fundsMux(false)), adminSession(), notify)

	require.NoError(t, p.Load(context.Background()))

	require.Len(t, p.Funds(), 1)
	require.Len(t, p.Holdings(), 1)
	require.Len(t, p.Trades(), 1)
	assert.Equal(t, "IDXG", p.Funds()[0].Symbol)
	assert.Empty(t, notify.errors)
}

func TestMutualFundsPanel_PartialFailureReplacesNothing(t *testing.T) {
	notify := &noticeRecorder{}
	p := NewMutualFundsPanel(newTestClient(t, fundsMux(false)), adminSession(), notify)
	require.NoError(t, p.Load(context.Background()))

	// Rewire the panel to a server where one of the three fetches fails.
	p.api = newTestClient(t, fundsMux(true))

	err := p.Load(context.Background())
	require.Error(t, err)

	// Nothing was replaced, including the collections that succeeded.
	require.Len(t, p.Funds(), 1)
	require.Len(t, p.Holdings(), 1)
	require.Len(t, p.Trades(), 1)
	assert.Len(t, notify.errors, 1, "exactly one error notice for the whole load")
}

func TestMutualFundsPanel_BuyReloadsAndNotices(t *testing.T) {
	mux := fundsMux(false)
	mux.HandleFunc("POST /mutual-funds/buy", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, map[string]any{"trade_id": 17})
	})
	notify := &noticeRecorder{}
	p := NewMutualFundsPanel(newTestClient(t, mux), adminSession(), notify)

	require.NoError(t, p.Buy(context.Background(), 1, 1, 500))

	assert.Equal(t, []string{"Buy trade: 17"}, notify.successes)
	require.Len(t, p.Trades(), 1)
}

func TestMutualFundsPanel_SellFailureKeepsHoldings(t *testing.T) {
	mux := fundsMux(false)
	mux.HandleFunc("POST /mutual-funds/sell", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "Insufficient units")
	})
	notify := &noticeRecorder{}
	p := NewMutualFundsPanel(newTestClient(t, mux), adminSession(), notify)
	require.NoError(t, p.Load(context.Background()))

	err := p.Sell(context.Background(), 1, 1, 100)
	require.Error(t, err)

	assert.Equal(t, float64(10), p.Holdings()[0].Units)
	assert.Equal(t, []string{"Insufficient units"}, notify.errors)
}

func TestMutualFundsPanel_UpdateNAV(t *testing.T) {
	mux := fundsMux(false)
	mux.HandleFunc("PUT /mutual-funds/1", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, map[string]any{"fund_id": 1})
	})
	notify := &noticeRecorder{}
	p := NewMutualFundsPanel(newTestClient(t, mux), adminSession(), notify)

	require.NoError(t, p.UpdateNAV(context.Background(), 1, 55.1))
	assert.Equal(t, []string{"Fund NAV updated"}, notify.successes)
}
