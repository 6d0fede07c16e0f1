package stockpilot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot-ai/stockpilot"
	"github.com/stockpilot-ai/stockpilot/marketdata"
)

func TestStockPriceToolFormatsQuote(t *testing.T) {
	provider := &fakeProvider{prices: map[string]float64{"AAPL": 226.01}}
	tool := stockpilot.NewStockPriceTool(provider)

	out, err := tool.Execute(context.Background(), map[string]interface{}{"ticker": "AAPL"})
	require.NoError(t, err)
	assert.Equal(t, "The current price of AAPL is $226.01", out)
}

func TestStockPriceToolNormalizesTicker(t *testing.T) {
	provider := &fakeProvider{prices: map[string]float64{"AAPL": 226.019}}
	tool := stockpilot.NewStockPriceTool(provider)

	lower, err := tool.Execute(context.Background(), map[string]interface{}{"ticker": "aapl"})
	require.NoError(t, err)
	upper, err := tool.Execute(context.Background(), map[string]interface{}{"ticker": "AAPL"})
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	// Two-decimal fixed-point formatting.
	assert.Equal(t, "The current price of AAPL is $226.02", lower)
}

func TestStockPriceToolUnknownTicker(t *testing.T) {
	provider := &fakeProvider{prices: map[string]float64{}}
	tool := stockpilot.NewStockPriceTool(provider)

	_, err := tool.Execute(context.Background(), map[string]interface{}{"ticker": "ZZZNOTATICKER"})
	require.Error(t, err)
	assert.ErrorIs(t, err, marketdata.ErrDataUnavailable)
}

func TestStockPriceToolEmptyTicker(t *testing.T) {
	provider := &fakeProvider{prices: map[string]float64{"AAPL": 226.01}}
	tool := stockpilot.NewStockPriceTool(provider)

	_, err := tool.Execute(context.Background(), map[string]interface{}{"ticker": "   "})
	require.Error(t, err)
	assert.NotErrorIs(t, err, marketdata.ErrDataUnavailable)
	assert.Equal(t, 0, provider.calls)
}

func TestStockPriceToolDescriptor(t *testing.T) {
	tool := stockpilot.NewStockPriceTool(&fakeProvider{})

	assert.Equal(t, "get_stock_price", tool.Name())
	assert.Contains(t, tool.Description(), "ticker symbol")

	params := tool.OpenAI()
	require.Len(t, params, 1)
	assert.Equal(t, tool.Name(), params[0].Function.Value.Name.Value)
	assert.Equal(t, tool.Description(), params[0].Function.Value.Description.Value)
}
