package stockpilot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	"github.com/stockpilot-ai/stockpilot/marketdata"
)

// StockPriceToolName is the name the reasoning model selects the tool by.
const StockPriceToolName = "get_stock_price"

type stockPriceArgs struct {
	Ticker string `json:"ticker" jsonschema:"description=Ticker symbol of the instrument (e.g. AAPL)"`
}

// StockPriceTool exposes a marketdata.Provider to the reasoning model. It is
// a pure registration record: no state beyond the provider reference.
type StockPriceTool struct {
	provider marketdata.Provider
}

func NewStockPriceTool(provider marketdata.Provider) *StockPriceTool {
	return &StockPriceTool{provider: provider}
}

func (t *StockPriceTool) Name() string {
	return StockPriceToolName
}

func (t *StockPriceTool) Description() string {
	return "Get the current stock price for a given ticker symbol (e.g., AAPL, GOOGL)."
}

func (t *StockPriceTool) StatusMessage() string {
	return "Looking up the latest price"
}

func (t *StockPriceTool) OpenAI() []openai.ChatCompletionToolParam {
	parameters := openai.FunctionParameters{}
	raw, _ := json.Marshal(GenerateSchema[stockPriceArgs]())
	_ = json.Unmarshal(raw, &parameters)

	return []openai.ChatCompletionToolParam{
		{
			Type: openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(openai.FunctionDefinitionParam{
				Name:        openai.F(t.Name()),
				Description: openai.F(t.Description()),
				Parameters:  openai.F(parameters),
			}),
		},
	}
}

// Execute fetches the latest close for the requested ticker and formats it
// as a human-readable observation. Tickers are case-insensitive and shown
// uppercased. A provider failure wraps marketdata.ErrDataUnavailable so the
// agent can surface it as an observation rather than a hard failure.
func (t *StockPriceTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	ticker, _ := args["ticker"].(string)
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", fmt.Errorf("ticker must be a non-empty string")
	}

	quote, err := t.provider.Latest(ctx, ticker)
	if err != nil {
		return "", fmt.Errorf("fetch price for %s: %w", ticker, err)
	}
	return fmt.Sprintf("The current price of %s is $%.2f", ticker, quote.Price), nil
}
