// Package marketdata fetches price quotes from external market-data providers.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDataUnavailable is returned when a provider has no price for a symbol,
// whether the symbol is unknown, the instrument is delisted, or the provider
// itself is unreachable. Callers decide how to surface it.
var ErrDataUnavailable = errors.New("market data unavailable")

// Quote is the normalized shape returned by all providers. A quote is built
// fresh on every fetch and carries the latest available close.
type Quote struct {
	Symbol   string
	Price    float64
	Currency string
	Time     time.Time
}

// Provider fetches the most recent quote for a single symbol. One fetch is
// one outbound request; providers do not cache or retry.
type Provider interface {
	Name() string
	Latest(ctx context.Context, symbol string) (Quote, error)
}

func unavailable(symbol string, reason string) error {
	return fmt.Errorf("%s: %s: %w", symbol, reason, ErrDataUnavailable)
}
