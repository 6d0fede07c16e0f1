// Package stockpilot - errors.go
// Defines agent-level errors.

package stockpilot

import (
	"errors"

	"github.com/stockpilot-ai/stockpilot/marketdata"
)

var (
	// ErrDataUnavailable mirrors the marketdata sentinel so callers can
	// match it without importing marketdata.
	ErrDataUnavailable = marketdata.ErrDataUnavailable

	// ErrIterationLimit is returned when the reasoning loop does not
	// converge within the configured step budget.
	ErrIterationLimit = errors.New("agent exceeded maximum reasoning steps")

	// ErrMalformedOutput is returned when the model output can not be
	// turned into a tool call or a final answer twice in one run.
	ErrMalformedOutput = errors.New("agent output could not be parsed")

	// ErrMissingAPIKey is returned at construction time when no LLM
	// credentials are configured.
	ErrMissingAPIKey = errors.New("LLM API key is not configured")

	ErrSessionClosed = errors.New("session has been closed")
)
