package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote is a spot-price snapshot for one symbol. It lives for the
// duration of a single call and is persisted only as an activity-log line.
type PriceQuote struct {
	Symbol string
	Price  decimal.Decimal
	Time   time.Time
}

// TickerStats is the 24h ticker payload from the exchange, passed through
// verbatim.
type TickerStats map[string]any

// OptionRow is one strike row of an options-chain table. Numeric fields the
// provider omits stay nil.
type OptionRow struct {
	Strike            float64
	LastPrice         *float64
	Bid               *float64
	Ask               *float64
	Volume            *int64
	OpenInterest      *int64
	ImpliedVolatility *float64
}

// OptionChain is the calls/puts tables for one underlying and expiry.
type OptionChain struct {
	Symbol string
	Expiry time.Time
	Calls  []OptionRow
	Puts   []OptionRow
}

// OptionPremiumRequest carries the caller's raw option lookup parameters.
type OptionPremiumRequest struct {
	Symbol     string
	Strike     float64
	ExpiryDate string
	OptionType string
}

// OptionPremium is the resolved contract. LastPrice, Bid, Ask and
// ImpliedVolatility are nil when the chain row had no value for them; Volume
// and OpenInterest default to zero. MidPrice is set only when both bid and
// ask are present.
type OptionPremium struct {
	Symbol            string
	Strike            float64
	ExpiryDate        string
	OptionType        string
	LastPrice         *float64
	Bid               *float64
	Ask               *float64
	Volume            int64
	OpenInterest      int64
	ImpliedVolatility *float64
	MidPrice          *float64
}

// StatusError reports a non-success HTTP status from the spot-price
// endpoint. Callers convert it into a structured error result instead of
// failing the tool call.
type StatusError struct {
	Symbol     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Failed to fetch price for symbol %s. Status code: %d", e.Symbol, e.StatusCode)
}

// InvalidDateError reports an expiry date that matched neither accepted
// format. Detected before any network call.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("Invalid date format: %s. Use 'YYYY-MM-DD' or 'MM/DD/YYYY'", e.Input)
}

// ChainError wraps any failure while retrieving an options chain.
type ChainError struct {
	Cause error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("Could not fetch options chain: %v. Make sure the expiry date is valid and the symbol has options available.", e.Cause)
}

func (e *ChainError) Unwrap() error { return e.Cause }

// StrikeNotFoundError reports that no chain row matched the requested strike
// within tolerance. NearbyStrikes holds at most the five closest strikes,
// ordered by ascending distance.
type StrikeNotFoundError struct {
	RequestedStrike float64
	NearbyStrikes   []float64
	ExpiryDate      string
	OptionType      string
}

func (e *StrikeNotFoundError) Error() string {
	return fmt.Sprintf("No option found with strike %g", e.RequestedStrike)
}
