package mcp

import (
	"errors"

	"coinquote/internal/domain"
)

type getPriceInput struct {
	Symbol string `json:"symbol" jsonschema:"crypto asset symbol or name (e.g. BTCUSDT, bitcoin)"`
}

type getPriceOutput struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type get24hStatsInput struct {
	Symbol string `json:"symbol" jsonschema:"crypto asset symbol or name (e.g. BTCUSDT, bitcoin)"`
}

type getOptionPremiumInput struct {
	Symbol     string  `json:"symbol" jsonschema:"stock symbol (e.g. PLTR, AAPL, TSLA)"`
	Strike     float64 `json:"strike" jsonschema:"option strike price (e.g. 200.0)"`
	ExpiryDate string  `json:"expiry_date" jsonschema:"expiration date, YYYY-MM-DD or MM/DD/YYYY"`
	OptionType string  `json:"option_type,omitempty" jsonschema:"call or put, defaults to call"`
}

// getOptionPremiumOutput carries either a resolved contract or a structured
// error; the shapes share one type because the tool never fails the call.
type getOptionPremiumOutput struct {
	Symbol            string   `json:"symbol,omitempty"`
	Strike            *float64 `json:"strike,omitempty"`
	ExpiryDate        string   `json:"expiry_date,omitempty"`
	OptionType        string   `json:"option_type,omitempty"`
	LastPrice         *float64 `json:"last_price,omitempty"`
	Bid               *float64 `json:"bid,omitempty"`
	Ask               *float64 `json:"ask,omitempty"`
	Volume            *int64   `json:"volume,omitempty"`
	OpenInterest      *int64   `json:"open_interest,omitempty"`
	ImpliedVolatility *float64 `json:"implied_volatility,omitempty"`
	MidPrice          *float64 `json:"mid_price,omitempty"`

	Error                  string    `json:"error,omitempty"`
	AvailableStrikesNearby []float64 `json:"available_strikes_nearby,omitempty"`
	RequestedStrike        *float64  `json:"requested_strike,omitempty"`
}

func premiumOutput(p *domain.OptionPremium) getOptionPremiumOutput {
	strike := p.Strike
	volume := p.Volume
	openInterest := p.OpenInterest
	return getOptionPremiumOutput{
		Symbol:            p.Symbol,
		Strike:            &strike,
		ExpiryDate:        p.ExpiryDate,
		OptionType:        p.OptionType,
		LastPrice:         p.LastPrice,
		Bid:               p.Bid,
		Ask:               p.Ask,
		Volume:            &volume,
		OpenInterest:      &openInterest,
		ImpliedVolatility: p.ImpliedVolatility,
		MidPrice:          p.MidPrice,
	}
}

// premiumErrorOutput maps the resolver's typed errors onto the structured
// error shapes; anything unrecognized gets the generic wrapper message.
func premiumErrorOutput(err error) getOptionPremiumOutput {
	var notFound *domain.StrikeNotFoundError
	if errors.As(err, &notFound) {
		requested := notFound.RequestedStrike
		return getOptionPremiumOutput{
			Error:                  notFound.Error(),
			AvailableStrikesNearby: notFound.NearbyStrikes,
			RequestedStrike:        &requested,
			ExpiryDate:             notFound.ExpiryDate,
			OptionType:             notFound.OptionType,
		}
	}

	var dateErr *domain.InvalidDateError
	var chainErr *domain.ChainError
	if errors.As(err, &dateErr) || errors.As(err, &chainErr) {
		return getOptionPremiumOutput{Error: err.Error()}
	}

	return getOptionPremiumOutput{Error: "Error fetching option premium: " + err.Error()}
}
