package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"coinquote/internal/domain"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Strikes within this absolute distance of the request count as a match.
var strikeTolerance = decimal.RequireFromString("0.01")

const maxNearbyStrikes = 5

// OptionChainProvider retrieves the calls/puts tables for an underlying and
// expiry from the market-data vendor.
type OptionChainProvider interface {
	OptionChain(ctx context.Context, symbol string, expiry time.Time) (*domain.OptionChain, error)
}

type OptionService struct {
	tracer trace.Tracer
	chains OptionChainProvider
}

func NewOptionService(tracer trace.Tracer, chains OptionChainProvider) *OptionService {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("coinquote")
	}
	return &OptionService{tracer: tracer, chains: chains}
}

// GetPremium resolves a single option contract. Failures come back as typed
// errors so the transport layer can shape each into its structured result:
// *domain.InvalidDateError before any network call, *domain.ChainError for
// any provider failure, *domain.StrikeNotFoundError with the nearest strikes
// when no row matches within tolerance.
func (s *OptionService) GetPremium(ctx context.Context, req domain.OptionPremiumRequest) (*domain.OptionPremium, error) {
	ctx, span := s.tracer.Start(ctx, "option-service.get-premium")
	defer span.End()

	expiry, err := parseExpiry(req.ExpiryDate)
	if err != nil {
		return nil, &domain.InvalidDateError{Input: req.ExpiryDate}
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	chain, err := s.chains.OptionChain(ctx, symbol, expiry)
	if err != nil {
		return nil, &domain.ChainError{Cause: err}
	}

	// Anything other than "call" selects the puts table.
	optionType := strings.ToLower(strings.TrimSpace(req.OptionType))
	if optionType == "" {
		optionType = "call"
	}
	rows := chain.Puts
	if optionType == "call" {
		rows = chain.Calls
	}

	expiryISO := expiry.Format("2006-01-02")
	target := decimal.NewFromFloat(req.Strike)

	row, ok := matchStrike(rows, target)
	if !ok {
		return nil, &domain.StrikeNotFoundError{
			RequestedStrike: req.Strike,
			NearbyStrikes:   nearestStrikes(rows, target),
			ExpiryDate:      expiryISO,
			OptionType:      optionType,
		}
	}

	premium := &domain.OptionPremium{
		Symbol:            symbol,
		Strike:            row.Strike,
		ExpiryDate:        expiryISO,
		OptionType:        optionType,
		LastPrice:         row.LastPrice,
		Bid:               row.Bid,
		Ask:               row.Ask,
		ImpliedVolatility: row.ImpliedVolatility,
	}
	if row.Volume != nil {
		premium.Volume = *row.Volume
	}
	if row.OpenInterest != nil {
		premium.OpenInterest = *row.OpenInterest
	}
	if row.Bid != nil && row.Ask != nil {
		mid, _ := decimal.NewFromFloat(*row.Bid).Add(decimal.NewFromFloat(*row.Ask)).Div(decimal.NewFromInt(2)).Float64()
		premium.MidPrice = &mid
	}
	return premium, nil
}

// parseExpiry accepts MM/DD/YYYY when the input contains a slash, otherwise
// YYYY-MM-DD.
func parseExpiry(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layout := "2006-01-02"
	if strings.Contains(raw, "/") {
		layout = "01/02/2006"
	}
	return time.Parse(layout, raw)
}

// matchStrike returns the first row within tolerance, in table order.
func matchStrike(rows []domain.OptionRow, target decimal.Decimal) (domain.OptionRow, bool) {
	for _, row := range rows {
		if decimal.NewFromFloat(row.Strike).Sub(target).Abs().LessThan(strikeTolerance) {
			return row, true
		}
	}
	return domain.OptionRow{}, false
}

// nearestStrikes returns up to five strikes ordered by ascending distance to
// the target; ties keep table order.
func nearestStrikes(rows []domain.OptionRow, target decimal.Decimal) []float64 {
	strikes := make([]float64, len(rows))
	for i, row := range rows {
		strikes[i] = row.Strike
	}
	sort.SliceStable(strikes, func(i, j int) bool {
		di := decimal.NewFromFloat(strikes[i]).Sub(target).Abs()
		dj := decimal.NewFromFloat(strikes[j]).Sub(target).Abs()
		return di.LessThan(dj)
	})
	if len(strikes) > maxNearbyStrikes {
		strikes = strikes[:maxNearbyStrikes]
	}
	return strikes
}
