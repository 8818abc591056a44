package service

import (
	"context"
	"errors"
	"fmt"

	"coinquote/internal/domain"
	"coinquote/internal/symbols"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// MarketDataProvider exposes the two Binance-style read endpoints.
type MarketDataProvider interface {
	SpotPrice(ctx context.Context, symbol string) (domain.PriceQuote, error)
	Ticker24h(ctx context.Context, symbol string) (domain.TickerStats, error)
}

// ActivityRecorder appends one audit line per price fetch.
type ActivityRecorder interface {
	Append(line string) error
}

type PriceService struct {
	tracer   trace.Tracer
	market   MarketDataProvider
	activity ActivityRecorder
	symbols  *symbols.Table
}

func NewPriceService(tracer trace.Tracer, market MarketDataProvider, activity ActivityRecorder, table *symbols.Table) *PriceService {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("coinquote")
	}
	return &PriceService{
		tracer:   tracer,
		market:   market,
		activity: activity,
		symbols:  table,
	}
}

// GetPrice resolves a symbol or asset name to its current spot price and
// returns a human-readable message. Both outcomes land in the activity log:
// a success line with price and timestamp, or an error line with the status
// code. A bad HTTP status surfaces as *domain.StatusError; anything else
// (network, decode) propagates as-is.
func (s *PriceService) GetPrice(ctx context.Context, symbolOrName string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "price-service.get-price")
	defer span.End()

	symbol := s.symbols.Normalize(symbolOrName)
	quote, err := s.market.SpotPrice(ctx, symbol)
	if err != nil {
		var statusErr *domain.StatusError
		if errors.As(err, &statusErr) {
			if logErr := s.activity.Append(fmt.Sprintf("Error getting price for %s: %d", symbol, statusErr.StatusCode)); logErr != nil {
				return "", logErr
			}
		}
		return "", err
	}

	price := quote.Price.String()
	line := fmt.Sprintf("Successfully fetched price for %s: %s, Current Time: %s", symbol, price, quote.Time.Format("2006-01-02 15:04:05"))
	if err := s.activity.Append(line); err != nil {
		return "", err
	}
	return fmt.Sprintf("The current price of %s is %s.", symbol, price), nil
}

// Get24hStats returns the exchange's rolling 24-hour statistics verbatim.
// Errors propagate uncaught to the host runtime.
func (s *PriceService) Get24hStats(ctx context.Context, symbolOrName string) (domain.TickerStats, error) {
	ctx, span := s.tracer.Start(ctx, "price-service.get-24h-stats")
	defer span.End()

	symbol := s.symbols.Normalize(symbolOrName)
	return s.market.Ticker24h(ctx, symbol)
}
