package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coinquote/internal/domain"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// BinanceConfig holds the base URLs of the two Binance-style data hosts. The
// spot-price and 24h-stats endpoints live on separate hosts upstream.
type BinanceConfig struct {
	PriceBaseURL string
	StatsBaseURL string
}

type BinanceClient struct {
	priceBaseURL string
	statsBaseURL string
	client       *http.Client
	tracer       trace.Tracer
}

func NewBinanceClient(tracer trace.Tracer, cfg BinanceConfig) *BinanceClient {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("coinquote")
	}
	return &BinanceClient{
		priceBaseURL: strings.TrimRight(cfg.PriceBaseURL, "/"),
		statsBaseURL: strings.TrimRight(cfg.StatsBaseURL, "/"),
		client:       &http.Client{},
		tracer:       tracer,
	}
}

// SpotPrice fetches the current price for a symbol. A non-success HTTP
// status comes back as *domain.StatusError so the caller can report it as a
// structured result.
func (c *BinanceClient) SpotPrice(ctx context.Context, symbol string) (domain.PriceQuote, error) {
	ctx, span := c.tracer.Start(ctx, "binance.spot-price")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.priceBaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.PriceQuote{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("fetch spot price for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		return domain.PriceQuote{}, &domain.StatusError{Symbol: symbol, StatusCode: resp.StatusCode}
	}

	var payload struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("decode spot price for %s: %w", symbol, err)
	}
	price, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("parse price %q for %s: %w", payload.Price, symbol, err)
	}

	return domain.PriceQuote{Symbol: symbol, Price: price, Time: time.Now()}, nil
}

// Ticker24h fetches rolling 24-hour statistics and returns the decoded body
// unmodified. Failures propagate as plain errors; this operation does not
// synthesize structured error results.
func (c *BinanceClient) Ticker24h(ctx context.Context, symbol string) (domain.TickerStats, error) {
	ctx, span := c.tracer.Start(ctx, "binance.ticker-24h")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	endpoint := fmt.Sprintf("%s/api/v3/ticker/24hr?symbol=%s", c.statsBaseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch 24h stats for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		return nil, fmt.Errorf("24h stats request for %s failed with status %d", symbol, resp.StatusCode)
	}

	var stats domain.TickerStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("decode 24h stats for %s: %w", symbol, err)
	}
	return stats, nil
}
