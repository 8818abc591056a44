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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// YahooClient fetches options chains from a Yahoo-Finance-style endpoint:
// GET {base}/v7/finance/options/{SYMBOL}?date={expiry-epoch}.
type YahooClient struct {
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
}

func NewYahooClient(tracer trace.Tracer, baseURL string) *YahooClient {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("coinquote")
	}
	return &YahooClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		tracer:  tracer,
	}
}

type chainRow struct {
	Strike            *float64 `json:"strike"`
	LastPrice         *float64 `json:"lastPrice"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	Volume            *int64   `json:"volume"`
	OpenInterest      *int64   `json:"openInterest"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
}

type chainPayload struct {
	OptionChain struct {
		Result []struct {
			UnderlyingSymbol string  `json:"underlyingSymbol"`
			ExpirationDates  []int64 `json:"expirationDates"`
			Options          []struct {
				ExpirationDate int64      `json:"expirationDate"`
				Calls          []chainRow `json:"calls"`
				Puts           []chainRow `json:"puts"`
			} `json:"options"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"optionChain"`
}

// OptionChain retrieves the calls/puts tables for one underlying and expiry.
// The expiry must match a listed expiration exactly; the endpoint would
// otherwise silently answer with its default chain.
func (c *YahooClient) OptionChain(ctx context.Context, symbol string, expiry time.Time) (*domain.OptionChain, error) {
	ctx, span := c.tracer.Start(ctx, "yahoo.option-chain")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol), attribute.String("expiry", expiry.Format("2006-01-02")))

	epoch := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC).Unix()
	endpoint := fmt.Sprintf("%s/v7/finance/options/%s?date=%d", c.baseURL, url.PathEscape(symbol), epoch)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// The endpoint rejects Go's default agent string.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch options chain for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("no options data for symbol %s", symbol)
	}
	if resp.StatusCode != http.StatusOK {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		return nil, fmt.Errorf("options chain request for %s failed with status %d", symbol, resp.StatusCode)
	}

	var payload chainPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode options chain for %s: %w", symbol, err)
	}
	if payload.OptionChain.Error != nil {
		return nil, fmt.Errorf("options chain for %s: %s", symbol, payload.OptionChain.Error.Description)
	}
	if len(payload.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("no options data for symbol %s", symbol)
	}

	result := payload.OptionChain.Result[0]
	if len(result.Options) == 0 || result.Options[0].ExpirationDate != epoch {
		return nil, fmt.Errorf("no options chain for %s expiring %s", symbol, expiry.Format("2006-01-02"))
	}

	chain := result.Options[0]
	return &domain.OptionChain{
		Symbol: symbol,
		Expiry: expiry,
		Calls:  toRows(chain.Calls),
		Puts:   toRows(chain.Puts),
	}, nil
}

func toRows(rows []chainRow) []domain.OptionRow {
	out := make([]domain.OptionRow, 0, len(rows))
	for _, row := range rows {
		if row.Strike == nil {
			continue
		}
		out = append(out, domain.OptionRow{
			Strike:            *row.Strike,
			LastPrice:         row.LastPrice,
			Bid:               row.Bid,
			Ask:               row.Ask,
			Volume:            row.Volume,
			OpenInterest:      row.OpenInterest,
			ImpliedVolatility: row.ImpliedVolatility,
		})
	}
	return out
}
