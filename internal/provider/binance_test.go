package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coinquote/internal/domain"
)

func TestSpotPriceSuccess(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"65000.12"}`))
	}))
	defer srv.Close()

	client := NewBinanceClient(nil, BinanceConfig{PriceBaseURL: srv.URL, StatsBaseURL: srv.URL})
	quote, err := client.SpotPrice(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("spot price failed: %v", err)
	}
	if gotPath != "/api/v3/ticker/price" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotQuery != "symbol=BTCUSDT" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if quote.Symbol != "BTCUSDT" {
		t.Fatalf("unexpected symbol: %s", quote.Symbol)
	}
	if quote.Price.String() != "65000.12" {
		t.Fatalf("unexpected price: %s", quote.Price.String())
	}
	if quote.Time.IsZero() {
		t.Fatal("expected quote timestamp")
	}
}

func TestSpotPriceBadStatusReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewBinanceClient(nil, BinanceConfig{PriceBaseURL: srv.URL, StatsBaseURL: srv.URL})
	_, err := client.SpotPrice(context.Background(), "XYZ")
	var statusErr *domain.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Symbol != "XYZ" || statusErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestSpotPriceMalformedPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"not-a-number"}`))
	}))
	defer srv.Close()

	client := NewBinanceClient(nil, BinanceConfig{PriceBaseURL: srv.URL, StatsBaseURL: srv.URL})
	_, err := client.SpotPrice(context.Background(), "BTCUSDT")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		t.Fatal("parse failure must not be a StatusError")
	}
}

func TestTicker24hPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/24hr" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"symbol":"ETHUSDT","priceChangePercent":"-1.25","highPrice":"3500.00","volume":"12345.6"}`))
	}))
	defer srv.Close()

	client := NewBinanceClient(nil, BinanceConfig{PriceBaseURL: srv.URL, StatsBaseURL: srv.URL})
	stats, err := client.Ticker24h(context.Background(), "ETHUSDT")
	if err != nil {
		t.Fatalf("ticker failed: %v", err)
	}
	if stats["symbol"] != "ETHUSDT" {
		t.Fatalf("unexpected payload: %+v", stats)
	}
	if stats["priceChangePercent"] != "-1.25" {
		t.Fatalf("expected verbatim passthrough, got %+v", stats)
	}
}

func TestTicker24hBadStatusPropagatesPlainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewBinanceClient(nil, BinanceConfig{PriceBaseURL: srv.URL, StatsBaseURL: srv.URL})
	_, err := client.Ticker24h(context.Background(), "XYZ")
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		t.Fatal("24h stats failures must stay plain errors")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected status in message, got %v", err)
	}
}
