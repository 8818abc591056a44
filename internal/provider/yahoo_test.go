package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const chainEpoch = int64(1762473600) // 2025-11-07 UTC

func chainBody(expirationDate int64) string {
	return fmt.Sprintf(`{
		"optionChain": {
			"result": [{
				"underlyingSymbol": "PLTR",
				"expirationDates": [%d],
				"options": [{
					"expirationDate": %d,
					"calls": [
						{"strike": 95.0, "lastPrice": 9.1, "bid": 9.0, "ask": 9.2, "volume": 120, "openInterest": 340, "impliedVolatility": 0.61},
						{"strike": 100.0, "lastPrice": 5.4, "bid": 5.3, "ask": 5.5, "volume": 410, "openInterest": 990, "impliedVolatility": 0.58},
						{"strike": 105.0, "bid": 2.9, "ask": 3.1}
					],
					"puts": [
						{"strike": 100.0, "lastPrice": 4.8, "bid": 4.7, "ask": 4.9, "volume": 210, "openInterest": 500, "impliedVolatility": 0.6}
					]
				}]
			}],
			"error": null
		}
	}`, expirationDate, expirationDate)
}

func TestOptionChainDecodesCallsAndPuts(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(chainBody(chainEpoch)))
	}))
	defer srv.Close()

	client := NewYahooClient(nil, srv.URL)
	expiry := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	chain, err := client.OptionChain(context.Background(), "PLTR", expiry)
	if err != nil {
		t.Fatalf("option chain failed: %v", err)
	}

	if gotPath != "/v7/finance/options/PLTR" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotQuery != fmt.Sprintf("date=%d", chainEpoch) {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if len(chain.Calls) != 3 || len(chain.Puts) != 1 {
		t.Fatalf("unexpected table sizes: %d calls, %d puts", len(chain.Calls), len(chain.Puts))
	}

	row := chain.Calls[1]
	if row.Strike != 100.0 {
		t.Fatalf("unexpected strike: %v", row.Strike)
	}
	if row.LastPrice == nil || *row.LastPrice != 5.4 {
		t.Fatalf("unexpected last price: %v", row.LastPrice)
	}
	if row.Volume == nil || *row.Volume != 410 {
		t.Fatalf("unexpected volume: %v", row.Volume)
	}

	sparse := chain.Calls[2]
	if sparse.LastPrice != nil || sparse.Volume != nil || sparse.ImpliedVolatility != nil {
		t.Fatalf("expected absent fields to stay nil: %+v", sparse)
	}
	if sparse.Bid == nil || sparse.Ask == nil {
		t.Fatalf("expected bid/ask present: %+v", sparse)
	}
}

func TestOptionChainRejectsExpiryMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Default chain for a different expiry than requested.
		w.Write([]byte(chainBody(chainEpoch + 7*24*3600)))
	}))
	defer srv.Close()

	client := NewYahooClient(nil, srv.URL)
	expiry := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	_, err := client.OptionChain(context.Background(), "PLTR", expiry)
	if err == nil {
		t.Fatal("expected expiry mismatch error")
	}
	if !strings.Contains(err.Error(), "2025-11-07") {
		t.Fatalf("expected requested expiry in message, got %v", err)
	}
}

func TestOptionChainUnknownSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewYahooClient(nil, srv.URL)
	_, err := client.OptionChain(context.Background(), "FAKE", time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC))
	if err == nil || !strings.Contains(err.Error(), "FAKE") {
		t.Fatalf("expected symbol in error, got %v", err)
	}
}

func TestOptionChainProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"optionChain":{"result":[],"error":{"code":"Not Found","description":"No fundamentals data found"}}}`))
	}))
	defer srv.Close()

	client := NewYahooClient(nil, srv.URL)
	_, err := client.OptionChain(context.Background(), "FAKE", time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC))
	if err == nil || !strings.Contains(err.Error(), "No fundamentals data found") {
		t.Fatalf("expected provider error description, got %v", err)
	}
}
