package mcp

import (
	"context"
	"encoding/json"
	"time"

	"coinquote/internal/domain"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type stubMarketService struct {
	messages map[string]string
	priceErr error
	stats    domain.TickerStats
	statsErr error

	lastPriceInput string
	lastStatsInput string
}

func (s *stubMarketService) GetPrice(ctx context.Context, symbolOrName string) (string, error) {
	s.lastPriceInput = symbolOrName
	if s.priceErr != nil {
		return "", s.priceErr
	}
	return s.messages[symbolOrName], nil
}

func (s *stubMarketService) Get24hStats(ctx context.Context, symbolOrName string) (domain.TickerStats, error) {
	s.lastStatsInput = symbolOrName
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	return s.stats, nil
}

type stubOptionService struct {
	premium *domain.OptionPremium
	err     error

	lastRequest domain.OptionPremiumRequest
}

func (s *stubOptionService) GetPremium(ctx context.Context, req domain.OptionPremiumRequest) (*domain.OptionPremium, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.premium, nil
}

type stubFileStore struct {
	activityLog string
	symbolMap   string
	logErr      error
}

func (s *stubFileStore) ReadActivityLog() (string, error) {
	if s.logErr != nil {
		return "", s.logErr
	}
	return s.activityLog, nil
}

func (s *stubFileStore) ReadSymbolMap() (string, error) {
	return s.symbolMap, nil
}

func floatPtr(v float64) *float64 { return &v }

func testServer() (*sdkmcp.Server, *stubMarketService, *stubOptionService, *stubFileStore) {
	market := &stubMarketService{
		messages: map[string]string{
			"btc":     "The current price of BTCUSDT is 65000.12.",
			"BTCUSDT": "The current price of BTCUSDT is 65000.12.",
		},
		stats: domain.TickerStats{"symbol": "BTCUSDT", "priceChangePercent": "2.5"},
	}
	options := &stubOptionService{
		premium: &domain.OptionPremium{
			Symbol:     "PLTR",
			Strike:     100,
			ExpiryDate: "2025-11-07",
			OptionType: "call",
			LastPrice:  floatPtr(5.4),
			Bid:        floatPtr(5.3),
			Ask:        floatPtr(5.5),
			Volume:     410,
			MidPrice:   floatPtr(5.4),
		},
	}
	files := &stubFileStore{
		activityLog: "Successfully fetched price for BTCUSDT: 65000.12, Current Time: 2025-11-07 12:30:00\n",
		symbolMap:   "alias,symbol\nbtc,BTCUSDT\n",
	}

	srv := NewServer(nil, market, options, files, ServerConfig{RequestTimeout: time.Second})
	return srv, market, options, files
}

func connectInMemory(ctx context.Context, srv *sdkmcp.Server) (*sdkmcp.ClientSession, context.CancelFunc, error) {
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()
	runCtx, cancel := context.WithCancel(ctx)
	go func() { _ = srv.Run(runCtx, serverTransport) }()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "mcp-test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return session, cancel, nil
}

func decodeStructured(result *sdkmcp.CallToolResult, out any) error {
	raw, err := json.Marshal(result.StructuredContent)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func decodeResourceJSON(result *sdkmcp.ReadResourceResult, out any) error {
	if len(result.Contents) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(result.Contents[0].Text), out)
}
