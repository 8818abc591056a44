package mcp

import (
	"context"
	"errors"
	"fmt"

	"coinquote/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(server *mcp.Server, market MarketReader, options OptionReader) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_price",
		Description: "Get the current price of a crypto asset from Binance",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in getPriceInput) (*mcp.CallToolResult, getPriceOutput, error) {
		if market == nil {
			return nil, getPriceOutput{}, fmt.Errorf("price service unavailable")
		}
		msg, err := market.GetPrice(ctx, in.Symbol)
		if err != nil {
			// A bad upstream status is reported as a structured result;
			// everything else fails the call.
			var statusErr *domain.StatusError
			if errors.As(err, &statusErr) {
				return nil, getPriceOutput{Error: statusErr.Error()}, nil
			}
			return nil, getPriceOutput{}, err
		}
		return nil, getPriceOutput{Message: msg}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_24h_stats",
		Description: "Get 24-hour rolling ticker statistics for a crypto asset from Binance",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in get24hStatsInput) (*mcp.CallToolResult, domain.TickerStats, error) {
		if market == nil {
			return nil, nil, fmt.Errorf("price service unavailable")
		}
		stats, err := market.Get24hStats(ctx, in.Symbol)
		if err != nil {
			return nil, nil, err
		}
		return nil, stats, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_option_premium",
		Description: "Get the current premium (bid, ask, last price) for a stock option",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in getOptionPremiumInput) (*mcp.CallToolResult, getOptionPremiumOutput, error) {
		if options == nil {
			return nil, getOptionPremiumOutput{}, fmt.Errorf("option service unavailable")
		}
		premium, err := options.GetPremium(ctx, domain.OptionPremiumRequest{
			Symbol:     in.Symbol,
			Strike:     in.Strike,
			ExpiryDate: in.ExpiryDate,
			OptionType: in.OptionType,
		})
		if err != nil {
			// Every resolver failure surfaces as a structured result,
			// never as a failed call.
			return nil, premiumErrorOutput(err), nil
		}
		return nil, premiumOutput(premium), nil
	})
}
