package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"coinquote/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResources(server *mcp.Server, market MarketReader, files FileStore) {
	server.AddResource(&mcp.Resource{
		URI:         "file://activity.log",
		Name:        "activity-log",
		Description: "Append-only audit log of price fetches",
		MIMEType:    "text/plain",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		if files == nil {
			return nil, fmt.Errorf("file store unavailable")
		}
		contents, err := files.ReadActivityLog()
		if err != nil {
			return nil, err
		}
		return textResource(req.Params.URI, "text/plain", contents), nil
	})

	server.AddResource(&mcp.Resource{
		URI:         "file://symbol_map.csv",
		Name:        "symbol-map",
		Description: "Static CSV mapping asset name aliases to exchange symbols",
		MIMEType:    "text/csv",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		_ = ctx
		if files == nil {
			return nil, fmt.Errorf("file store unavailable")
		}
		contents, err := files.ReadSymbolMap()
		if err != nil {
			return nil, err
		}
		return textResource(req.Params.URI, "text/csv", contents), nil
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "crypto-price://{symbol}",
		Name:        "crypto-price",
		Description: "Current price for a crypto asset; same payload as the get_price tool",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if market == nil {
			return nil, fmt.Errorf("price service unavailable")
		}

		parsed, err := url.Parse(req.Params.URI)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		if parsed.Scheme != "crypto-price" {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		symbol := strings.TrimSpace(parsed.Host)
		if symbol == "" {
			symbol = strings.Trim(strings.TrimSpace(parsed.Opaque), "/")
		}
		if symbol == "" {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		msg, err := market.GetPrice(ctx, symbol)
		if err != nil {
			var statusErr *domain.StatusError
			if errors.As(err, &statusErr) {
				return jsonResource(req.Params.URI, getPriceOutput{Error: statusErr.Error()})
			}
			return nil, err
		}
		return jsonResource(req.Params.URI, getPriceOutput{Message: msg})
	})
}

func textResource(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return textResource(uri, "application/json", string(body)), nil
}
