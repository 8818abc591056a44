package mcp

import (
	"context"

	"coinquote/internal/domain"
)

// MarketReader exposes the crypto price operations.
type MarketReader interface {
	GetPrice(ctx context.Context, symbolOrName string) (string, error)
	Get24hStats(ctx context.Context, symbolOrName string) (domain.TickerStats, error)
}

// OptionReader resolves stock option premiums.
type OptionReader interface {
	GetPremium(ctx context.Context, req domain.OptionPremiumRequest) (*domain.OptionPremium, error)
}

// FileStore exposes the file-backed resources.
type FileStore interface {
	ReadActivityLog() (string, error)
	ReadSymbolMap() (string, error)
}
