package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	PriceAPIURL     string
	StatsAPIURL     string
	OptionsAPIURL   string
	ActivityLogPath string
	SymbolMapPath   string

	MCPTransport          string
	MCPHTTPEnabled        bool
	MCPHTTPBind           string
	MCPHTTPPort           int
	MCPAuthToken          string
	MCPRequestTimeoutSecs int
	MCPRateLimitPerMin    int
}

func Load() *Config {
	cfg := &Config{
		MCPAuthToken: os.Getenv("MCP_AUTH_TOKEN"),
	}

	cfg.PriceAPIURL = strings.TrimSpace(os.Getenv("PRICE_API_URL"))
	if cfg.PriceAPIURL == "" {
		cfg.PriceAPIURL = "https://api.binance.us"
	}

	cfg.StatsAPIURL = strings.TrimSpace(os.Getenv("STATS_API_URL"))
	if cfg.StatsAPIURL == "" {
		cfg.StatsAPIURL = "https://data-api.binance.vision"
	}

	cfg.OptionsAPIURL = strings.TrimSpace(os.Getenv("OPTIONS_API_URL"))
	if cfg.OptionsAPIURL == "" {
		cfg.OptionsAPIURL = "https://query2.finance.yahoo.com"
	}

	cfg.ActivityLogPath = strings.TrimSpace(os.Getenv("ACTIVITY_LOG_PATH"))
	if cfg.ActivityLogPath == "" {
		cfg.ActivityLogPath = "activity.log"
	}

	cfg.SymbolMapPath = strings.TrimSpace(os.Getenv("SYMBOL_MAP_PATH"))
	if cfg.SymbolMapPath == "" {
		cfg.SymbolMapPath = "symbol_map.csv"
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPEnabled = strings.EqualFold(strings.TrimSpace(os.Getenv("MCP_HTTP_ENABLED")), "true")

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}

	cfg.MCPHTTPPort = 8090
	if v := strings.TrimSpace(os.Getenv("MCP_HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPHTTPPort = n
		}
	}

	cfg.MCPRequestTimeoutSecs = 30
	if v := strings.TrimSpace(os.Getenv("MCP_REQUEST_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRequestTimeoutSecs = n
		}
	}

	cfg.MCPRateLimitPerMin = 60
	if v := strings.TrimSpace(os.Getenv("MCP_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MCPRateLimitPerMin = n
		}
	}

	return cfg
}
