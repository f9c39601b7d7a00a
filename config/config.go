package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"shopfloor/common"

	"golang.org/x/time/rate"
)

type ServiceConfig struct {
	ServiceName string
	ListenAddr  string
	FixtureFile string

	OverviewCacheTTL time.Duration
	// WriteRateLimit of zero disables limiting of the mutating endpoints.
	WriteRateLimit rate.Limit
	WriteRateBurst int

	LogLevel  string
	LogFormat string
}

// ParseServiceConfigFromEnv reads SERVICE_NAME, LISTEN_ADDR, FIXTURE_FILE, OVERVIEW_CACHE_TTL,
// WRITE_RATE_LIMIT, WRITE_RATE_BURST, LOG_LEVEL and LOG_FORMAT.
func ParseServiceConfigFromEnv() (*ServiceConfig, error) {
	return ParseServiceConfig(os.Getenv)
}

func ParseServiceConfig(getenv func(string) string) (*ServiceConfig, error) {
	c := &ServiceConfig{
		ServiceName:      valueOrDefault(getenv("SERVICE_NAME"), common.DefaultServiceName),
		ListenAddr:       valueOrDefault(getenv("LISTEN_ADDR"), ":80"),
		FixtureFile:      getenv("FIXTURE_FILE"),
		OverviewCacheTTL: 5 * time.Second,
		WriteRateBurst:   1,
		LogLevel:         valueOrDefault(getenv("LOG_LEVEL"), "info"),
		LogFormat:        valueOrDefault(getenv("LOG_FORMAT"), "text"),
	}

	if v := getenv("OVERVIEW_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("invalid OVERVIEW_CACHE_TTL '%s'", v)
		}
		c.OverviewCacheTTL = ttl
	}
	if v := getenv("WRITE_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid WRITE_RATE_LIMIT '%s'", v)
		}
		c.WriteRateLimit = rate.Limit(limit)
	}
	if v := getenv("WRITE_RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst < 1 {
			return nil, fmt.Errorf("invalid WRITE_RATE_BURST '%s'", v)
		}
		c.WriteRateBurst = burst
	}
	return c, nil
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
