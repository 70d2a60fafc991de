package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/arvarik/fitness-go/fitness"
)

const (
	defaultAddr      = ":8080"
	defaultRateLimit = 10.0
	defaultRateBurst = 20
)

// config holds the catalogd settings read from the environment.
type config struct {
	Addr      string
	Platform  fitness.Platform
	Version   fitness.Version
	RateLimit float64 // requests per second per client
	RateBurst int
	LogLevel  slog.Level

	// TrustProxy makes the limiter key on forwarding headers. Only set it
	// behind a proxy that overwrites them.
	TrustProxy bool
}

// loadConfig reads the FITNESS_* variables through getenv. Unset variables
// take their defaults; malformed ones are an error.
func loadConfig(getenv func(string) string) (*config, error) {
	cfg := &config{
		Addr:      defaultAddr,
		Platform:  fitness.HealthKit,
		Version:   fitness.CurrentVersion,
		RateLimit: defaultRateLimit,
		RateBurst: defaultRateBurst,
		LogLevel:  slog.LevelInfo,
	}

	if v := getenv("FITNESS_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := getenv("FITNESS_PLATFORM"); v != "" {
		p, ok := fitness.PlatformByName(v)
		if !ok {
			return nil, fmt.Errorf("FITNESS_PLATFORM: unknown platform %q", v)
		}
		cfg.Platform = p
	}

	if v := getenv("FITNESS_CATALOG_VERSION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || !fitness.Version(n).Valid() {
			return nil, fmt.Errorf("FITNESS_CATALOG_VERSION: invalid version %q", v)
		}
		cfg.Version = fitness.Version(n)
	}

	if v := getenv("FITNESS_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("FITNESS_RATE_LIMIT: must be a positive number, got %q", v)
		}
		cfg.RateLimit = f
	}

	if v := getenv("FITNESS_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("FITNESS_RATE_BURST: must be a positive integer, got %q", v)
		}
		cfg.RateBurst = n
	}

	if v := getenv("FITNESS_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("FITNESS_TRUST_PROXY: must be a boolean, got %q", v)
		}
		cfg.TrustProxy = b
	}

	if v := getenv("FITNESS_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("FITNESS_LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}
