package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	CatalogFile       string
	StockPollInterval time.Duration
	LowStockThreshold int
	StockWorkerPool   int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultStockPollInterval = 30 * time.Second
	defaultLowStockThreshold = 5
	defaultStockWorkerPool   = 2
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		CatalogFile:       getString(lookup, "CATALOG_FILE", ""),
		StockPollInterval: getDuration(lookup, "STOCK_POLL_INTERVAL", defaultStockPollInterval),
		LowStockThreshold: getInt(lookup, "LOW_STOCK_THRESHOLD", defaultLowStockThreshold),
		StockWorkerPool:   getInt(lookup, "STOCK_WORKER_POOL", defaultStockWorkerPool),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("shopfront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StockPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "Path to a JSON catalog seed file")
	fs.StringVar(&pollIntervalStr, "stock-poll-interval", pollIntervalStr, "Interval between low-stock scans")
	fs.IntVar(&cfg.LowStockThreshold, "low-stock-threshold", cfg.LowStockThreshold, "Stock level at which a product is reported low")
	fs.IntVar(&cfg.StockWorkerPool, "stock-workers", cfg.StockWorkerPool, "Number of concurrent low-stock workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StockPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid stock poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.StockPollInterval <= 0 {
		cfg.StockPollInterval = defaultStockPollInterval
	}

	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.StockWorkerPool <= 0 {
		cfg.StockWorkerPool = defaultStockWorkerPool
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
