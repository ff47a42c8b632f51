package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DataDir      string // Root dir for JSON state files when no DATABASE_URL is set
	CatalogPath  string // Optional reward catalog override (JSON); empty = built-in table
	LedgerURL    string // Base URL of the point-currency ledger service
	LedgerSecret string // HMAC secret for signing ledger requests (empty = unsigned)
}

func Load() *Config {
	port := 8082
	// Prefer PORT (Render, Fly.io, Railway, etc.) then LUCK_PORT
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			port = v
		}
	} else if p := os.Getenv("LUCK_PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			port = v
		}
	}
	dataDir := os.Getenv("LUCK_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	ledgerURL := os.Getenv("LEDGER_URL")
	if ledgerURL == "" {
		ledgerURL = "http://localhost:3000"
	}
	return &Config{
		Port:         port,
		DataDir:      dataDir,
		CatalogPath:  os.Getenv("LUCK_CATALOG_PATH"),
		LedgerURL:    ledgerURL,
		LedgerSecret: os.Getenv("LEDGER_SECRET"),
	}
}
