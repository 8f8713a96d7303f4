package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-n node base URL
//	-d database DSN (SQLite file path)
//	-request-timeout node request timeout (e.g., "30s", "1m")
//	-refresh-interval balance refresh interval (e.g., "1m", "30s")
func ParseFlags() *StructuredConfig {
	var nodeURL string
	var databaseDSN string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&nodeURL, "n", "", "Chain node base URL")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Node request timeout")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Balance refresh interval")

	flag.Parse()

	return &StructuredConfig{
		Node: Node{
			URL:            nodeURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			BalanceRefreshInterval: refreshInterval,
		},
	}
}
