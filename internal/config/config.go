// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the agwallet client configuration from defaults,
// environment variables and command-line flags, merged in that order with the
// later source winning.
package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for agwallet.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Node holds the connection settings for the remote chain node.
	Node Node `envPrefix:"NODE_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`
}

// Node holds network settings for the outbound chain-node transport.
type Node struct {
	// URL is the base URL of the chain node's HTTP API.
	// Env: AGWALLET_NODE_URL
	URL string `env:"URL"`

	// RequestTimeout is the default timeout for outbound node requests.
	// Env: AGWALLET_NODE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local vault database.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path holding the encrypted vault.
	// Env: AGWALLET_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// BalanceRefreshInterval defines how often the cached balance mirror is
	// refreshed from the node.
	// Env: AGWALLET_WORKERS_BALANCE_REFRESH_INTERVAL
	BalanceRefreshInterval time.Duration `env:"BALANCE_REFRESH_INTERVAL"`
}

func (c *StructuredConfig) validate() error {
	if c.Node.URL == "" {
		return fmt.Errorf("%w: node URL", ErrMissingConfigValue)
	}
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: storage DSN", ErrMissingConfigValue)
	}
	if c.Node.RequestTimeout <= 0 {
		return fmt.Errorf("%w: node request timeout", ErrInvalidConfigValue)
	}
	if c.Workers.BalanceRefreshInterval <= 0 {
		return fmt.Errorf("%w: balance refresh interval", ErrInvalidConfigValue)
	}
	return nil
}
