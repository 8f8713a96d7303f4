package store

import (
	"context"
	"fmt"

	"github.com/agchain/agwallet/internal/config"
	"github.com/agchain/agwallet/internal/logger"
)

// Storages groups the client-side repositories into a single value that can
// be passed around the service layer. Currently it holds only
// [WalletRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// Wallet is the SQLite-backed repository for the encrypted vault and
	// session wrapper slots stored locally on the device.
	Wallet WalletRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [WalletRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Wallet: NewWalletRepository(db, logger),
	}, nil
}
