package store

import (
	"database/sql"

	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
