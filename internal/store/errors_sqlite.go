package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isConstraintViolation reports whether err is an SQLite integrity constraint
// failure. The single-slot tables carry CHECK (id = 1) and PRIMARY KEY
// constraints, so a violation here means the slot is already occupied.
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
