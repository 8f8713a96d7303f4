package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when the single vault slot is empty.
	ErrVaultNotFound = errors.New("vault record not found")

	// ErrVaultAlreadyExists is returned when CreateWallet targets a slot that
	// already holds a record. The single-wallet-per-device invariant is
	// enforced both here and by the CHECK (id = 1) constraint in the schema.
	ErrVaultAlreadyExists = errors.New("vault record already exists")

	// ErrSessionNotFound is returned when the session wrapper slot is empty.
	ErrSessionNotFound = errors.New("session wrapper record not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
