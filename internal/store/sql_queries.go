package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/agchain/agwallet/models"
)

// slotID is the fixed primary key of both single-slot tables.
const slotID = 1

// sb is the shared statement builder. SQLite uses ? placeholders.
var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var vaultColumns = []string{
	"address",
	"public_key",
	"encrypted_private_key",
	"encryption_iv",
	"encryption_salt",
	"balance",
	"pending_spends",
	"created_at",
	"updated_at",
}

var sessionColumns = []string{
	"wrapped_password",
	"wrap_iv",
	"wrap_salt",
	"wrapped_at",
}

func buildSelectVaultQuery() (string, []any, error) {
	return sb.Select(vaultColumns...).
		From("vault").
		Where(sq.Eq{"id": slotID}).
		ToSql()
}

func buildInsertVaultQuery(v models.VaultRecord) (string, []any, error) {
	return sb.Insert("vault").
		Columns(append([]string{"id"}, vaultColumns...)...).
		Values(
			slotID,
			v.Address,
			v.PublicKey,
			v.EncryptedPrivateKey,
			v.EncryptionIV,
			v.EncryptionSalt,
			v.Balance,
			v.PendingSpends,
			v.CreatedAt,
			v.UpdatedAt,
		).
		ToSql()
}

func buildUpdateBalanceQuery(balance, pendingSpends float64, updatedAt time.Time) (string, []any, error) {
	return sb.Update("vault").
		Set("balance", balance).
		Set("pending_spends", pendingSpends).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": slotID}).
		ToSql()
}

func buildDeleteVaultQuery() (string, []any, error) {
	return sb.Delete("vault").
		Where(sq.Eq{"id": slotID}).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sb.Select(sessionColumns...).
		From("session_wrap").
		Where(sq.Eq{"id": slotID}).
		ToSql()
}

func buildUpsertSessionQuery(w models.SessionWrapperRecord) (string, []any, error) {
	return sb.Insert("session_wrap").
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(slotID, w.WrappedPassword, w.WrapIV, w.WrapSalt, w.WrappedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			wrapped_password = excluded.wrapped_password,
			wrap_iv = excluded.wrap_iv,
			wrap_salt = excluded.wrap_salt,
			wrapped_at = excluded.wrapped_at`).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sb.Delete("session_wrap").
		Where(sq.Eq{"id": slotID}).
		ToSql()
}
