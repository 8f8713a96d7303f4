package models

import "time"

// SessionWrapperRecord is the single persisted auto-unlock slot. It holds the
// wallet password encrypted under a key derived from a fixed, build-time
// passphrase, so the vault can be re-unlocked after a restart without asking
// the user again.
//
// Its lifecycle is independent of the VaultRecord: it may be absent while a
// vault exists (after an explicit lock), and it is cleared whenever unwrapping
// fails so a corrupt record cannot fail on every start.
type SessionWrapperRecord struct {
	// WrappedPassword is the AES-256-GCM ciphertext of the plaintext wallet
	// password. Base64-encoded.
	WrappedPassword string `json:"wrapped_password"`

	// WrapIV is the GCM nonce for WrappedPassword, independent of the
	// vault's own nonce. Base64-encoded.
	WrapIV string `json:"wrap_iv"`

	// WrapSalt is the KDF salt for the wrapping key, independent of the
	// vault's own salt. Base64-encoded.
	WrapSalt string `json:"wrap_salt"`

	// WrappedAt is when the wrapper was last written (i.e. the last
	// successful unlock).
	WrappedAt time.Time `json:"wrapped_at"`
}

// TableName returns the name of the database table
// associated with the SessionWrapperRecord model.
func (s SessionWrapperRecord) TableName() string {
	return "session_wrap"
}
