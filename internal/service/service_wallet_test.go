package service

import (
	"context"
	"testing"

	"github.com/agchain/agwallet/internal/crypto"
	"github.com/agchain/agwallet/internal/identity"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/mock"
	"github.com/agchain/agwallet/internal/store"
	"github.com/agchain/agwallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// repoState backs the repository mock with in-memory slots so the session
// service can be exercised across full create/lock/unlock scenarios with the
// real crypto underneath.
type repoState struct {
	vault   *models.VaultRecord
	session *models.SessionWrapperRecord
}

func newTestWalletSvc(t *testing.T, ctrl *gomock.Controller) (WalletSessionService, *repoState, *mock.MockNodeAdapter) {
	t.Helper()

	state := &repoState{}
	svc, node := newWalletSvcOver(t, ctrl, state)
	return svc, state, node
}

// newWalletSvcOver builds a session service over existing slots; calling it
// twice with the same state simulates a process restart.
func newWalletSvcOver(t *testing.T, ctrl *gomock.Controller, state *repoState) (WalletSessionService, *mock.MockNodeAdapter) {
	t.Helper()

	mockRepo := mock.NewMockWalletRepository(ctrl)

	mockRepo.EXPECT().GetVault(gomock.Any()).DoAndReturn(
		func(context.Context) (models.VaultRecord, error) {
			if state.vault == nil {
				return models.VaultRecord{}, store.ErrVaultNotFound
			}
			return *state.vault, nil
		},
	).AnyTimes()
	mockRepo.EXPECT().CreateWallet(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, vault models.VaultRecord, wrap models.SessionWrapperRecord) error {
			if state.vault != nil {
				return store.ErrVaultAlreadyExists
			}
			state.vault, state.session = &vault, &wrap
			return nil
		},
	).AnyTimes()
	mockRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, balance, pendingSpends float64) error {
			if state.vault == nil {
				return store.ErrVaultNotFound
			}
			state.vault.Balance, state.vault.PendingSpends = balance, pendingSpends
			return nil
		},
	).AnyTimes()
	mockRepo.EXPECT().DeleteWallet(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			state.vault, state.session = nil, nil
			return nil
		},
	).AnyTimes()
	mockRepo.EXPECT().GetSession(gomock.Any()).DoAndReturn(
		func(context.Context) (models.SessionWrapperRecord, error) {
			if state.session == nil {
				return models.SessionWrapperRecord{}, store.ErrSessionNotFound
			}
			return *state.session, nil
		},
	).AnyTimes()
	mockRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wrap models.SessionWrapperRecord) error {
			state.session = &wrap
			return nil
		},
	).AnyTimes()
	mockRepo.EXPECT().ClearSession(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			state.session = nil
			return nil
		},
	).AnyTimes()

	kv := crypto.NewKeyVaultService()
	mockNode := mock.NewMockNodeAdapter(ctrl)

	svc := NewWalletSessionService(
		NewVaultService(mockRepo, kv),
		NewSessionWrapService(mockRepo, kv),
		mockNode,
		logger.Nop(),
	)
	return svc, mockNode
}

// ── Generate ─────────────────────────────────────────────────────────────────

func TestWalletSession_Generate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	ws, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	assert.True(t, ws.Unlocked)
	assert.True(t, identity.IsValidAddress(ws.Address))
	assert.Len(t, ws.PublicKey, identity.PublicKeyHexLen)
	assert.Equal(t, models.StateUnlocked, svc.State())

	// Both slots must be persisted, and the vault must not hold the key in
	// the clear.
	require.NotNil(t, state.vault)
	require.NotNil(t, state.session)
	assert.NotEmpty(t, state.vault.EncryptedPrivateKey)
	assert.NotEmpty(t, state.vault.EncryptionIV)
	assert.NotEmpty(t, state.vault.EncryptionSalt)
}

func TestWalletSession_Generate_SecondCallRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	first, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	_, err = svc.Generate(ctx, "another-password")
	assert.ErrorIs(t, err, ErrWalletExists)

	// The original wallet must be untouched.
	assert.Equal(t, first.Address, state.vault.Address)
}

// ── Unlock ───────────────────────────────────────────────────────────────────

// TestWalletSession_Unlock_WrongThenCorrect walks the canonical session: a
// wallet is created, the process restarts (fresh service, same storage), a
// wrong password is rejected without a state change and the correct one
// unlocks and can sign.
func TestWalletSession_Unlock_WrongThenCorrect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	created, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	// Simulate a restart without the session wrapper: new service over the
	// same slots, wrapper removed.
	state.session = nil
	restarted, _ := newWalletSvcOver(t, ctrl, state)

	st, err := restarted.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateLocked, st)

	_, err = restarted.Unlock(ctx, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, models.StateLocked, restarted.State())

	ws, err := restarted.Unlock(ctx, "hunter2")
	require.NoError(t, err)
	assert.True(t, ws.Unlocked)
	assert.Equal(t, created.Address, ws.Address)

	// A successful unlock re-arms auto-unlock.
	assert.NotNil(t, state.session)

	sig, err := restarted.Sign(ctx, []byte("payload"))
	require.NoError(t, err)
	assert.Len(t, sig.Signature, identity.SignatureHexLen)
	assert.True(t, identity.Verify(sig.PublicKey, []byte("payload"), sig.Signature))
}

// ── AutoUnlock ───────────────────────────────────────────────────────────────

func TestWalletSession_AutoUnlock_AfterRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	restarted, _ := newWalletSvcOver(t, ctrl, state)

	st, err := restarted.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateUnlocked, st)
}

func TestWalletSession_AutoUnlock_CorruptWrapperDegradesToLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	// Corrupt the wrapped password blob in place.
	state.session.WrappedPassword = "QQ=="

	restarted, _ := newWalletSvcOver(t, ctrl, state)

	st, err := restarted.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateLocked, st)

	// The stale wrapper must be cleared so it cannot fail on every start.
	assert.Nil(t, state.session)

	// The vault itself is untouched and still unlockable.
	ws, err := restarted.Unlock(ctx, "hunter2")
	require.NoError(t, err)
	assert.True(t, ws.Unlocked)
}

// ── Import ───────────────────────────────────────────────────────────────────

func TestWalletSession_Import_FreshDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	kp, err := identity.Generate()
	require.NoError(t, err)

	ws, err := svc.Import(ctx, kp.PrivateKeyHex(), "hunter2")
	require.NoError(t, err)

	assert.Equal(t, kp.Address(), ws.Address)
	assert.True(t, ws.Unlocked)
	require.NotNil(t, state.vault)
	require.NotNil(t, state.session)
}

func TestWalletSession_Import_MalformedKeyRejectedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	for _, malformed := range []string{
		"",
		"zz",
		"0123456789abcdef", // too short
		"g123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef", // non-hex
	} {
		_, err := svc.Import(ctx, malformed, "hunter2")
		assert.ErrorIs(t, err, ErrInvalidKeyFormat, "input %q", malformed)
	}

	// Format rejection must leave no trace.
	assert.Nil(t, state.vault)
	assert.Equal(t, models.StateUninitialized, svc.State())
}

func TestWalletSession_Import_MismatchLeavesVaultUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)
	original := *state.vault

	other, err := identity.Generate()
	require.NoError(t, err)

	_, err = svc.Import(ctx, other.PrivateKeyHex(), "hunter2")
	assert.ErrorIs(t, err, ErrAddressMismatch)
	assert.Equal(t, original, *state.vault)
}

func TestWalletSession_Import_MatchingKeyWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)
	original := *state.vault

	exported, err := svc.ExportPrivateKey()
	require.NoError(t, err)

	_, err = svc.Import(ctx, exported, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, original, *state.vault)
}

// ── Sign / Export ────────────────────────────────────────────────────────────

func TestWalletSession_Sign_LockedWithoutWrapper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	state.session = nil
	restarted, _ := newWalletSvcOver(t, ctrl, state)
	_, err = restarted.Bootstrap(ctx)
	require.NoError(t, err)

	_, err = restarted.Sign(ctx, []byte("payload"))
	assert.ErrorIs(t, err, ErrWalletLocked)
}

func TestWalletSession_Sign_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	first, err := svc.Sign(ctx, []byte("payload"))
	require.NoError(t, err)
	second, err := svc.Sign(ctx, []byte("payload"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWalletSession_ExportPrivateKey_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	kp, err := identity.Generate()
	require.NoError(t, err)

	_, err = svc.Import(ctx, kp.PrivateKeyHex(), "hunter2")
	require.NoError(t, err)

	exported, err := svc.ExportPrivateKey()
	require.NoError(t, err)
	assert.Equal(t, kp.PrivateKeyHex(), exported)
}

// ── RefreshBalance ───────────────────────────────────────────────────────────

func TestWalletSession_RefreshBalance_UpdatesMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, mockNode := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	ws, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	mockNode.EXPECT().WalletInfo(ctx, ws.Address).Return(models.WalletInfo{
		Address:       ws.Address,
		Balance:       42.5,
		PendingSpends: 1.25,
	}, nil)

	got, err := svc.RefreshBalance(ctx)
	require.NoError(t, err)

	assert.Equal(t, 42.5, got.Balance)
	assert.Equal(t, 1.25, got.PendingSpends)
	assert.Equal(t, 42.5, state.vault.Balance)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestWalletSession_Logout_WipesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, state, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "hunter2")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	assert.Equal(t, models.StateUninitialized, svc.State())
	assert.Nil(t, state.vault)
	assert.Nil(t, state.session)

	_, err = svc.Unlock(ctx, "hunter2")
	assert.ErrorIs(t, err, ErrNoWallet)

	_, err = svc.ExportPrivateKey()
	assert.ErrorIs(t, err, ErrWalletLocked)

	// A fresh wallet can be created immediately after logout.
	_, err = svc.Generate(ctx, "new-password")
	require.NoError(t, err)
}

// ── GetPublicState ───────────────────────────────────────────────────────────

func TestWalletSession_GetPublicState_NilWhenUninitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestWalletSvc(t, ctrl)

	ws, err := svc.GetPublicState(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ws)
}
