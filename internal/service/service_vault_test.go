package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/agchain/agwallet/internal/identity"
	"github.com/agchain/agwallet/internal/mock"
	"github.com/agchain/agwallet/internal/store"
	"github.com/agchain/agwallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (*vaultService, *mock.MockWalletRepository, *mock.MockKeyVaultService) {
	t.Helper()
	mockRepo := mock.NewMockWalletRepository(ctrl)
	mockCrypto := mock.NewMockKeyVaultService(ctrl)

	svc := NewVaultService(mockRepo, mockCrypto).(*vaultService)
	return svc, mockRepo, mockCrypto
}

// ── Seal ─────────────────────────────────────────────────────────────────────

func TestVaultService_Seal_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCrypto := newTestVaultSvc(t, ctrl)

	kp, err := identity.Generate()
	require.NoError(t, err)

	salt := []byte("random-salt-16bb")
	nonce := []byte("nonce-12-byt")
	key := []byte("derived-key-32-bytes-placeholder")
	ciphertext := []byte("sealed-private-key-blob")

	gomock.InOrder(
		mockCrypto.EXPECT().GenerateSalt().Return(salt, nil),
		mockCrypto.EXPECT().GenerateNonce().Return(nonce, nil),
		mockCrypto.EXPECT().DeriveKey("hunter2", salt).Return(key),
		mockCrypto.EXPECT().Seal(key, nonce, kp.PrivateKeyBytes()).Return(ciphertext, nil),
	)

	record, err := svc.Seal(kp, "hunter2")
	require.NoError(t, err)

	assert.Equal(t, kp.Address(), record.Address)
	assert.Equal(t, kp.PublicKeyHex(), record.PublicKey)
	assert.Equal(t, base64.StdEncoding.EncodeToString(ciphertext), record.EncryptedPrivateKey)
	assert.Equal(t, base64.StdEncoding.EncodeToString(nonce), record.EncryptionIV)
	assert.Equal(t, base64.StdEncoding.EncodeToString(salt), record.EncryptionSalt)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestVaultService_Seal_SaltGenerationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCrypto := newTestVaultSvc(t, ctrl)

	kp, err := identity.Generate()
	require.NoError(t, err)

	mockCrypto.EXPECT().GenerateSalt().Return(nil, errors.New("entropy exhausted"))

	_, err = svc.Seal(kp, "hunter2")
	require.Error(t, err)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestVaultService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	record := models.VaultRecord{Address: "AG" + "0123456789abcdef0123456789abcdef0"}
	wrap := models.SessionWrapperRecord{WrappedPassword: "blob"}

	mockRepo.EXPECT().CreateWallet(ctx, record, wrap).Return(nil)

	require.NoError(t, svc.Create(ctx, record, wrap))
}

func TestVaultService_Create_SlotTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateWallet(ctx, gomock.Any(), gomock.Any()).
		Return(store.ErrVaultAlreadyExists)

	err := svc.Create(ctx, models.VaultRecord{}, models.SessionWrapperRecord{})
	assert.ErrorIs(t, err, ErrWalletExists)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestVaultService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetVault(ctx).Return(models.VaultRecord{}, store.ErrVaultNotFound)

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, ErrNoWallet)
}

// ── DecryptSecret ────────────────────────────────────────────────────────────

func TestVaultService_DecryptSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCrypto := newTestVaultSvc(t, ctrl)

	salt := []byte("random-salt-16bb")
	nonce := []byte("nonce-12-byt")
	key := []byte("derived-key-32-bytes-placeholder")
	ciphertext := []byte("sealed-private-key-blob")
	secret := []byte("raw-private-key-32-bytes-padding")

	record := models.VaultRecord{
		EncryptedPrivateKey: base64.StdEncoding.EncodeToString(ciphertext),
		EncryptionIV:        base64.StdEncoding.EncodeToString(nonce),
		EncryptionSalt:      base64.StdEncoding.EncodeToString(salt),
	}

	gomock.InOrder(
		mockCrypto.EXPECT().DeriveKey("hunter2", salt).Return(key),
		mockCrypto.EXPECT().Open(key, nonce, ciphertext).Return(secret, nil),
	)

	got, err := svc.DecryptSecret(record, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, secret, got)
}

func TestVaultService_DecryptSecret_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCrypto := newTestVaultSvc(t, ctrl)

	record := models.VaultRecord{
		EncryptedPrivateKey: base64.StdEncoding.EncodeToString([]byte("blob")),
		EncryptionIV:        base64.StdEncoding.EncodeToString([]byte("nonce-12-byt")),
		EncryptionSalt:      base64.StdEncoding.EncodeToString([]byte("random-salt-16bb")),
	}

	mockCrypto.EXPECT().DeriveKey(gomock.Any(), gomock.Any()).Return([]byte("wrong-key"))
	mockCrypto.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("cipher: message authentication failed"))

	_, err := svc.DecryptSecret(record, "not-hunter2")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

// TestVaultService_DecryptSecret_CorruptedFields verifies that a record with
// undecodable base64 fails with the same error as a wrong password, without
// ever reaching the cipher.
func TestVaultService_DecryptSecret_CorruptedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	record := models.VaultRecord{
		EncryptedPrivateKey: "%%% not base64 %%%",
		EncryptionIV:        "%%% not base64 %%%",
		EncryptionSalt:      "%%% not base64 %%%",
	}

	_, err := svc.DecryptSecret(record, "hunter2")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

// ── UpdateBalance / Delete ───────────────────────────────────────────────────

func TestVaultService_UpdateBalance_NoVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateBalance(ctx, 10.5, 0.0).Return(store.ErrVaultNotFound)

	assert.ErrorIs(t, svc.UpdateBalance(ctx, 10.5, 0.0), ErrNoWallet)
}

func TestVaultService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteWallet(ctx).Return(nil)

	require.NoError(t, svc.Delete(ctx))
}
