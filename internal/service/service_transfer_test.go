package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/agchain/agwallet/internal/adapter"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/mock"
	"github.com/agchain/agwallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRecipient = "AG0123456789abcdef0123456789abcdef0"

func newTestTransferSvc(t *testing.T, ctrl *gomock.Controller) (*transferService, *mock.MockWalletSessionService, *mock.MockNodeAdapter) {
	t.Helper()
	mockWallet := mock.NewMockWalletSessionService(ctrl)
	mockNode := mock.NewMockNodeAdapter(ctrl)

	svc := NewTransferService(mockWallet, mockNode, logger.Nop()).(*transferService)
	return svc, mockWallet, mockNode
}

func TestTransferService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockWallet, mockNode := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	state := &models.WalletState{
		Address:   "AGfedcba9876543210fedcba9876543210f",
		PublicKey: "02aa11bb22cc33dd44ee55ff6677889900aa11bb22cc33dd44ee55ff6677889900",
	}
	sig := models.Signature{Signature: "cafe", PublicKey: state.PublicKey}

	// The node verifies the signature over recipient:amount+fee:priority:pubkey
	// with the amount printed to five decimals.
	wantPayload := fmt.Sprintf("%s:%.5f:%s:%s", testRecipient, 12.5+transactionFee, "medium", state.PublicKey)

	gomock.InOrder(
		mockWallet.EXPECT().GetPublicState(ctx).Return(state, nil),
		mockWallet.EXPECT().Sign(ctx, []byte(wantPayload)).Return(sig, nil),
		mockNode.EXPECT().SubmitTransaction(ctx, models.TransactRequest{
			Recipient: testRecipient,
			Amount:    12.5,
			Signature: sig.Signature,
			PublicKey: sig.PublicKey,
			Priority:  "medium",
			Address:   state.Address,
		}).Return(models.TransactResponse{Message: "accepted"}, nil),
	)

	resp, err := svc.Send(ctx, testRecipient, 12.5, "medium")
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Message)
}

// TestTransferService_Send_ValidationBeforeSigning verifies that malformed
// input is rejected before the wallet or the node is touched at all.
func TestTransferService_Send_ValidationBeforeSigning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name      string
		recipient string
		amount    float64
		priority  string
		wantErr   error
	}{
		{"empty recipient", "", 1, "low", ErrInvalidRecipient},
		{"wrong prefix", "XX0123456789abcdef0123456789abcdef0", 1, "low", ErrInvalidRecipient},
		{"too short", "AG0123", 1, "low", ErrInvalidRecipient},
		{"zero amount", testRecipient, 0, "low", ErrInvalidAmount},
		{"negative amount", testRecipient, -3, "low", ErrInvalidAmount},
		{"unknown priority", testRecipient, 1, "urgent", ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tt.recipient, tt.amount, tt.priority)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransferService_Send_LockedWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockWallet, _ := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	state := &models.WalletState{Address: testRecipient, PublicKey: "02aa"}

	mockWallet.EXPECT().GetPublicState(ctx).Return(state, nil)
	mockWallet.EXPECT().Sign(ctx, gomock.Any()).Return(models.Signature{}, ErrWalletLocked)

	_, err := svc.Send(ctx, testRecipient, 1, "low")
	assert.ErrorIs(t, err, ErrWalletLocked)
}

func TestTransferService_Send_NodeRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockWallet, mockNode := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	state := &models.WalletState{Address: testRecipient, PublicKey: "02aa"}

	mockWallet.EXPECT().GetPublicState(ctx).Return(state, nil)
	mockWallet.EXPECT().Sign(ctx, gomock.Any()).Return(models.Signature{Signature: "cafe", PublicKey: "02aa"}, nil)
	mockNode.EXPECT().
		SubmitTransaction(ctx, gomock.Any()).
		Return(models.TransactResponse{}, fmt.Errorf("%w: insufficient balance", adapter.ErrRejected))

	_, err := svc.Send(ctx, testRecipient, 1, "low")
	assert.ErrorIs(t, err, adapter.ErrRejected)
}

func TestTransferService_Send_NoWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockWallet, _ := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	mockWallet.EXPECT().GetPublicState(ctx).Return(nil, nil)

	_, err := svc.Send(ctx, testRecipient, 1, "low")
	assert.ErrorIs(t, err, ErrNoWallet)
}

func TestTransferService_FeeRate_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockNode := newTestTransferSvc(t, ctrl)
	ctx := context.Background()

	want := models.FeeRate{FeeRate: 0.001, MempoolSize: 7}
	mockNode.EXPECT().FeeRate(ctx).Return(want, nil)

	got, err := svc.FeeRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	mockNode.EXPECT().FeeRate(ctx).Return(models.FeeRate{}, errors.New("connection refused"))
	_, err = svc.FeeRate(ctx)
	require.Error(t, err)
}
