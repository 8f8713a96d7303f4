package service

import (
	"context"
	"fmt"

	"github.com/agchain/agwallet/internal/adapter"
	"github.com/agchain/agwallet/internal/identity"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/models"
)

// transactionFee is the flat fee the node adds to every transfer. It is part
// of the signed payload, so both sides must agree on it exactly.
const transactionFee = 0.00001

var validPriorities = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
}

type transferService struct {
	wallet WalletSessionService
	node   adapter.NodeAdapter
	logger *logger.Logger
}

// NewTransferService constructs the [TransferService].
func NewTransferService(wallet WalletSessionService, node adapter.NodeAdapter, log *logger.Logger) TransferService {
	return &transferService{
		wallet: wallet,
		node:   node,
		logger: log,
	}
}

func (t *transferService) Send(ctx context.Context, recipient string, amount float64, priority string) (models.TransactResponse, error) {
	if !identity.IsValidAddress(recipient) {
		return models.TransactResponse{}, ErrInvalidRecipient
	}
	if amount <= 0 {
		return models.TransactResponse{}, ErrInvalidAmount
	}
	if _, ok := validPriorities[priority]; !ok {
		return models.TransactResponse{}, ErrInvalidPriority
	}

	state, err := t.wallet.GetPublicState(ctx)
	if err != nil {
		return models.TransactResponse{}, err
	}
	if state == nil {
		return models.TransactResponse{}, ErrNoWallet
	}

	// The node verifies the signature over this exact string, fee included,
	// with the amount rendered to five decimal places.
	payload := fmt.Sprintf("%s:%.5f:%s:%s", recipient, amount+transactionFee, priority, state.PublicKey)

	sig, err := t.wallet.Sign(ctx, []byte(payload))
	if err != nil {
		return models.TransactResponse{}, err
	}

	resp, err := t.node.SubmitTransaction(ctx, models.TransactRequest{
		Recipient: recipient,
		Amount:    amount,
		Signature: sig.Signature,
		PublicKey: sig.PublicKey,
		Priority:  priority,
		Address:   state.Address,
	})
	if err != nil {
		return models.TransactResponse{}, err
	}

	t.logger.Info().
		Str("recipient", recipient).
		Float64("amount", amount).
		Str("priority", priority).
		Msg("transaction submitted")

	return resp, nil
}

func (t *transferService) FeeRate(ctx context.Context) (models.FeeRate, error) {
	return t.node.FeeRate(ctx)
}
