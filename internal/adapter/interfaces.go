package adapter

import (
	"context"

	"github.com/agchain/agwallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/node_adapter_mock.go -package=mock

// NodeAdapter is the outbound transport to the chain node's HTTP API. The
// wallet core never talks to the node about secrets; everything crossing this
// boundary is public (addresses, signed payloads, balances).
type NodeAdapter interface {
	// WalletInfo fetches the node-side view of an address: confirmed balance
	// and pending outgoing spends.
	WalletInfo(ctx context.Context, address string) (models.WalletInfo, error)

	// FeeRate fetches the node's current fee rate and priority multipliers.
	FeeRate(ctx context.Context) (models.FeeRate, error)

	// SubmitTransaction posts a signed transaction to the node's mempool.
	SubmitTransaction(ctx context.Context, req models.TransactRequest) (models.TransactResponse, error)
}
