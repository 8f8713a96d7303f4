package models

// WalletInfo is the node's answer to GET /wallet/info/{address}. Balance and
// PendingSpends are authoritative on the node side; the client only caches
// them in the VaultRecord.
type WalletInfo struct {
	Address       string  `json:"address"`
	Balance       float64 `json:"balance"`
	PendingSpends float64 `json:"pending_spends"`
}

// FeeRate is the node's answer to GET /blockchain/fee-rate.
type FeeRate struct {
	FeeRate             float64            `json:"fee_rate"`
	PriorityMultipliers map[string]float64 `json:"priority_multipliers"`
	MempoolSize         int                `json:"mempool_size"`
	BlockFullness       float64            `json:"block_fullness"`
}

// TransactRequest is the body of POST /wallet/transact. Signature and
// PublicKey are produced by the wallet session; everything else is caller
// input.
type TransactRequest struct {
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
	Signature string  `json:"signature"`
	PublicKey string  `json:"public_key"`
	Priority  string  `json:"priority"`
	Address   string  `json:"address"`
}

// TransactResponse mirrors the node's reply to a submitted transaction.
type TransactResponse struct {
	Message     string         `json:"message"`
	Transaction map[string]any `json:"transaction"`
	Fee         float64        `json:"fee"`
	Size        int            `json:"size"`
	Timestamp   int64          `json:"timestamp"`
	BalanceInfo map[string]any `json:"balance_info"`
}
