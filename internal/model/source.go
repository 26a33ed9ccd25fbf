package model

import (
	"github.com/google/uuid"
)

// Network identifies the ledger a payment source settles on.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkPreprod Network = "preprod"
	NetworkPreview Network = "preview"
)

// Checkpoint marks reconciliation progress for a payment source. Page is
// 1-based; LastSeenTxHash is empty until the first transaction is processed.
type Checkpoint struct {
	Page           int
	LastSeenTxHash string
}

// PaymentSource is one (network, escrow contract address) pair together with
// everything needed to drive its obligations: provider credentials, the fee
// schedule, the resumable sync checkpoint and the cross-process syncing lease.
type PaymentSource struct {
	ID                uuid.UUID
	Network           Network
	ContractAddress   string
	ProviderProjectID string
	FeePermille       int64
	Checkpoint        Checkpoint
	Syncing           bool
	MaxRetries        int

	// AdminVkeyHashes reconstructs the contract's parameters; always three,
	// in provisioning order.
	AdminVkeyHashes    []string
	FeeReceiverAddress string
	CollectionAddress  string
}
