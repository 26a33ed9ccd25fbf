package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletType distinguishes the seller-side and buyer-side hot wallets of a
// payment source.
type WalletType string

const (
	WalletSelling    WalletType = "Selling"
	WalletPurchasing WalletType = "Purchasing"
)

// HotWallet is a contract-interacting wallet owned by a payment source. The
// encrypted key material never leaves this struct in plaintext; signing is
// delegated to the transaction vault. LockedAt plus PendingTxHash form the
// exclusivity lease: a leased wallet is committed to one in-flight outgoing
// transaction and must not be selected for another.
type HotWallet struct {
	ID              uuid.UUID
	PaymentSourceID uuid.UUID
	Type            WalletType
	VkeyHash        string
	Address         string
	EncryptedSecret []byte
	Note            string

	LockedAt      *time.Time
	PendingTxHash *string
}

// Leased reports whether the wallet is committed to an in-flight transaction.
func (w HotWallet) Leased() bool {
	return w.LockedAt != nil
}

// CounterpartyWallet is a wallet the service only observes (a buyer wallet on
// a payment request, a seller wallet on a purchase request). Created lazily
// from the key hash carried by the on-chain record.
type CounterpartyWallet struct {
	ID              uuid.UUID
	PaymentSourceID uuid.UUID
	VkeyHash        string
	Note            string
}
