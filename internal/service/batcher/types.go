package batcher

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/internal/txvault"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the slice of the obligation store the batching engine needs.
	Store interface {
		ListSources(ctx context.Context) ([]model.PaymentSource, error)

		// PurchasesAwaitingBatch lists requests whose funds-locking was
		// requested and that have no current transaction, in arrival order.
		PurchasesAwaitingBatch(ctx context.Context, sourceID uuid.UUID) ([]model.PurchaseRequest, error)

		// LeasePurchasingWallets marks every unleased purchasing wallet of
		// the source as committed and returns the leased set. The read and
		// the mark happen in one serializable transaction.
		LeasePurchasingWallets(ctx context.Context, sourceID uuid.UUID) ([]model.HotWallet, error)
		ReleaseWalletLeases(ctx context.Context, walletIDs []uuid.UUID) error

		// InitiatePurchaseLock moves a request to its initiated state,
		// commits the wallet to it and records the pending transaction.
		InitiatePurchaseLock(ctx context.Context, id, walletID uuid.UUID, txHash string) error
		MarkPurchaseError(ctx context.Context, id uuid.UUID, errType model.ErrorType, note string) error
	}

	// BalanceClient is the slice of the ledger provider needed to seed the
	// simulated balances.
	BalanceClient interface {
		AddressBalance(ctx context.Context, address string) ([]model.Amount, error)
	}

	ClientFactory interface {
		ForSource(source model.PaymentSource) (BalanceClient, error)
	}

	// Vault builds, signs and submits the lock transaction.
	Vault interface {
		SubmitLock(ctx context.Context, req txvault.LockRequest) (string, error)
	}

	Metrics interface {
		ObserveSourceBatch(err error, network model.Network, started time.Time)
		ObserveSubmission(err error, started time.Time)
	}
)
