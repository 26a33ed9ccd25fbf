package reconciler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nftmakerio/masumi-payment-service/internal/ledger"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the slice of the obligation store the reconciler needs. The
	// transition methods are state-gated: they report false without error
	// when no row was in an expected prior state, which makes replays no-ops.
	Store interface {
		AcquireSyncingSources(ctx context.Context) ([]model.PaymentSource, error)
		ReleaseSyncingSources(ctx context.Context, ids []uuid.UUID) error
		UpdateCheckpoint(ctx context.Context, sourceID uuid.UUID, checkpoint model.Checkpoint) error

		PurchasesAwaitingLock(ctx context.Context, sourceID uuid.UUID, referenceID string) ([]model.PurchaseRequest, error)
		PaymentsAwaitingLock(ctx context.Context, sourceID uuid.UUID, referenceID string) ([]model.PaymentRequest, error)
		MarkPurchaseError(ctx context.Context, id uuid.UUID, errType model.ErrorType, note string) error
		MarkPaymentError(ctx context.Context, id uuid.UUID, errType model.ErrorType, note string) error
		ConfirmPurchaseLock(ctx context.Context, id uuid.UUID, txHash string) error
		FinalizePaymentLock(ctx context.Context, id uuid.UUID, status model.PaymentStatus, txHash, buyerVkeyHash string) error

		ApplyPaymentTransition(ctx context.Context, sourceID uuid.UUID, referenceID string, expected []model.PaymentStatus, next model.PaymentStatus, txHash string) (bool, error)
		ApplyPurchaseTransition(ctx context.Context, sourceID uuid.UUID, referenceID string, expected []model.PurchaseStatus, next model.PurchaseStatus, txHash string) (bool, error)

		ClearWalletLeaseByTx(ctx context.Context, sourceID uuid.UUID, txHash string) error
	}

	// LedgerClient is the read side of the ledger query provider.
	LedgerClient interface {
		AddressTransactions(ctx context.Context, address string, page, count int) ([]ledger.TxSummary, error)
		TransactionDetail(ctx context.Context, txHash string) (*ledger.TxDetail, error)
	}

	// ClientFactory yields a ledger client bound to a source's network and
	// provider credentials.
	ClientFactory interface {
		ForSource(source model.PaymentSource) (LedgerClient, error)
	}

	Metrics interface {
		ObserveSourceSync(err error, network model.Network, started time.Time)
		ObserveTransaction(err error, kind string, started time.Time)
	}
)
