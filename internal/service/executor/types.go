package executor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nftmakerio/masumi-payment-service/internal/ledger"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/internal/txvault"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Candidate is one eligible request as selected by a policy's store query.
type Candidate = model.ActionCandidate

type (
	// Store is the slice of the obligation store the action executors need.
	// Candidate queries exclude requests flagged for manual review and apply
	// the policy's deadline gate via the cutoff argument.
	Store interface {
		ListSources(ctx context.Context) ([]model.PaymentSource, error)

		SubmitResultCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]Candidate, error)
		CollectCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]Candidate, error)
		TimeoutRefundCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]Candidate, error)
		DenyRefundCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]Candidate, error)

		// LeaseWallet commits the wallet to an in-flight transaction when it
		// is not already committed. The compare and the set happen in one
		// serializable transaction; false means another pass holds it.
		LeaseWallet(ctx context.Context, walletID uuid.UUID) (bool, error)
		ReleaseWalletLease(ctx context.Context, walletID uuid.UUID) error

		InitiatePaymentAction(ctx context.Context, id uuid.UUID, status model.PaymentStatus, walletID uuid.UUID, txHash string) error
		InitiatePurchaseAction(ctx context.Context, id uuid.UUID, status model.PurchaseStatus, walletID uuid.UUID, txHash string) error

		// RecordPaymentAttemptFailure increments the retry counter and, once
		// it reaches maxRetries, stores the classification and flags the
		// request for manual review. Reports whether the flag was set.
		RecordPaymentAttemptFailure(ctx context.Context, id uuid.UUID, maxRetries int, errType model.ErrorType, note string) (bool, error)
		RecordPurchaseAttemptFailure(ctx context.Context, id uuid.UUID, maxRetries int, errType model.ErrorType, note string) (bool, error)
	}

	// LedgerClient is the read side needed to recover the prior on-chain
	// record of a candidate's escrow output.
	LedgerClient interface {
		TransactionDetail(ctx context.Context, txHash string) (*ledger.TxDetail, error)
	}

	ClientFactory interface {
		ForSource(source model.PaymentSource) (LedgerClient, error)
	}

	// Vault builds, signs and submits the redeemer-spending transaction.
	Vault interface {
		SubmitRedeem(ctx context.Context, req txvault.RedeemRequest) (string, error)
	}

	Metrics interface {
		ObserveExecution(err error, action string, network model.Network, started time.Time)
	}
)
