package executor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/cardano"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/internal/txvault"
)

const (
	// submitResultMargin is how far past the submit-result time a request
	// must be before the result is pushed on-chain.
	submitResultMargin = time.Minute

	// collectUnlockMargin keeps a block-time safety distance to the unlock
	// deadline when withdrawing.
	collectUnlockMargin = 15 * time.Minute

	// denyRefundMargin keeps the same distance to the refund deadline: past
	// it the contract no longer accepts a denial.
	denyRefundMargin = 15 * time.Minute

	// timeoutRefundMargin reclaims funds once the seller's result window is
	// this close to elapsed.
	timeoutRefundMargin = 25 * time.Minute

	// minCollectionFee is the smallest lovelace fee retained on collection;
	// the permille fee rate applies above it.
	minCollectionFee = 1_435_230
)

type requestKind int

const (
	kindPayment requestKind = iota
	kindPurchase
)

// policy is what distinguishes the four executors: which requests are
// eligible, which redeemer is produced, how the on-chain record changes and
// which outputs the spending transaction pays.
type policy struct {
	name   string
	action cardano.Action
	kind   requestKind

	nextPayment  model.PaymentStatus
	nextPurchase model.PurchaseStatus

	candidates func(ctx context.Context, store Store, sourceID uuid.UUID, now time.Time) ([]Candidate, error)
	mutate     func(prior cardano.ContractDatum, c Candidate) cardano.ContractDatum
	// outputs may be nil: the vault then returns the spent value to the
	// submitting wallet.
	outputs func(source model.PaymentSource, c Candidate, record cardano.ContractDatum) ([]txvault.Output, error)
}

// NewSubmitResult builds the executor that attaches a produced result hash to
// a confirmed obligation before the result window closes.
func NewSubmitResult(store Store, clients ClientFactory, vault Vault, metrics Metrics, logger *zap.Logger) (*Executor, error) {
	return newExecutor(store, clients, vault, metrics, logger, policy{
		name:        "submit_result",
		action:      cardano.ActionWithdrawDisputed,
		kind:        kindPayment,
		nextPayment: model.CompletedInitiated,
		candidates: func(ctx context.Context, store Store, sourceID uuid.UUID, now time.Time) ([]Candidate, error) {
			return store.SubmitResultCandidates(ctx, sourceID, now.Add(-submitResultMargin))
		},
		mutate: func(prior cardano.ContractDatum, c Candidate) cardano.ContractDatum {
			prior.ResultHash = c.ResultHash
			return prior
		},
		outputs: relockOutputs,
	})
}

// NewCollect builds the executor that withdraws a completed obligation's
// funds, splitting off the service fee.
func NewCollect(store Store, clients ClientFactory, vault Vault, metrics Metrics, logger *zap.Logger) (*Executor, error) {
	return newExecutor(store, clients, vault, metrics, logger, policy{
		name:        "collect",
		action:      cardano.ActionWithdraw,
		kind:        kindPayment,
		nextPayment: model.CompletedInitiated,
		candidates: func(ctx context.Context, store Store, sourceID uuid.UUID, now time.Time) ([]Candidate, error) {
			return store.CollectCandidates(ctx, sourceID, now.Add(collectUnlockMargin))
		},
		mutate: func(prior cardano.ContractDatum, _ Candidate) cardano.ContractDatum {
			return prior
		},
		outputs: collectOutputs,
	})
}

// NewTimeoutRefund builds the executor that reclaims a purchase whose seller
// never produced a result within the window.
func NewTimeoutRefund(store Store, clients ClientFactory, vault Vault, metrics Metrics, logger *zap.Logger) (*Executor, error) {
	return newExecutor(store, clients, vault, metrics, logger, policy{
		name:         "timeout_refund",
		action:       cardano.ActionWithdrawRefund,
		kind:         kindPurchase,
		nextPurchase: model.RefundInitiated,
		candidates: func(ctx context.Context, store Store, sourceID uuid.UUID, now time.Time) ([]Candidate, error) {
			return store.TimeoutRefundCandidates(ctx, sourceID, now.Add(timeoutRefundMargin))
		},
		mutate: func(prior cardano.ContractDatum, _ Candidate) cardano.ContractDatum {
			return prior
		},
	})
}

// NewDenyRefund builds the executor that contests a buyer's refund request
// for an obligation whose result was delivered.
func NewDenyRefund(store Store, clients ClientFactory, vault Vault, metrics Metrics, logger *zap.Logger) (*Executor, error) {
	return newExecutor(store, clients, vault, metrics, logger, policy{
		name:        "deny_refund",
		action:      cardano.ActionDenyRefund,
		kind:        kindPayment,
		nextPayment: model.RefundDeniedInitiated,
		candidates: func(ctx context.Context, store Store, sourceID uuid.UUID, now time.Time) ([]Candidate, error) {
			return store.DenyRefundCandidates(ctx, sourceID, now.Add(denyRefundMargin))
		},
		mutate: func(prior cardano.ContractDatum, _ Candidate) cardano.ContractDatum {
			prior.RefundDenied = true
			return prior
		},
		outputs: relockOutputs,
	})
}

// relockOutputs keeps the full value locked at the contract under the
// updated record.
func relockOutputs(source model.PaymentSource, c Candidate, record cardano.ContractDatum) ([]txvault.Output, error) {
	datum, err := cardano.EncodeContractDatum(record)
	if err != nil {
		return nil, err
	}
	return []txvault.Output{{
		Address: source.ContractAddress,
		Datum:   datum,
		Amounts: c.Amounts,
	}}, nil
}

// collectOutputs splits the withdrawn value between the collection wallet
// and the fee receiver: the fee is the source's permille rate on the base
// unit, floored, but never below the minimum collection fee. Non-base units
// go to the collection wallet in full.
func collectOutputs(source model.PaymentSource, c Candidate, _ cardano.ContractDatum) ([]txvault.Output, error) {
	var collected []model.Amount
	fee := decimal.NewFromInt(minCollectionFee)

	for _, a := range c.Amounts {
		if a.Unit != model.UnitLovelace {
			collected = append(collected, a)
			continue
		}
		rated := a.Quantity.
			Mul(decimal.NewFromInt(source.FeePermille)).
			Div(decimal.NewFromInt(1000)).
			Floor()
		if rated.GreaterThan(fee) {
			fee = rated
		}
		if !a.Quantity.GreaterThan(fee) {
			// The locked base value does not clear the fee floor; the fee
			// receiver takes all of it and the collection side gets none.
			fee = a.Quantity
			continue
		}
		collected = append(collected, model.Amount{Unit: a.Unit, Quantity: a.Quantity.Sub(fee)})
	}

	outputs := make([]txvault.Output, 0, 2)
	if len(collected) > 0 {
		outputs = append(outputs, txvault.Output{Address: source.CollectionAddress, Amounts: collected})
	}
	outputs = append(outputs, txvault.Output{
		Address: source.FeeReceiverAddress,
		Amounts: []model.Amount{{Unit: model.UnitLovelace, Quantity: fee}},
	})
	return outputs, nil
}
