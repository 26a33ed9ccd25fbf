// Package executor implements the four action executors that advance
// obligations toward a terminal state: submitting results, collecting
// completed payments, reclaiming timed-out purchases and denying refunds.
// One engine drives them all; a policy supplies the eligibility query, the
// redeemer and the produced outputs.
package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/cardano"
	"github.com/nftmakerio/masumi-payment-service/internal/ledger"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/internal/txvault"
	"github.com/nftmakerio/masumi-payment-service/pkg/workerpool"
)

const defaultWorkerCount = 4

// Executor runs one action policy over all payment sources.
type Executor struct {
	store       Store
	clients     ClientFactory
	vault       Vault
	metrics     Metrics
	logger      *zap.Logger
	policy      policy
	now         func() time.Time
	workerCount int
}

func newExecutor(store Store, clients ClientFactory, vault Vault, metrics Metrics, logger *zap.Logger, p policy) (*Executor, error) {
	if metrics == nil {
		return nil, errors.New("executor metrics is required")
	}
	return &Executor{
		store:       store,
		clients:     clients,
		vault:       vault,
		metrics:     metrics,
		logger:      logger.With(zap.String("executor", p.name)),
		policy:      p,
		now:         time.Now,
		workerCount: defaultWorkerCount,
	}, nil
}

// Name identifies the executor for scheduling and logging.
func (e *Executor) Name() string {
	return e.policy.name
}

// Run performs one pass over all payment sources. Sources are processed
// concurrently; per-candidate failures are isolated and surface through the
// retry counter, not through the pass's error.
func (e *Executor) Run(ctx context.Context) error {
	sources, err := e.store.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("list payment sources: %w", err)
	}
	if len(sources) == 0 {
		return nil
	}

	err = workerpool.ForEach(ctx, e.workerCount, sources, e.executeSource)
	if err != nil {
		return fmt.Errorf("%s pass: %w", e.policy.name, err)
	}
	return nil
}

func (e *Executor) executeSource(ctx context.Context, source model.PaymentSource) (err error) {
	started := time.Now()
	defer func() {
		e.metrics.ObserveExecution(err, e.policy.name, source.Network, started)
	}()

	candidates, err := e.policy.candidates(ctx, e.store, source.ID, e.now())
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil
	}

	client, err := e.clients.ForSource(source)
	if err != nil {
		return fmt.Errorf("ledger client for source %s: %w", source.ID, err)
	}

	// One request per wallet per pass: a wallet carries at most one
	// in-flight transaction, so siblings on the same wallet wait for the
	// next tick.
	for _, c := range dedupeByWallet(candidates) {
		if err := e.executeCandidate(ctx, client, source, c); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) executeCandidate(ctx context.Context, client LedgerClient, source model.PaymentSource, c Candidate) error {
	logger := e.logger.With(
		zap.String("reference_id", c.ReferenceID),
		zap.String("wallet_id", c.WalletID.String()),
	)

	leased, err := e.store.LeaseWallet(ctx, c.WalletID)
	if err != nil {
		return fmt.Errorf("lease wallet %s: %w", c.WalletID, err)
	}
	if !leased {
		logger.Debug("wallet already committed, deferring candidate")
		return nil
	}

	txHash, execErr := e.submit(ctx, client, source, c)
	if execErr != nil {
		e.releaseWallet(ctx, c.WalletID, logger)
		return e.recordFailure(ctx, source, c, execErr, logger)
	}

	switch e.policy.kind {
	case kindPayment:
		err = e.store.InitiatePaymentAction(ctx, c.RequestID, e.policy.nextPayment, c.WalletID, txHash)
	case kindPurchase:
		err = e.store.InitiatePurchaseAction(ctx, c.RequestID, e.policy.nextPurchase, c.WalletID, txHash)
	}
	if err != nil {
		return fmt.Errorf("persist initiated action for %s: %w", c.RequestID, err)
	}

	logger.Info("action transaction submitted", zap.String("tx_hash", txHash))
	return nil
}

func (e *Executor) submit(ctx context.Context, client LedgerClient, source model.PaymentSource, c Candidate) (string, error) {
	prior, err := e.priorRecord(ctx, client, source, c)
	if err != nil {
		return "", err
	}
	record := e.policy.mutate(*prior, c)

	redeemer, err := cardano.EncodeRedeemer(e.policy.action)
	if err != nil {
		return "", fmt.Errorf("encode redeemer: %w", err)
	}
	invalidBefore, invalidHereafter, err := cardano.ValidityBounds(source.Network, e.now())
	if err != nil {
		return "", fmt.Errorf("validity bounds: %w", err)
	}

	var outputs []txvault.Output
	if e.policy.outputs != nil {
		outputs, err = e.policy.outputs(source, c, record)
		if err != nil {
			return "", fmt.Errorf("build outputs: %w", err)
		}
	}

	return e.vault.SubmitRedeem(ctx, txvault.RedeemRequest{
		WalletID:         c.WalletID,
		UtxoTxHash:       c.CurrentTxHash,
		Redeemer:         redeemer,
		Memo:             []string{"Masumi", e.policy.name},
		InvalidBefore:    invalidBefore,
		InvalidHereafter: invalidHereafter,
		Outputs:          outputs,
	})
}

// priorRecord recovers the decoded on-chain record of the candidate's escrow
// output from its current transaction.
func (e *Executor) priorRecord(ctx context.Context, client LedgerClient, source model.PaymentSource, c Candidate) (*cardano.ContractDatum, error) {
	detail, err := client.TransactionDetail(ctx, c.CurrentTxHash)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction %s: %w", c.CurrentTxHash, err)
	}
	for _, output := range detail.OutputsAt(source.ContractAddress) {
		if output.InlineDatum == nil {
			continue
		}
		record := cardano.DecodeContractDatum(output.InlineDatum)
		if record != nil && record.ReferenceID == c.ReferenceID {
			return record, nil
		}
	}
	return nil, fmt.Errorf("no decodable record for %q in transaction %s", c.ReferenceID, c.CurrentTxHash)
}

// recordFailure increments the candidate's retry counter and keeps the pass
// going: a failed candidate must not abort its siblings.
func (e *Executor) recordFailure(ctx context.Context, source model.PaymentSource, c Candidate, execErr error, logger *zap.Logger) error {
	errType := model.ErrorTypeUnknown
	if errors.Is(execErr, ledger.ErrNetwork) {
		errType = model.ErrorTypeNetwork
	}

	var (
		manualReview bool
		err          error
	)
	switch e.policy.kind {
	case kindPayment:
		manualReview, err = e.store.RecordPaymentAttemptFailure(ctx, c.RequestID, source.MaxRetries, errType, execErr.Error())
	case kindPurchase:
		manualReview, err = e.store.RecordPurchaseAttemptFailure(ctx, c.RequestID, source.MaxRetries, errType, execErr.Error())
	}
	if err != nil {
		return fmt.Errorf("record attempt failure for %s: %w", c.RequestID, err)
	}

	if manualReview {
		logger.Error("retry budget exhausted, flagged for manual review",
			zap.Int("retries", c.RetryCount+1),
			zap.Error(execErr))
	} else {
		logger.Warn("action attempt failed, will retry next pass",
			zap.Int("retries", c.RetryCount+1),
			zap.Error(execErr))
	}
	return nil
}

func (e *Executor) releaseWallet(ctx context.Context, walletID uuid.UUID, logger *zap.Logger) {
	if err := e.store.ReleaseWalletLease(context.WithoutCancel(ctx), walletID); err != nil {
		logger.Error("failed to release wallet lease; wallet stalls until cleared manually",
			zap.String("wallet_id", walletID.String()),
			zap.Error(err))
	}
}

func dedupeByWallet(candidates []Candidate) []Candidate {
	seen := make(map[uuid.UUID]bool, len(candidates))
	deduped := candidates[:0]
	for _, c := range candidates {
		if seen[c.WalletID] {
			continue
		}
		seen[c.WalletID] = true
		deduped = append(deduped, c)
	}
	return deduped
}
