// Package reconciler keeps the obligation store an eventually-consistent
// mirror of each payment source's escrow address: it ingests confirmed chain
// transactions, classifies them as new locks or lifecycle transitions, and
// advances a per-source resumable checkpoint.
package reconciler

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
	"github.com/nftmakerio/masumi-payment-service/pkg/workerpool"
)

const (
	pageSize           = 25
	defaultWorkerCount = 4
)

// Service is the ledger reconciliation engine.
type Service struct {
	store       Store
	clients     ClientFactory
	metrics     Metrics
	logger      *zap.Logger
	workerCount int
}

// New builds the reconciliation service with the provided dependencies.
func New(store Store, clients ClientFactory, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	return &Service{
		store:       store,
		clients:     clients,
		metrics:     metrics,
		logger:      logger,
		workerCount: defaultWorkerCount,
	}, nil
}

// Run performs one reconciliation pass over every payment source that is not
// already being synced by another process instance. Sources are processed
// concurrently and failures are isolated per source.
func (s *Service) Run(ctx context.Context) error {
	sources, err := s.store.AcquireSyncingSources(ctx)
	if err != nil {
		return fmt.Errorf("acquire syncing sources: %w", err)
	}
	if len(sources) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(sources))
	for _, source := range sources {
		ids = append(ids, source.ID)
	}
	defer func() {
		// A source whose syncing flag stays set is never scanned again, so a
		// failure here needs operator attention, not just a retry.
		if releaseErr := s.store.ReleaseSyncingSources(context.WithoutCancel(ctx), ids); releaseErr != nil {
			s.logger.Error("failed to clear syncing leases; affected sources stall until cleared manually",
				zap.Any("source_ids", ids),
				zap.Error(releaseErr))
		}
	}()

	err = workerpool.ForEach(ctx, s.workerCount, sources, s.syncSource)
	if err != nil {
		return fmt.Errorf("reconciliation pass: %w", err)
	}
	return nil
}

func (s *Service) syncSource(ctx context.Context, source model.PaymentSource) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSourceSync(err, source.Network, started)
	}()

	logger := s.logger.With(
		zap.String("network", string(source.Network)),
		zap.String("contract_address", source.ContractAddress),
	)

	client, err := s.clients.ForSource(source)
	if err != nil {
		return fmt.Errorf("ledger client for source %s: %w", source.ID, err)
	}

	page := source.Checkpoint.Page
	if page < 1 {
		page = 1
	}
	lastSeen := source.Checkpoint.LastSeenTxHash

	for {
		txs, err := client.AddressTransactions(ctx, source.ContractAddress, page, pageSize)
		if err != nil {
			return fmt.Errorf("list transactions page %d: %w", page, err)
		}
		if len(txs) == 0 {
			return nil
		}
		fullPage := len(txs) == pageSize

		if idx := indexOfTx(txs, lastSeen); idx != -1 {
			if idx == len(txs)-1 && !fullPage {
				// Everything on this page is already processed.
				return nil
			}
			txs = txs[idx+1:]
		}

		for _, summary := range txs {
			if err := s.processTransaction(ctx, client, source, summary.TxHash, logger); err != nil {
				return err
			}
			lastSeen = summary.TxHash
			checkpoint := model.Checkpoint{Page: page, LastSeenTxHash: lastSeen}
			if err := s.store.UpdateCheckpoint(ctx, source.ID, checkpoint); err != nil {
				return fmt.Errorf("persist checkpoint after %s: %w", lastSeen, err)
			}
		}

		if !fullPage {
			return nil
		}
		page++
		// Persist the page advance so a restart resumes on the new page
		// instead of re-reading an exhausted one forever.
		if err := s.store.UpdateCheckpoint(ctx, source.ID, model.Checkpoint{Page: page, LastSeenTxHash: lastSeen}); err != nil {
			return fmt.Errorf("persist page advance to %d: %w", page, err)
		}
	}
}

func (s *Service) processTransaction(
	ctx context.Context,
	client LedgerClient,
	source model.PaymentSource,
	txHash string,
	logger *zap.Logger,
) (err error) {
	started := time.Now()
	kind := "lock"
	defer func() {
		s.metrics.ObserveTransaction(err, kind, started)
	}()

	detail, err := client.TransactionDetail(ctx, txHash)
	if err != nil {
		return fmt.Errorf("fetch transaction %s: %w", txHash, err)
	}

	valueInputs := detail.InputsAt(source.ContractAddress)
	valueOutputs := detail.OutputsAt(source.ContractAddress)

	if len(detail.Redeemers) == 0 {
		if len(valueInputs) != 0 {
			// A contract input without a redeemer cannot be a lock; not ours.
			return nil
		}
		if err = s.applyLock(ctx, source, detail, valueOutputs, logger); err != nil {
			return err
		}
	} else {
		kind = "transition"
		if err = s.applyTransition(ctx, source, detail, valueInputs, logger); err != nil {
			return err
		}
	}

	// Seeing the transaction on-chain releases whichever hot wallet was
	// committed to it.
	if err = s.store.ClearWalletLeaseByTx(ctx, source.ID, txHash); err != nil {
		return fmt.Errorf("clear wallet lease for %s: %w", txHash, err)
	}
	return nil
}

// applyLock handles a transaction locking new funds at the contract: every
// decodable escrow output is matched against a registered obligation.
func (s *Service) applyLock(
	ctx context.Context,
	source model.PaymentSource,
	detail *ledger.TxDetail,
	valueOutputs []ledger.Utxo,
	logger *zap.Logger,
) error {
	for _, output := range valueOutputs {
		if output.InlineDatum == nil {
			continue
		}
		record := cardano.DecodeContractDatum(output.InlineDatum)
		if record == nil {
			logger.Debug("skipping output with undecodable record",
				zap.String("tx_hash", detail.TxHash),
				zap.Int("output_index", output.OutputIndex))
			continue
		}

		if err := s.confirmPurchaseSide(ctx, source, record.ReferenceID, detail.TxHash); err != nil {
			return err
		}
		if err := s.confirmPaymentSide(ctx, source, record, output, detail.TxHash); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) confirmPurchaseSide(ctx context.Context, source model.PaymentSource, referenceID, txHash string) error {
	purchases, err := s.store.PurchasesAwaitingLock(ctx, source.ID, referenceID)
	if err != nil {
		return fmt.Errorf("find purchases for %q: %w", referenceID, err)
	}
	switch {
	case len(purchases) == 0:
		// Not registered with us, or a foreign lock at our address.
		return nil
	case len(purchases) > 1:
		// Unreachable while the store's uniqueness constraints hold.
		for _, p := range purchases {
			if err := s.store.MarkPurchaseError(ctx, p.ID, model.ErrorTypeUnknown, "duplicate purchase for reference id"); err != nil {
				return fmt.Errorf("mark duplicate purchase %s: %w", p.ID, err)
			}
		}
		return nil
	default:
		if err := s.store.ConfirmPurchaseLock(ctx, purchases[0].ID, txHash); err != nil {
			return fmt.Errorf("confirm purchase %s: %w", purchases[0].ID, err)
		}
		return nil
	}
}

func (s *Service) confirmPaymentSide(
	ctx context.Context,
	source model.PaymentSource,
	record *cardano.ContractDatum,
	output ledger.Utxo,
	txHash string,
) error {
	payments, err := s.store.PaymentsAwaitingLock(ctx, source.ID, record.ReferenceID)
	if err != nil {
		return fmt.Errorf("find payments for %q: %w", record.ReferenceID, err)
	}
	switch {
	case len(payments) == 0:
		return nil
	case len(payments) > 1:
		for _, p := range payments {
			if err := s.store.MarkPaymentError(ctx, p.ID, model.ErrorTypeUnknown, "duplicate payment for reference id"); err != nil {
				return fmt.Errorf("mark duplicate payment %s: %w", p.ID, err)
			}
		}
		return nil
	default:
		status := model.PaymentInvalid
		if amountsMatch(payments[0].Amounts, output.Amounts) {
			status = model.PaymentConfirmed
		}
		if err := s.store.FinalizePaymentLock(ctx, payments[0].ID, status, txHash, record.BuyerVkeyHash); err != nil {
			return fmt.Errorf("finalize payment %s: %w", payments[0].ID, err)
		}
		return nil
	}
}

// applyTransition handles a redeemer-spending transaction by mapping the
// redeemer's action onto both sides of the obligation.
func (s *Service) applyTransition(
	ctx context.Context,
	source model.PaymentSource,
	detail *ledger.TxDetail,
	valueInputs []ledger.Utxo,
	logger *zap.Logger,
) error {
	if len(detail.Redeemers) != 1 {
		logger.Debug("skipping transaction with multiple redeemers",
			zap.String("tx_hash", detail.TxHash),
			zap.Int("redeemers", len(detail.Redeemers)))
		return nil
	}

	action, ok := cardano.ClassifyRedeemer(detail.Redeemers[0])
	if !ok {
		logger.Warn("skipping transaction with unrecognized redeemer",
			zap.String("tx_hash", detail.TxHash))
		return nil
	}
	transition, ok := actionTransitions[action]
	if !ok {
		logger.Warn("skipping transaction with unmapped action",
			zap.String("tx_hash", detail.TxHash),
			zap.Stringer("action", action))
		return nil
	}

	// The prior record identifies the obligation the spent output belonged to.
	var prior *cardano.ContractDatum
	for _, input := range valueInputs {
		if input.InlineDatum == nil {
			continue
		}
		if prior = cardano.DecodeContractDatum(input.InlineDatum); prior != nil {
			break
		}
	}
	if prior == nil {
		logger.Debug("skipping transition without decodable input record",
			zap.String("tx_hash", detail.TxHash))
		return nil
	}

	applied, err := s.store.ApplyPaymentTransition(ctx, source.ID, prior.ReferenceID, transition.paymentPrior, transition.payment, detail.TxHash)
	if err != nil {
		return fmt.Errorf("apply payment transition %s for %q: %w", action, prior.ReferenceID, err)
	}
	purchaseApplied, err := s.store.ApplyPurchaseTransition(ctx, source.ID, prior.ReferenceID, transition.purchasePrior, transition.purchase, detail.TxHash)
	if err != nil {
		return fmt.Errorf("apply purchase transition %s for %q: %w", action, prior.ReferenceID, err)
	}

	if !applied && !purchaseApplied {
		logger.Debug("transition matched no request in an expected state",
			zap.String("tx_hash", detail.TxHash),
			zap.String("reference_id", prior.ReferenceID),
			zap.Stringer("action", action))
	}
	return nil
}

func amountsMatch(recorded, onchain []model.Amount) bool {
	chain := model.NewAmountSet(onchain)
	for _, a := range recorded {
		have, ok := chain[a.Unit]
		if !ok || !have.Equal(a.Quantity) {
			return false
		}
	}
	return true
}

func indexOfTx(txs []ledger.TxSummary, txHash string) int {
	if txHash == "" {
		return -1
	}
	for i, tx := range txs {
		if tx.TxHash == txHash {
			return i
		}
	}
	return -1
}
