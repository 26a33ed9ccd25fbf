// Package batcher converts requested purchases into outgoing lock
// transactions: it packs them onto exclusively leased purchasing wallets
// without overspending any wallet, then submits one transaction per wallet.
package batcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/cardano"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
	"github.com/nftmakerio/masumi-payment-service/internal/txvault"
	"github.com/nftmakerio/masumi-payment-service/pkg/workerpool"
)

const (
	// batchCap is the maximum number of escrow outputs per lock transaction.
	batchCap = 10

	// minLockReserve is the smallest lovelace value an escrow output may
	// carry; smaller requested amounts are inflated up to it.
	minLockReserve = 1_952_430

	// submitResultMargin guards against locking funds for an obligation
	// whose result deadline is about to pass.
	submitResultMargin = 5 * time.Minute

	defaultWorkerCount = 4
)

var lockMemo = []string{"Masumi", "PaymentBatched"}

// Service is the payment batching engine.
type Service struct {
	store       Store
	clients     ClientFactory
	vault       Vault
	metrics     Metrics
	logger      *zap.Logger
	now         func() time.Time
	workerCount int
}

// New builds the batching service with the provided dependencies.
func New(store Store, clients ClientFactory, vault Vault, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("batcher metrics is required")
	}
	return &Service{
		store:       store,
		clients:     clients,
		vault:       vault,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
		workerCount: defaultWorkerCount,
	}, nil
}

// Run performs one batching pass over all payment sources. Sources are
// processed concurrently and failures are isolated per source.
func (s *Service) Run(ctx context.Context) error {
	sources, err := s.store.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("list payment sources: %w", err)
	}
	if len(sources) == 0 {
		return nil
	}

	err = workerpool.ForEach(ctx, s.workerCount, sources, s.batchSource)
	if err != nil {
		return fmt.Errorf("batching pass: %w", err)
	}
	return nil
}

func (s *Service) batchSource(ctx context.Context, source model.PaymentSource) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSourceBatch(err, source.Network, started)
	}()

	logger := s.logger.With(
		zap.String("network", string(source.Network)),
		zap.String("contract_address", source.ContractAddress),
	)

	purchases, err := s.store.PurchasesAwaitingBatch(ctx, source.ID)
	if err != nil {
		return fmt.Errorf("list purchases awaiting batch: %w", err)
	}
	purchases, err = s.dropExpired(ctx, purchases, logger)
	if err != nil {
		return err
	}
	if len(purchases) == 0 {
		return nil
	}

	wallets, err := s.store.LeasePurchasingWallets(ctx, source.ID)
	if err != nil {
		return fmt.Errorf("lease purchasing wallets: %w", err)
	}
	if len(wallets) == 0 {
		logger.Info("no purchasing wallet available, deferring batch",
			zap.Int("pending_purchases", len(purchases)))
		return nil
	}

	client, err := s.clients.ForSource(source)
	if err != nil {
		s.releaseWallets(ctx, walletIDs(wallets), logger)
		return fmt.Errorf("ledger client for source %s: %w", source.ID, err)
	}

	assignments, capLimited, err := s.pack(ctx, client, wallets, purchases)
	if err != nil {
		s.releaseWallets(ctx, walletIDs(wallets), logger)
		return err
	}

	assigned := make(map[uuid.UUID]bool)
	var idle []uuid.UUID
	for _, wallet := range wallets {
		batch := assignments[wallet.ID]
		if len(batch) == 0 {
			idle = append(idle, wallet.ID)
			continue
		}
		for _, p := range batch {
			assigned[p.ID] = true
		}
	}
	s.releaseWallets(ctx, idle, logger)

	if !capLimited {
		// With every wallet's full balance simulated and no batch cap hit,
		// whatever is left cannot be funded by this source at all.
		for _, p := range purchases {
			if assigned[p.ID] {
				continue
			}
			if markErr := s.store.MarkPurchaseError(ctx, p.ID, model.ErrorTypeInsufficientFunds, "no purchasing wallet can cover the requested amounts"); markErr != nil {
				return fmt.Errorf("mark purchase %s insufficient: %w", p.ID, markErr)
			}
		}
	}

	for _, wallet := range wallets {
		batch := assignments[wallet.ID]
		if len(batch) == 0 {
			continue
		}
		if err := s.submitBatch(ctx, source, wallet, batch, logger); err != nil {
			return err
		}
	}
	return nil
}

// dropExpired filters out purchases whose result deadline is too close to be
// worth locking funds for and marks them as terminally timed out.
func (s *Service) dropExpired(ctx context.Context, purchases []model.PurchaseRequest, logger *zap.Logger) ([]model.PurchaseRequest, error) {
	cutoff := s.now().Add(submitResultMargin)

	viable := purchases[:0]
	for _, p := range purchases {
		if p.SubmitResultTime.After(cutoff) {
			viable = append(viable, p)
			continue
		}
		logger.Warn("purchase result deadline too close to lock funds",
			zap.String("reference_id", p.ReferenceID),
			zap.Time("submit_result_time", p.SubmitResultTime))
		if err := s.store.MarkPurchaseError(ctx, p.ID, model.ErrorTypeUnknown, "timeout before sending"); err != nil {
			return nil, fmt.Errorf("mark purchase %s timed out: %w", p.ID, err)
		}
	}
	return viable, nil
}

// pack assigns purchases to wallets first-fit in wallet-major order: each
// wallet takes as many still-unassigned purchases, in arrival order, as its
// simulated balance covers, up to the per-transaction cap. The scan never
// restarts, preserving arrival-order fairness over packing optimality.
func (s *Service) pack(
	ctx context.Context,
	client BalanceClient,
	wallets []model.HotWallet,
	purchases []model.PurchaseRequest,
) (map[uuid.UUID][]model.PurchaseRequest, bool, error) {
	assignments := make(map[uuid.UUID][]model.PurchaseRequest, len(wallets))
	taken := make([]bool, len(purchases))
	capLimited := false

	for _, wallet := range wallets {
		balance, err := client.AddressBalance(ctx, wallet.Address)
		if err != nil {
			return nil, false, fmt.Errorf("balance of wallet %s: %w", wallet.ID, err)
		}
		remaining := model.NewAmountSet(balance)

		for i, p := range purchases {
			if taken[i] {
				continue
			}
			if len(assignments[wallet.ID]) == batchCap {
				if anyUnassigned(taken) {
					capLimited = true
				}
				break
			}
			required := reservedAmounts(p.Amounts)
			if !remaining.Covers(required) {
				continue
			}
			remaining.Deduct(required)
			taken[i] = true
			assignments[wallet.ID] = append(assignments[wallet.ID], p)
		}
	}
	return assignments, capLimited, nil
}

func (s *Service) submitBatch(
	ctx context.Context,
	source model.PaymentSource,
	wallet model.HotWallet,
	batch []model.PurchaseRequest,
	logger *zap.Logger,
) error {
	outputs := make([]txvault.Output, 0, len(batch))
	for _, p := range batch {
		datum, err := cardano.EncodeContractDatum(cardano.ContractDatum{
			BuyerVkeyHash:    wallet.VkeyHash,
			SellerVkeyHash:   p.SellerVkeyHash,
			ReferenceID:      p.ReferenceID,
			SubmitResultTime: p.SubmitResultTime,
			UnlockTime:       p.UnlockTime,
			RefundTime:       p.RefundTime,
		})
		if err != nil {
			return fmt.Errorf("encode record for %q: %w", p.ReferenceID, err)
		}
		outputs = append(outputs, txvault.Output{
			Address: source.ContractAddress,
			Datum:   datum,
			Amounts: reservedAmounts(p.Amounts),
		})
	}

	started := time.Now()
	txHash, err := s.vault.SubmitLock(ctx, txvault.LockRequest{
		WalletID: wallet.ID,
		Memo:     lockMemo,
		Outputs:  outputs,
	})
	s.metrics.ObserveSubmission(err, started)
	if err != nil {
		// Requests stay in their requested state for the next pass; the
		// wallet goes back into the pool since nothing is in flight on it.
		logger.Error("lock submission failed, deferring batch",
			zap.String("wallet_id", wallet.ID.String()),
			zap.Int("batch_size", len(batch)),
			zap.Error(err))
		s.releaseWallets(ctx, []uuid.UUID{wallet.ID}, logger)
		return nil
	}

	for _, p := range batch {
		if err := s.store.InitiatePurchaseLock(ctx, p.ID, wallet.ID, txHash); err != nil {
			return fmt.Errorf("initiate purchase %s: %w", p.ID, err)
		}
	}
	logger.Info("lock transaction submitted",
		zap.String("wallet_id", wallet.ID.String()),
		zap.String("tx_hash", txHash),
		zap.Int("batch_size", len(batch)))
	return nil
}

func (s *Service) releaseWallets(ctx context.Context, ids []uuid.UUID, logger *zap.Logger) {
	if len(ids) == 0 {
		return
	}
	if err := s.store.ReleaseWalletLeases(context.WithoutCancel(ctx), ids); err != nil {
		logger.Error("failed to release wallet leases; affected wallets stall until cleared manually",
			zap.Any("wallet_ids", ids),
			zap.Error(err))
	}
}

// reservedAmounts inflates the base-unit amount to at least the minimum
// escrow output reserve, leaving other units untouched.
func reservedAmounts(amounts []model.Amount) []model.Amount {
	reserve := decimal.NewFromInt(minLockReserve)
	out := make([]model.Amount, len(amounts))
	copy(out, amounts)

	hasLovelace := false
	for i, a := range out {
		if a.Unit != model.UnitLovelace {
			continue
		}
		hasLovelace = true
		if a.Quantity.LessThan(reserve) {
			out[i].Quantity = reserve
		}
	}
	if !hasLovelace {
		out = append(out, model.Amount{Unit: model.UnitLovelace, Quantity: reserve})
	}
	return out
}

func anyUnassigned(taken []bool) bool {
	for _, t := range taken {
		if !t {
			return true
		}
	}
	return false
}

func walletIDs(wallets []model.HotWallet) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(wallets))
	for _, w := range wallets {
		ids = append(ids, w.ID)
	}
	return ids
}
