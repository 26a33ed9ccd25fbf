package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

const purchaseColumns = `
id, payment_source_id, reference_id, status, COALESCE(result_hash, ''),
submit_result_time, unlock_time, refund_time,
seller_wallet_id, COALESCE(seller_vkey_hash, ''), hot_wallet_id, current_tx_hash,
retry_count, error_type, COALESCE(error_note, ''), error_requires_manual_review,
created_at, updated_at`

// PurchasesAwaitingLock returns purchase requests of the source with the
// given reference id whose lock has been requested or submitted but not yet
// observed on-chain.
func (r *Repository) PurchasesAwaitingLock(ctx context.Context, sourceID uuid.UUID, referenceID string) ([]model.PurchaseRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
SELECT %s FROM purchase_requests
WHERE payment_source_id = $1 AND reference_id = $2 AND status = ANY($3)`, purchaseColumns)

	awaiting := statusList([]model.PurchaseStatus{model.PurchaseRequested, model.PurchaseInitiated})
	rows, err := r.pool.Query(ctx, query, sourceID, referenceID, awaiting)
	if err != nil {
		return nil, fmt.Errorf("query purchases awaiting lock: %w", err)
	}
	defer rows.Close()

	return r.scanPurchases(ctx, rows)
}

// PurchasesAwaitingBatch returns the source's requested purchases with no
// transaction yet, oldest first, skipping those held for manual review.
func (r *Repository) PurchasesAwaitingBatch(ctx context.Context, sourceID uuid.UUID) ([]model.PurchaseRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
SELECT %s FROM purchase_requests
WHERE payment_source_id = $1 AND status = $2
  AND current_tx_hash IS NULL AND NOT error_requires_manual_review
ORDER BY created_at`, purchaseColumns)

	rows, err := r.pool.Query(ctx, query, sourceID, model.PurchaseRequested)
	if err != nil {
		return nil, fmt.Errorf("query purchases awaiting batch: %w", err)
	}
	defer rows.Close()

	return r.scanPurchases(ctx, rows)
}

// MarkPurchaseError puts a purchase request into its error state with a
// classification and note and flags it for manual review.
func (r *Repository) MarkPurchaseError(ctx context.Context, id uuid.UUID, errType model.ErrorType, note string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE purchase_requests
SET status = $2, error_type = $3, error_note = $4,
    error_requires_manual_review = TRUE, updated_at = now()
WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, model.PurchaseError, errType, note); err != nil {
		return fmt.Errorf("mark purchase %s error: %w", id, err)
	}
	return nil
}

// ConfirmPurchaseLock records an observed lock for a purchase request.
func (r *Repository) ConfirmPurchaseLock(ctx context.Context, id uuid.UUID, txHash string) error {
	return r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const query = `
UPDATE purchase_requests
SET status = $2, current_tx_hash = $3, updated_at = now()
WHERE id = $1 AND status = ANY($4)`

		awaiting := statusList([]model.PurchaseStatus{model.PurchaseRequested, model.PurchaseInitiated})
		if _, err := tx.Exec(ctx, query, id, model.PurchaseConfirmed, txHash, awaiting); err != nil {
			return fmt.Errorf("confirm purchase %s: %w", id, err)
		}
		return insertTransactionRecord(ctx, tx, nil, &id, txHash, model.TxConfirmed)
	})
}

// ApplyPurchaseTransition advances a purchase request to next if it is in
// one of the expected prior states. Reports whether a row was updated.
func (r *Repository) ApplyPurchaseTransition(ctx context.Context, sourceID uuid.UUID, referenceID string, expected []model.PurchaseStatus, next model.PurchaseStatus, txHash string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE purchase_requests
SET status = $4, current_tx_hash = $5, updated_at = now()
WHERE payment_source_id = $1 AND reference_id = $2 AND status = ANY($3)`

	tag, err := r.pool.Exec(ctx, query, sourceID, referenceID, statusList(expected), next, txHash)
	if err != nil {
		return false, fmt.Errorf("apply purchase transition to %s: %w", next, err)
	}
	return tag.RowsAffected() > 0, nil
}

// InitiatePurchaseLock records a submitted lock transaction for a batched
// purchase: the initiated status, the committed wallet and a pending
// transaction record.
func (r *Repository) InitiatePurchaseLock(ctx context.Context, id, walletID uuid.UUID, txHash string) error {
	return r.initiatePurchase(ctx, id, model.PurchaseInitiated, walletID, txHash)
}

// InitiatePurchaseAction records a newly submitted action transaction for a
// purchase request.
func (r *Repository) InitiatePurchaseAction(ctx context.Context, id uuid.UUID, status model.PurchaseStatus, walletID uuid.UUID, txHash string) error {
	return r.initiatePurchase(ctx, id, status, walletID, txHash)
}

func (r *Repository) initiatePurchase(ctx context.Context, id uuid.UUID, status model.PurchaseStatus, walletID uuid.UUID, txHash string) error {
	return r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const query = `
UPDATE purchase_requests
SET status = $2, hot_wallet_id = $3, current_tx_hash = $4, updated_at = now()
WHERE id = $1`
		if _, err := tx.Exec(ctx, query, id, status, walletID, txHash); err != nil {
			return fmt.Errorf("initiate purchase action on %s: %w", id, err)
		}
		if err := setWalletPendingTx(ctx, tx, walletID, txHash); err != nil {
			return err
		}
		return insertTransactionRecord(ctx, tx, nil, &id, txHash, model.TxPending)
	})
}

// RecordPurchaseAttemptFailure increments the retry counter and, once the
// budget is exhausted, stores the classification and flags manual review.
func (r *Repository) RecordPurchaseAttemptFailure(ctx context.Context, id uuid.UUID, maxRetries int, errType model.ErrorType, note string) (bool, error) {
	var manualReview bool
	err := r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const countQuery = `
UPDATE purchase_requests
SET retry_count = retry_count + 1, updated_at = now()
WHERE id = $1
RETURNING retry_count`

		var retries int
		if err := tx.QueryRow(ctx, countQuery, id).Scan(&retries); err != nil {
			return fmt.Errorf("count purchase attempt on %s: %w", id, err)
		}
		if retries < maxRetries {
			return nil
		}

		const flagQuery = `
UPDATE purchase_requests
SET error_type = $2, error_note = $3, error_requires_manual_review = TRUE, updated_at = now()
WHERE id = $1`
		if _, err := tx.Exec(ctx, flagQuery, id, errType, note); err != nil {
			return fmt.Errorf("flag purchase %s for manual review: %w", id, err)
		}
		manualReview = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return manualReview, nil
}

func (r *Repository) scanPurchases(ctx context.Context, rows pgx.Rows) ([]model.PurchaseRequest, error) {
	var purchases []model.PurchaseRequest
	for rows.Next() {
		var p model.PurchaseRequest
		if err := rows.Scan(
			&p.ID, &p.PaymentSourceID, &p.ReferenceID, &p.Status, &p.ResultHash,
			&p.SubmitResultTime, &p.UnlockTime, &p.RefundTime,
			&p.SellerWalletID, &p.SellerVkeyHash, &p.HotWalletID, &p.CurrentTxHash,
			&p.RetryCount, &p.ErrorType, &p.ErrorNote, &p.ErrorRequiresManualReview,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase request: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase requests: %w", err)
	}
	rows.Close()

	for i := range purchases {
		amounts, err := loadAmounts(ctx, r.pool, "purchase_request_amounts", purchases[i].ID)
		if err != nil {
			return nil, err
		}
		purchases[i].Amounts = amounts
	}
	return purchases, nil
}
