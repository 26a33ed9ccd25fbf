package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

const paymentColumns = `
id, payment_source_id, reference_id, status, COALESCE(result_hash, ''),
submit_result_time, unlock_time, refund_time,
buyer_wallet_id, hot_wallet_id, current_tx_hash,
retry_count, error_type, COALESCE(error_note, ''), error_requires_manual_review,
created_at, updated_at`

// PaymentsAwaitingLock returns payment requests of the source with the given
// reference id that still await their on-chain lock.
func (r *Repository) PaymentsAwaitingLock(ctx context.Context, sourceID uuid.UUID, referenceID string) ([]model.PaymentRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
SELECT %s FROM payment_requests
WHERE payment_source_id = $1 AND reference_id = $2 AND status = $3`, paymentColumns)

	rows, err := r.pool.Query(ctx, query, sourceID, referenceID, model.PaymentRequested)
	if err != nil {
		return nil, fmt.Errorf("query payments awaiting lock: %w", err)
	}
	defer rows.Close()

	return r.scanPayments(ctx, rows)
}

// MarkPaymentError puts a payment request into its error state with a
// classification and note and flags it for manual review.
func (r *Repository) MarkPaymentError(ctx context.Context, id uuid.UUID, errType model.ErrorType, note string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE payment_requests
SET status = $2, error_type = $3, error_note = $4,
    error_requires_manual_review = TRUE, updated_at = now()
WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, model.PaymentError, errType, note); err != nil {
		return fmt.Errorf("mark payment %s error: %w", id, err)
	}
	return nil
}

// FinalizePaymentLock records an observed lock for a payment request: the
// confirmed (or invalid) status, the lock transaction and the buyer wallet,
// created from the key hash if not yet known.
func (r *Repository) FinalizePaymentLock(ctx context.Context, id uuid.UUID, status model.PaymentStatus, txHash, buyerVkeyHash string) error {
	return r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const walletQuery = `
INSERT INTO counterparty_wallets (id, payment_source_id, vkey_hash)
SELECT gen_random_uuid(), payment_source_id, $2 FROM payment_requests WHERE id = $1
ON CONFLICT (payment_source_id, vkey_hash) DO UPDATE SET vkey_hash = EXCLUDED.vkey_hash
RETURNING id`

		var walletID uuid.UUID
		if err := tx.QueryRow(ctx, walletQuery, id, buyerVkeyHash).Scan(&walletID); err != nil {
			return fmt.Errorf("ensure buyer wallet %q: %w", buyerVkeyHash, err)
		}

		const updateQuery = `
UPDATE payment_requests
SET status = $2, current_tx_hash = $3, buyer_wallet_id = $4, updated_at = now()
WHERE id = $1`
		if _, err := tx.Exec(ctx, updateQuery, id, status, txHash, walletID); err != nil {
			return fmt.Errorf("finalize payment %s: %w", id, err)
		}

		return insertTransactionRecord(ctx, tx, &id, nil, txHash, model.TxConfirmed)
	})
}

// ApplyPaymentTransition advances a payment request to next if it is in one
// of the expected prior states. Reports whether a row was updated; replays
// of an already applied transition match nothing.
func (r *Repository) ApplyPaymentTransition(ctx context.Context, sourceID uuid.UUID, referenceID string, expected []model.PaymentStatus, next model.PaymentStatus, txHash string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE payment_requests
SET status = $4, current_tx_hash = $5, updated_at = now()
WHERE payment_source_id = $1 AND reference_id = $2 AND status = ANY($3)`

	tag, err := r.pool.Exec(ctx, query, sourceID, referenceID, statusList(expected), next, txHash)
	if err != nil {
		return false, fmt.Errorf("apply payment transition to %s: %w", next, err)
	}
	return tag.RowsAffected() > 0, nil
}

// InitiatePaymentAction records a newly submitted action transaction: the
// initiated status, the committed wallet and a pending transaction record
// replacing the previous current one.
func (r *Repository) InitiatePaymentAction(ctx context.Context, id uuid.UUID, status model.PaymentStatus, walletID uuid.UUID, txHash string) error {
	return r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const query = `
UPDATE payment_requests
SET status = $2, hot_wallet_id = $3, current_tx_hash = $4, updated_at = now()
WHERE id = $1`
		if _, err := tx.Exec(ctx, query, id, status, walletID, txHash); err != nil {
			return fmt.Errorf("initiate payment action on %s: %w", id, err)
		}
		if err := setWalletPendingTx(ctx, tx, walletID, txHash); err != nil {
			return err
		}
		return insertTransactionRecord(ctx, tx, &id, nil, txHash, model.TxPending)
	})
}

// RecordPaymentAttemptFailure increments the retry counter and, once the
// budget is exhausted, stores the classification and flags manual review.
func (r *Repository) RecordPaymentAttemptFailure(ctx context.Context, id uuid.UUID, maxRetries int, errType model.ErrorType, note string) (bool, error) {
	var manualReview bool
	err := r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const countQuery = `
UPDATE payment_requests
SET retry_count = retry_count + 1, updated_at = now()
WHERE id = $1
RETURNING retry_count`

		var retries int
		if err := tx.QueryRow(ctx, countQuery, id).Scan(&retries); err != nil {
			return fmt.Errorf("count payment attempt on %s: %w", id, err)
		}
		if retries < maxRetries {
			return nil
		}

		const flagQuery = `
UPDATE payment_requests
SET error_type = $2, error_note = $3, error_requires_manual_review = TRUE, updated_at = now()
WHERE id = $1`
		if _, err := tx.Exec(ctx, flagQuery, id, errType, note); err != nil {
			return fmt.Errorf("flag payment %s for manual review: %w", id, err)
		}
		manualReview = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return manualReview, nil
}

func (r *Repository) scanPayments(ctx context.Context, rows pgx.Rows) ([]model.PaymentRequest, error) {
	var payments []model.PaymentRequest
	for rows.Next() {
		var p model.PaymentRequest
		if err := rows.Scan(
			&p.ID, &p.PaymentSourceID, &p.ReferenceID, &p.Status, &p.ResultHash,
			&p.SubmitResultTime, &p.UnlockTime, &p.RefundTime,
			&p.BuyerWalletID, &p.HotWalletID, &p.CurrentTxHash,
			&p.RetryCount, &p.ErrorType, &p.ErrorNote, &p.ErrorRequiresManualReview,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment request: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment requests: %w", err)
	}
	rows.Close()

	for i := range payments {
		amounts, err := loadAmounts(ctx, r.pool, "payment_request_amounts", payments[i].ID)
		if err != nil {
			return nil, err
		}
		payments[i].Amounts = amounts
	}
	return payments, nil
}

func statusList[T ~string](statuses []T) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
