package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

// Payment-side actions run from one of the source's unleased selling
// wallets; the lateral join picks the oldest so every candidate of a pass
// proposes the same wallet and the per-wallet dedup bounds work per tick.
const paymentCandidateQuery = `
SELECT p.id, p.reference_id, COALESCE(p.result_hash, ''),
       p.submit_result_time, p.unlock_time, p.refund_time,
       w.id, w.vkey_hash, p.current_tx_hash, p.retry_count
FROM payment_requests p
JOIN LATERAL (
    SELECT id, vkey_hash FROM hot_wallets
    WHERE payment_source_id = p.payment_source_id AND type = 'Selling' AND locked_at IS NULL
    ORDER BY created_at
    LIMIT 1
) w ON TRUE
WHERE p.payment_source_id = $1
  AND p.current_tx_hash IS NOT NULL
  AND NOT p.error_requires_manual_review`

const submitResultCandidateQuery = paymentCandidateQuery + `
  AND p.status = ANY($2)
  AND p.result_hash <> ''
  AND p.submit_result_time <= $3
ORDER BY p.created_at`

const collectCandidateQuery = paymentCandidateQuery + `
  AND p.status = $2
  AND p.result_hash <> ''
  AND p.unlock_time >= $3
ORDER BY p.created_at`

const denyRefundCandidateQuery = paymentCandidateQuery + `
  AND p.status = $2
  AND p.result_hash <> ''
  AND p.refund_time >= $3
ORDER BY p.created_at`

// SubmitResultCandidates lists confirmed payments carrying a result hash
// whose submit-result time is at or before the cutoff.
func (r *Repository) SubmitResultCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]model.ActionCandidate, error) {
	eligible := statusList([]model.PaymentStatus{model.PaymentConfirmed, model.RefundRequested})
	return r.queryCandidates(ctx, submitResultCandidateQuery, "payment_request_amounts", sourceID, eligible, cutoff)
}

// CollectCandidates lists completed payments whose unlock deadline is still
// comfortably ahead of the cutoff.
func (r *Repository) CollectCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]model.ActionCandidate, error) {
	return r.queryCandidates(ctx, collectCandidateQuery, "payment_request_amounts", sourceID, model.PaymentConfirmed, cutoff)
}

// DenyRefundCandidates lists payments whose refund request is contested by a
// delivered result and whose refund deadline is still ahead of the cutoff.
func (r *Repository) DenyRefundCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]model.ActionCandidate, error) {
	return r.queryCandidates(ctx, denyRefundCandidateQuery, "payment_request_amounts", sourceID, model.RefundRequested, cutoff)
}

const timeoutRefundCandidateQuery = `
SELECT p.id, p.reference_id, COALESCE(p.result_hash, ''),
       p.submit_result_time, p.unlock_time, p.refund_time,
       w.id, w.vkey_hash, p.current_tx_hash, p.retry_count
FROM purchase_requests p
JOIN hot_wallets w ON w.id = p.hot_wallet_id AND w.locked_at IS NULL
WHERE p.payment_source_id = $1
  AND p.status = $2
  AND COALESCE(p.result_hash, '') = ''
  AND p.submit_result_time <= $3
  AND p.current_tx_hash IS NOT NULL
  AND p.error_type IS NULL
  AND NOT p.error_requires_manual_review
ORDER BY p.created_at`

// TimeoutRefundCandidates lists confirmed purchases whose seller never
// delivered within the window. The wallet is the purchasing wallet already
// bound to the request by the batch that locked it.
func (r *Repository) TimeoutRefundCandidates(ctx context.Context, sourceID uuid.UUID, cutoff time.Time) ([]model.ActionCandidate, error) {
	return r.queryCandidates(ctx, timeoutRefundCandidateQuery, "purchase_request_amounts", sourceID, model.PurchaseConfirmed, cutoff)
}

func (r *Repository) queryCandidates(ctx context.Context, query, amountsTable string, args ...any) ([]model.ActionCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query action candidates: %w", err)
	}
	defer rows.Close()

	candidates, err := scanCandidates(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	for i := range candidates {
		amounts, err := loadAmounts(ctx, r.pool, amountsTable, candidates[i].RequestID)
		if err != nil {
			return nil, err
		}
		candidates[i].Amounts = amounts
	}
	return candidates, nil
}

func scanCandidates(rows pgx.Rows) ([]model.ActionCandidate, error) {
	var candidates []model.ActionCandidate
	for rows.Next() {
		var c model.ActionCandidate
		if err := rows.Scan(
			&c.RequestID, &c.ReferenceID, &c.ResultHash,
			&c.SubmitResultTime, &c.UnlockTime, &c.RefundTime,
			&c.WalletID, &c.WalletVkeyHash, &c.CurrentTxHash, &c.RetryCount,
		); err != nil {
			return nil, fmt.Errorf("scan action candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action candidates: %w", err)
	}
	return candidates, nil
}
