package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

// insertTransactionRecord appends a transaction to a request's history.
// Exactly one of paymentID and purchaseID is set.
func insertTransactionRecord(ctx context.Context, q querier, paymentID, purchaseID *uuid.UUID, txHash string, status model.TxStatus) error {
	const query = `
INSERT INTO transaction_records (id, payment_id, purchase_id, tx_hash, status, created_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4, now())`

	if _, err := q.Exec(ctx, query, paymentID, purchaseID, txHash, status); err != nil {
		return fmt.Errorf("insert transaction record %s: %w", txHash, err)
	}
	return nil
}

// TransactionHistory lists a payment or purchase request's submitted
// transactions, oldest first.
func (r *Repository) TransactionHistory(ctx context.Context, paymentID, purchaseID *uuid.UUID) ([]model.TransactionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
SELECT id, tx_hash, status, created_at
FROM transaction_records
WHERE ($1::uuid IS NULL OR payment_id = $1)
  AND ($2::uuid IS NULL OR purchase_id = $2)
ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, paymentID, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("query transaction history: %w", err)
	}
	defer rows.Close()

	var records []model.TransactionRecord
	for rows.Next() {
		var rec model.TransactionRecord
		if err := rows.Scan(&rec.ID, &rec.TxHash, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction records: %w", err)
	}
	return records, nil
}
