package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

const sourceColumns = `
id, network, contract_address, provider_project_id, fee_permille,
checkpoint_page, COALESCE(checkpoint_last_tx, ''), syncing, max_retries,
admin_vkey_hashes, fee_receiver_address, collection_address`

// ListSources returns all payment sources.
func (r *Repository) ListSources(ctx context.Context) ([]model.PaymentSource, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM payment_sources ORDER BY created_at`, sourceColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query payment sources: %w", err)
	}
	defer rows.Close()

	return scanSources(rows)
}

// AcquireSyncingSources selects every source whose syncing flag is clear and
// sets the flag, both inside one serializable transaction, so two process
// instances cannot both start scanning the same source.
func (r *Repository) AcquireSyncingSources(ctx context.Context) ([]model.PaymentSource, error) {
	var sources []model.PaymentSource
	err := r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := fmt.Sprintf(`
UPDATE payment_sources
SET syncing = TRUE, updated_at = now()
WHERE syncing = FALSE
RETURNING %s`, sourceColumns)

		rows, err := tx.Query(ctx, query)
		if err != nil {
			return fmt.Errorf("acquire syncing sources: %w", err)
		}
		defer rows.Close()

		sources, err = scanSources(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// ReleaseSyncingSources clears the syncing flag of the given sources.
func (r *Repository) ReleaseSyncingSources(ctx context.Context, ids []uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE payment_sources
SET syncing = FALSE, updated_at = now()
WHERE id = ANY($1)`

	if _, err := r.pool.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("release syncing sources: %w", err)
	}
	return nil
}

// UpdateCheckpoint persists the source's reconciliation progress.
func (r *Repository) UpdateCheckpoint(ctx context.Context, sourceID uuid.UUID, checkpoint model.Checkpoint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE payment_sources
SET checkpoint_page = $2, checkpoint_last_tx = NULLIF($3, ''), updated_at = now()
WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, sourceID, checkpoint.Page, checkpoint.LastSeenTxHash); err != nil {
		return fmt.Errorf("update checkpoint of source %s: %w", sourceID, err)
	}
	return nil
}

func scanSources(rows pgx.Rows) ([]model.PaymentSource, error) {
	var sources []model.PaymentSource
	for rows.Next() {
		var s model.PaymentSource
		if err := rows.Scan(
			&s.ID, &s.Network, &s.ContractAddress, &s.ProviderProjectID, &s.FeePermille,
			&s.Checkpoint.Page, &s.Checkpoint.LastSeenTxHash, &s.Syncing, &s.MaxRetries,
			&s.AdminVkeyHashes, &s.FeeReceiverAddress, &s.CollectionAddress,
		); err != nil {
			return nil, fmt.Errorf("scan payment source: %w", err)
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment sources: %w", err)
	}
	return sources, nil
}
