package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

const walletColumns = `
id, payment_source_id, type, vkey_hash, address, encrypted_secret,
COALESCE(note, ''), locked_at, pending_tx_hash`

// LeasePurchasingWallets marks every unleased purchasing wallet of the
// source as leased and returns the leased set. Selection and marking happen
// in one serializable transaction so concurrent passes cannot both take the
// same wallet.
func (r *Repository) LeasePurchasingWallets(ctx context.Context, sourceID uuid.UUID) ([]model.HotWallet, error) {
	var wallets []model.HotWallet
	err := r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := fmt.Sprintf(`
UPDATE hot_wallets
SET locked_at = now()
WHERE payment_source_id = $1 AND type = $2 AND locked_at IS NULL
RETURNING %s`, walletColumns)

		rows, err := tx.Query(ctx, query, sourceID, model.WalletPurchasing)
		if err != nil {
			return fmt.Errorf("lease purchasing wallets: %w", err)
		}
		defer rows.Close()

		wallets, err = scanWallets(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

// LeaseWallet marks one wallet as leased if it is not already. Reports
// whether this caller took the lease.
func (r *Repository) LeaseWallet(ctx context.Context, walletID uuid.UUID) (bool, error) {
	var leased bool
	err := r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const query = `
UPDATE hot_wallets
SET locked_at = now()
WHERE id = $1 AND locked_at IS NULL`

		tag, err := tx.Exec(ctx, query, walletID)
		if err != nil {
			return fmt.Errorf("lease wallet %s: %w", walletID, err)
		}
		leased = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return leased, nil
}

// ReleaseWalletLeases clears the leases of the given wallets.
func (r *Repository) ReleaseWalletLeases(ctx context.Context, walletIDs []uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	const query = `
UPDATE hot_wallets
SET locked_at = NULL, pending_tx_hash = NULL
WHERE id = ANY($1)`

	if _, err := r.pool.Exec(ctx, query, walletIDs); err != nil {
		return fmt.Errorf("release wallet leases: %w", err)
	}
	return nil
}

// ReleaseWalletLease clears one wallet's lease.
func (r *Repository) ReleaseWalletLease(ctx context.Context, walletID uuid.UUID) error {
	return r.ReleaseWalletLeases(ctx, []uuid.UUID{walletID})
}

// ClearWalletLeaseByTx releases whichever wallet of the source is committed
// to the given transaction and confirms the matching pending transaction
// records. Called by reconciliation once the transaction is on-chain.
func (r *Repository) ClearWalletLeaseByTx(ctx context.Context, sourceID uuid.UUID, txHash string) error {
	return r.withSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		const walletQuery = `
UPDATE hot_wallets
SET locked_at = NULL, pending_tx_hash = NULL
WHERE payment_source_id = $1 AND pending_tx_hash = $2`
		if _, err := tx.Exec(ctx, walletQuery, sourceID, txHash); err != nil {
			return fmt.Errorf("clear wallet lease for %s: %w", txHash, err)
		}

		const recordQuery = `
UPDATE transaction_records
SET status = $2
WHERE tx_hash = $1 AND status = $3`
		if _, err := tx.Exec(ctx, recordQuery, txHash, model.TxConfirmed, model.TxPending); err != nil {
			return fmt.Errorf("confirm transaction records for %s: %w", txHash, err)
		}
		return nil
	})
}

// setWalletPendingTx binds the wallet's lease to the submitted transaction.
func setWalletPendingTx(ctx context.Context, q querier, walletID uuid.UUID, txHash string) error {
	const query = `
UPDATE hot_wallets
SET locked_at = COALESCE(locked_at, now()), pending_tx_hash = $2
WHERE id = $1`

	if _, err := q.Exec(ctx, query, walletID, txHash); err != nil {
		return fmt.Errorf("set pending tx on wallet %s: %w", walletID, err)
	}
	return nil
}

func scanWallets(rows pgx.Rows) ([]model.HotWallet, error) {
	var wallets []model.HotWallet
	for rows.Next() {
		var w model.HotWallet
		if err := rows.Scan(
			&w.ID, &w.PaymentSourceID, &w.Type, &w.VkeyHash, &w.Address,
			&w.EncryptedSecret, &w.Note, &w.LockedAt, &w.PendingTxHash,
		); err != nil {
			return nil, fmt.Errorf("scan hot wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hot wallets: %w", err)
	}
	return wallets, nil
}
