package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

// loadAmounts reads a request's amount list from its amounts table.
// Quantities are stored as numeric and scanned through text to keep
// arbitrary precision.
func loadAmounts(ctx context.Context, q querier, table string, requestID uuid.UUID) ([]model.Amount, error) {
	query := fmt.Sprintf(`SELECT unit, quantity::text FROM %s WHERE request_id = $1 ORDER BY unit`, table)

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("query amounts of %s: %w", requestID, err)
	}
	defer rows.Close()

	var amounts []model.Amount
	for rows.Next() {
		var (
			unit     string
			quantity string
		)
		if err := rows.Scan(&unit, &quantity); err != nil {
			return nil, fmt.Errorf("scan amount: %w", err)
		}
		parsed, err := decimal.NewFromString(quantity)
		if err != nil {
			return nil, fmt.Errorf("parse quantity %q: %w", quantity, err)
		}
		amounts = append(amounts, model.Amount{Unit: unit, Quantity: parsed})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate amounts: %w", err)
	}
	return amounts, nil
}
