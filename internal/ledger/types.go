// Package ledger implements the read-side client of the ledger query
// provider: paginated transaction listing per address, transaction detail
// with decoded UTXOs, and address balances.
package ledger

import (
	"errors"
	"time"

	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

// ErrNetwork marks provider I/O failures so callers can classify them
// without inspecting transport details.
var ErrNetwork = errors.New("ledger provider unreachable")

// TxSummary is one entry of an address transaction listing, in ledger order.
type TxSummary struct {
	TxHash      string
	BlockHeight int64
	BlockTime   time.Time
}

// Utxo is a decoded transaction input or output.
type Utxo struct {
	TxHash      string
	OutputIndex int
	Address     string
	Amounts     []model.Amount
	// InlineDatum is the raw datum bytes carried by the output, nil when absent.
	InlineDatum []byte
}

// TxDetail is a fully fetched transaction: raw bytes, decoded UTXO set and
// the redeemers extracted from the witness set.
type TxDetail struct {
	TxHash    string
	RawBytes  []byte
	Inputs    []Utxo
	Outputs   []Utxo
	Redeemers [][]byte
}

// InputsAt returns the inputs spending outputs of the given address.
func (d *TxDetail) InputsAt(address string) []Utxo {
	return utxosAt(d.Inputs, address)
}

// OutputsAt returns the outputs paying to the given address.
func (d *TxDetail) OutputsAt(address string) []Utxo {
	return utxosAt(d.Outputs, address)
}

func utxosAt(utxos []Utxo, address string) []Utxo {
	var matched []Utxo
	for _, u := range utxos {
		if u.Address == address {
			matched = append(matched, u)
		}
	}
	return matched
}
