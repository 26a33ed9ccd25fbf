package model

import "github.com/shopspring/decimal"

// UnitLovelace is the base unit of the ledger; every escrow output carries it.
const UnitLovelace = "lovelace"

// Amount is a (unit, quantity) pair. Quantities are arbitrary precision:
// on-chain values routinely exceed what float64 or a 53-bit integer can hold.
type Amount struct {
	Unit     string
	Quantity decimal.Decimal
}

// NewAmount builds an Amount from an int64 quantity.
func NewAmount(unit string, quantity int64) Amount {
	return Amount{Unit: unit, Quantity: decimal.NewFromInt(quantity)}
}

// AmountSet indexes amounts by unit with copy-on-read semantics suitable
// for the batching engine's simulated balances.
type AmountSet map[string]decimal.Decimal

// NewAmountSet folds a list of amounts into a set, summing duplicate units.
func NewAmountSet(amounts []Amount) AmountSet {
	set := make(AmountSet, len(amounts))
	for _, a := range amounts {
		set[a.Unit] = set[a.Unit].Add(a.Quantity)
	}
	return set
}

// Covers reports whether every unit of required is available in the set.
func (s AmountSet) Covers(required []Amount) bool {
	for _, a := range required {
		have, ok := s[a.Unit]
		if !ok || have.LessThan(a.Quantity) {
			return false
		}
	}
	return true
}

// Deduct removes the required amounts from the set. Callers must have
// checked Covers first; Deduct does not guard against negative balances.
func (s AmountSet) Deduct(required []Amount) {
	for _, a := range required {
		s[a.Unit] = s[a.Unit].Sub(a.Quantity)
	}
}
