// Package cardano implements the on-chain record codec of the escrow
// contract: the inline datum carried by every escrow output and the redeemer
// tag declared by every spending transaction.
package cardano

import (
	"encoding/hex"
	"math/big"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Plutus data encodes constructor alternatives 0..6 as CBOR tags 121..127.
const (
	constrTagBase  = 121
	constrTagLimit = 127

	datumFieldCount = 9
)

// ContractDatum is the structured record attached to every escrow output.
// Key hashes and the result hash are hex strings; the reference id is the
// caller-supplied identifier of the obligation.
type ContractDatum struct {
	BuyerVkeyHash    string
	SellerVkeyHash   string
	ReferenceID      string
	ResultHash       string
	SubmitResultTime time.Time
	UnlockTime       time.Time
	RefundTime       time.Time
	RefundRequested  bool
	RefundDenied     bool
}

// DecodeContractDatum parses raw inline-datum bytes into a ContractDatum.
// It returns nil on any structural mismatch: wrong constructor, wrong field
// count, wrong field types. It never panics and never returns an error;
// malformed or unrelated datums must not abort a reconciliation pass.
func DecodeContractDatum(raw []byte) *ContractDatum {
	var v interface{}
	if err := cbor.Unmarshal(raw, &v); err != nil {
		return nil
	}

	fields, ok := constructorFields(v, 0)
	if !ok || len(fields) != datumFieldCount {
		return nil
	}

	buyer, ok := byteStringHex(fields[0])
	if !ok {
		return nil
	}
	seller, ok := byteStringHex(fields[1])
	if !ok {
		return nil
	}
	referenceID, ok := byteStringUTF8(fields[2])
	if !ok {
		return nil
	}
	resultHash, ok := byteStringUTF8(fields[3])
	if !ok {
		return nil
	}
	submitResultTime, ok := posixTime(fields[4])
	if !ok {
		return nil
	}
	unlockTime, ok := posixTime(fields[5])
	if !ok {
		return nil
	}
	refundTime, ok := posixTime(fields[6])
	if !ok {
		return nil
	}
	refundRequested, ok := plutusBool(fields[7])
	if !ok {
		return nil
	}
	refundDenied, ok := plutusBool(fields[8])
	if !ok {
		return nil
	}

	return &ContractDatum{
		BuyerVkeyHash:    buyer,
		SellerVkeyHash:   seller,
		ReferenceID:      referenceID,
		ResultHash:       resultHash,
		SubmitResultTime: submitResultTime,
		UnlockTime:       unlockTime,
		RefundTime:       refundTime,
		RefundRequested:  refundRequested,
		RefundDenied:     refundDenied,
	}
}

// EncodeContractDatum serializes a ContractDatum for an outgoing escrow
// output. The inverse of DecodeContractDatum.
func EncodeContractDatum(d ContractDatum) ([]byte, error) {
	buyer, err := hex.DecodeString(d.BuyerVkeyHash)
	if err != nil {
		return nil, err
	}
	seller, err := hex.DecodeString(d.SellerVkeyHash)
	if err != nil {
		return nil, err
	}

	return cbor.Marshal(cbor.Tag{
		Number: constrTagBase,
		Content: []interface{}{
			buyer,
			seller,
			[]byte(d.ReferenceID),
			[]byte(d.ResultHash),
			d.SubmitResultTime.UnixMilli(),
			d.UnlockTime.UnixMilli(),
			d.RefundTime.UnixMilli(),
			encodeBool(d.RefundRequested),
			encodeBool(d.RefundDenied),
		},
	})
}

func encodeBool(v bool) cbor.Tag {
	number := uint64(constrTagBase)
	if v {
		number = constrTagBase + 1
	}
	return cbor.Tag{Number: number, Content: []interface{}{}}
}

// constructorFields unwraps a Plutus constructor value, requiring the given
// alternative, and returns its field list.
func constructorFields(v interface{}, alternative uint64) ([]interface{}, bool) {
	tag, ok := v.(cbor.Tag)
	if !ok {
		return nil, false
	}
	if tag.Number < constrTagBase || tag.Number > constrTagLimit {
		return nil, false
	}
	if tag.Number-constrTagBase != alternative {
		return nil, false
	}
	fields, ok := tag.Content.([]interface{})
	if !ok {
		return nil, false
	}
	return fields, true
}

func byteStringHex(v interface{}) (string, bool) {
	b, ok := v.([]byte)
	if !ok {
		return "", false
	}
	return hex.EncodeToString(b), true
}

func byteStringUTF8(v interface{}) (string, bool) {
	b, ok := v.([]byte)
	if !ok {
		return "", false
	}
	return string(b), true
}

// posixTime accepts the integer shapes the CBOR decoder may produce for a
// POSIX millisecond timestamp.
func posixTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case uint64:
		return time.UnixMilli(int64(t)).UTC(), true
	case int64:
		return time.UnixMilli(t).UTC(), true
	case big.Int:
		if !t.IsInt64() {
			return time.Time{}, false
		}
		return time.UnixMilli(t.Int64()).UTC(), true
	default:
		return time.Time{}, false
	}
}

// plutusBool decodes the constructor encoding of booleans: alternative 0 is
// false, alternative 1 is true, both with no fields.
func plutusBool(v interface{}) (bool, bool) {
	tag, ok := v.(cbor.Tag)
	if !ok {
		return false, false
	}
	fields, ok := tag.Content.([]interface{})
	if !ok || len(fields) != 0 {
		return false, false
	}
	switch tag.Number {
	case constrTagBase:
		return false, true
	case constrTagBase + 1:
		return true, true
	default:
		return false, false
	}
}
