package cardano

import "github.com/fxamacker/cbor/v2"

const witnessRedeemersKey = 5

// ExtractRedeemers pulls the redeemer data items out of raw transaction
// bytes. It returns nil when the transaction carries no redeemers or when
// the bytes do not have the expected shape; reconciliation treats both the
// same way (a plain lock transaction).
func ExtractRedeemers(rawTx []byte) [][]byte {
	var envelope []cbor.RawMessage
	if err := cbor.Unmarshal(rawTx, &envelope); err != nil || len(envelope) < 2 {
		return nil
	}

	var witnessSet map[uint64]cbor.RawMessage
	if err := cbor.Unmarshal(envelope[1], &witnessSet); err != nil {
		return nil
	}
	rawRedeemers, ok := witnessSet[witnessRedeemersKey]
	if !ok {
		return nil
	}

	if items := legacyRedeemerData(rawRedeemers); items != nil {
		return items
	}
	return mapRedeemerData(rawRedeemers)
}

// legacyRedeemerData handles the array form: [[tag, index, data, ex_units], ...].
func legacyRedeemerData(raw cbor.RawMessage) [][]byte {
	var entries []cbor.RawMessage
	if err := cbor.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	items := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		var fields []cbor.RawMessage
		if err := cbor.Unmarshal(entry, &fields); err != nil || len(fields) != 4 {
			return nil
		}
		items = append(items, fields[2])
	}
	return items
}

// mapRedeemerData handles the map form: {[tag, index]: [data, ex_units]}.
func mapRedeemerData(raw cbor.RawMessage) [][]byte {
	var entries map[[2]uint64]cbor.RawMessage
	if err := cbor.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	items := make([][]byte, 0, len(entries))
	for _, value := range entries {
		var fields []cbor.RawMessage
		if err := cbor.Unmarshal(value, &fields); err != nil || len(fields) != 2 {
			return nil
		}
		items = append(items, fields[0])
	}
	return items
}
