package cardano

import "github.com/fxamacker/cbor/v2"

// Action is the closed set of lifecycle actions a spending transaction can
// declare against an escrow output.
type Action int

const (
	ActionWithdraw Action = iota
	ActionRequestRefund
	ActionCancelRefundRequest
	ActionWithdrawRefund
	ActionDenyRefund
	// ActionWithdrawDisputed doubles as the submit-result alternative: the
	// contract dispatches on context, the ledger only carries the index.
	ActionWithdrawDisputed
	ActionWithdrawFee

	// ActionUnrecognized represents any alternative outside the table above.
	ActionUnrecognized Action = -1
)

func (a Action) String() string {
	switch a {
	case ActionWithdraw:
		return "Withdraw"
	case ActionRequestRefund:
		return "RequestRefund"
	case ActionCancelRefundRequest:
		return "CancelRefundRequest"
	case ActionWithdrawRefund:
		return "WithdrawRefund"
	case ActionDenyRefund:
		return "DenyRefund"
	case ActionWithdrawDisputed:
		return "WithdrawDisputed"
	case ActionWithdrawFee:
		return "WithdrawFee"
	default:
		return "Unrecognized"
	}
}

// ClassifyRedeemer maps raw redeemer bytes to an Action. The second return
// is false when the bytes are not a recognized constructor; callers skip the
// transaction rather than failing the pass.
func ClassifyRedeemer(raw []byte) (Action, bool) {
	var v interface{}
	if err := cbor.Unmarshal(raw, &v); err != nil {
		return ActionUnrecognized, false
	}
	tag, ok := v.(cbor.Tag)
	if !ok {
		return ActionUnrecognized, false
	}
	if tag.Number < constrTagBase || tag.Number > constrTagLimit {
		return ActionUnrecognized, false
	}
	action := Action(tag.Number - constrTagBase)
	if action > ActionWithdrawFee {
		return ActionUnrecognized, false
	}
	return action, true
}

// EncodeRedeemer serializes an Action as the empty-field constructor the
// contract expects.
func EncodeRedeemer(a Action) ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  constrTagBase + uint64(a),
		Content: []interface{}{},
	})
}
