package reconciler

import (
	"github.com/nftmakerio/masumi-payment-service/internal/cardano"
	"github.com/nftmakerio/masumi-payment-service/internal/model"
)

// actionTransition pairs the states both sides of an obligation move to when
// an on-chain action is observed, with the prior states the update is gated
// on. A transaction replayed against an already-transitioned request matches
// no prior state and is a no-op.
type actionTransition struct {
	payment       model.PaymentStatus
	purchase      model.PurchaseStatus
	paymentPrior  []model.PaymentStatus
	purchasePrior []model.PurchaseStatus
}

var actionTransitions = map[cardano.Action]actionTransition{
	cardano.ActionWithdraw: {
		payment:       model.WithdrawConfirmed,
		purchase:      model.Withdrawn,
		paymentPrior:  []model.PaymentStatus{model.CompletedInitiated, model.PaymentConfirmed},
		purchasePrior: []model.PurchaseStatus{model.PurchaseConfirmed},
	},
	cardano.ActionRequestRefund: {
		payment:       model.RefundRequested,
		purchase:      model.RefundRequestConfirmed,
		paymentPrior:  []model.PaymentStatus{model.PaymentConfirmed, model.CompletedInitiated},
		purchasePrior: []model.PurchaseStatus{model.PurchaseConfirmed, model.RefundInitiated},
	},
	cardano.ActionCancelRefundRequest: {
		payment:       model.RefundRequestCanceled,
		purchase:      model.RefundRequestCanceledConfirmed,
		paymentPrior:  []model.PaymentStatus{model.RefundRequested},
		purchasePrior: []model.PurchaseStatus{model.RefundRequestConfirmed},
	},
	cardano.ActionWithdrawRefund: {
		payment:       model.Refunded,
		purchase:      model.RefundConfirmed,
		paymentPrior:  []model.PaymentStatus{model.RefundRequested, model.PaymentRefundInitiated},
		purchasePrior: []model.PurchaseStatus{model.RefundRequestConfirmed, model.RefundInitiated, model.PurchaseConfirmed},
	},
	cardano.ActionDenyRefund: {
		payment:       model.RefundDeniedConfirmed,
		purchase:      model.RefundDenied,
		paymentPrior:  []model.PaymentStatus{model.RefundRequested, model.RefundDeniedInitiated},
		purchasePrior: []model.PurchaseStatus{model.RefundRequestConfirmed},
	},
	cardano.ActionWithdrawDisputed: {
		payment:       model.PaymentDisputedClosed,
		purchase:      model.PurchaseDisputedClosed,
		paymentPrior:  []model.PaymentStatus{model.RefundRequested, model.RefundDeniedConfirmed, model.CompletedInitiated},
		purchasePrior: []model.PurchaseStatus{model.RefundRequestConfirmed, model.RefundDenied},
	},
	cardano.ActionWithdrawFee: {
		payment:       model.PaymentFeesWithdrawn,
		purchase:      model.PurchaseFeesWithdrawn,
		paymentPrior:  []model.PaymentStatus{model.WithdrawConfirmed},
		purchasePrior: []model.PurchaseStatus{model.Withdrawn},
	},
}
