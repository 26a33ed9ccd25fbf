package model

// PaymentStatus is the seller-side on-chain lifecycle state of an obligation.
type PaymentStatus string

const (
	PaymentRequested       PaymentStatus = "PaymentRequested"
	PaymentConfirmed       PaymentStatus = "PaymentConfirmed"
	PaymentInvalid         PaymentStatus = "PaymentInvalid"
	CompletedInitiated     PaymentStatus = "CompletedInitiated"
	WithdrawConfirmed      PaymentStatus = "WithdrawConfirmed"
	RefundRequested        PaymentStatus = "RefundRequested"
	RefundRequestCanceled  PaymentStatus = "RefundRequestCanceled"
	Refunded               PaymentStatus = "Refunded"
	RefundDeniedInitiated  PaymentStatus = "RefundDeniedInitiated"
	RefundDeniedConfirmed  PaymentStatus = "RefundDeniedConfirmed"
	PaymentRefundInitiated PaymentStatus = "RefundInitiated"
	PaymentDisputedClosed  PaymentStatus = "DisputedWithdrawn"
	PaymentFeesWithdrawn   PaymentStatus = "FeesWithdrawn"
	PaymentError           PaymentStatus = "Error"
)

// PurchaseStatus is the buyer-side on-chain lifecycle state of an obligation.
type PurchaseStatus string

const (
	PurchaseRequested              PurchaseStatus = "PurchaseRequested"
	PurchaseInitiated              PurchaseStatus = "PurchaseInitiated"
	PurchaseConfirmed              PurchaseStatus = "PurchaseConfirmed"
	Withdrawn                      PurchaseStatus = "Withdrawn"
	RefundRequestConfirmed         PurchaseStatus = "RefundRequestConfirmed"
	RefundRequestCanceledConfirmed PurchaseStatus = "RefundRequestCanceledConfirmed"
	RefundConfirmed                PurchaseStatus = "RefundConfirmed"
	RefundDenied                   PurchaseStatus = "RefundDenied"
	RefundInitiated                PurchaseStatus = "RefundInitiated"
	PurchaseDisputedClosed         PurchaseStatus = "DisputedWithdrawn"
	PurchaseFeesWithdrawn          PurchaseStatus = "FeesWithdrawn"
	PurchaseError                  PurchaseStatus = "Error"
)

// ErrorType classifies why automated processing of a request failed.
type ErrorType string

const (
	ErrorTypeNetwork           ErrorType = "NetworkError"
	ErrorTypeInsufficientFunds ErrorType = "InsufficientFunds"
	ErrorTypeUnknown           ErrorType = "Unknown"
)

// TxStatus tracks an outgoing transaction from submission to confirmation.
type TxStatus string

const (
	TxPending          TxStatus = "Pending"
	TxConfirmed        TxStatus = "Confirmed"
	TxFailedViaTimeout TxStatus = "FailedViaTimeout"
)
