package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRequest is the seller-side obligation: funds a buyer locks at the
// contract that this service later submits a result for and collects.
type PaymentRequest struct {
	ID              uuid.UUID
	PaymentSourceID uuid.UUID
	ReferenceID     string
	Status          PaymentStatus
	Amounts         []Amount

	// ResultHash is empty until the seller produced a result.
	ResultHash       string
	SubmitResultTime time.Time
	UnlockTime       time.Time
	RefundTime       time.Time

	BuyerWalletID *uuid.UUID
	HotWalletID   *uuid.UUID
	CurrentTxHash *string

	RetryCount                int
	ErrorType                 *ErrorType
	ErrorNote                 string
	ErrorRequiresManualReview bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchaseRequest is the buyer-side obligation, structurally parallel to
// PaymentRequest: funds this service locks at the contract on behalf of a
// buyer and later withdraws or reclaims.
type PurchaseRequest struct {
	ID              uuid.UUID
	PaymentSourceID uuid.UUID
	ReferenceID     string
	Status          PurchaseStatus
	Amounts         []Amount

	ResultHash       string
	SubmitResultTime time.Time
	UnlockTime       time.Time
	RefundTime       time.Time

	SellerWalletID *uuid.UUID
	SellerVkeyHash string
	HotWalletID    *uuid.UUID
	CurrentTxHash  *string

	RetryCount                int
	ErrorType                 *ErrorType
	ErrorNote                 string
	ErrorRequiresManualReview bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransactionRecord ties a request to one submitted transaction. The current
// record is swapped into history whenever a new transaction is submitted.
type TransactionRecord struct {
	ID        uuid.UUID
	TxHash    string
	Status    TxStatus
	CreatedAt time.Time
}
