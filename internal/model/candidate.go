package model

import (
	"time"

	"github.com/google/uuid"
)

// ActionCandidate is one request eligible for an executor action, flattened
// across the payment and purchase tables together with its wallet binding.
type ActionCandidate struct {
	RequestID   uuid.UUID
	ReferenceID string
	Amounts     []Amount
	ResultHash  string

	SubmitResultTime time.Time
	UnlockTime       time.Time
	RefundTime       time.Time

	WalletID       uuid.UUID
	WalletVkeyHash string
	CurrentTxHash  string
	RetryCount     int
}
