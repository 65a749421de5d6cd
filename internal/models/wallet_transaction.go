package models

import "time"

// TransactionType enumerates wallet transaction kinds.
type TransactionType string

const (
	TransactionRecharge TransactionType = "recharge"
	TransactionPayment  TransactionType = "payment"
	TransactionRefund   TransactionType = "refund"
)

// TransactionStatus enumerates wallet transaction settlement states.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// WalletTransaction is an immutable ledger entry, append-only per user.
type WalletTransaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Type      TransactionType   `json:"type"`
	Status    TransactionStatus `json:"status"`
	Amount    float64           `json:"amount"`
	Method    string            `json:"method"`
	LessonID  string            `json:"lesson_id,omitempty"`
	TeacherID string            `json:"teacher_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
