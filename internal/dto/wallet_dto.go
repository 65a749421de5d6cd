package dto

import (
	"time"

	"github.com/lingora-app/lingora-api/internal/models"
)

// RechargeRequest tops up a user wallet. The external payment is assumed
// already confirmed upstream, so the transaction lands as completed.
type RechargeRequest struct {
	UserID string  `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required"`
}

// LessonPaymentRequest pays for a lesson. Only the wallet method is
// balance-checked; other methods assume an external gateway upstream.
type LessonPaymentRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	LessonID  string  `json:"lesson_id" validate:"required"`
	TeacherID string  `json:"teacher_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required"`
}

// BalanceResponse reports a user's current wallet balance.
type BalanceResponse struct {
	UserID  string  `json:"user_id"`
	Balance float64 `json:"balance"`
}

// WalletTransactionResponse is the external view of a ledger entry.
type WalletTransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	LessonID  string    `json:"lesson_id,omitempty"`
	TeacherID string    `json:"teacher_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWalletTransactionResponse maps a ledger entry to its external view.
func NewWalletTransactionResponse(tx models.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Type:      string(tx.Type),
		Status:    string(tx.Status),
		Amount:    tx.Amount,
		Method:    tx.Method,
		LessonID:  tx.LessonID,
		TeacherID: tx.TeacherID,
		CreatedAt: tx.CreatedAt,
	}
}
