package dto

import (
	"time"

	"github.com/lingora-app/lingora-api/internal/models"
)

// PayoutDetailsPayload carries the payment coordinates for a payout method.
type PayoutDetailsPayload struct {
	PayPalEmail   string `json:"paypal_email" validate:"omitempty,email"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number"`
}

// PayoutCreateRequest opens a withdrawal request against teacher earnings.
type PayoutCreateRequest struct {
	TeacherID string               `json:"teacher_id" validate:"required"`
	Amount    float64              `json:"amount" validate:"required,gt=0"`
	Method    string               `json:"method" validate:"required,oneof=paypal bank_transfer"`
	Details   PayoutDetailsPayload `json:"details"`
	Notes     string               `json:"notes"`
}

// PayoutDecisionRequest carries optional admin notes for approve/reject.
type PayoutDecisionRequest struct {
	Notes string `json:"notes"`
}

// PayoutFilter narrows payout listings.
type PayoutFilter struct {
	TeacherID string `json:"teacher_id"`
	Status    string `json:"status"`
}

// PayoutResponse is the external view of a payout request.
type PayoutResponse struct {
	ID          string               `json:"id"`
	TeacherID   string               `json:"teacher_id"`
	Amount      float64              `json:"amount"`
	Method      string               `json:"method"`
	Status      string               `json:"status"`
	Details     PayoutDetailsPayload `json:"details"`
	Notes       string               `json:"notes,omitempty"`
	AdminNotes  string               `json:"admin_notes,omitempty"`
	RequestedAt time.Time            `json:"requested_at"`
	ProcessedAt *time.Time           `json:"processed_at,omitempty"`
}

// NewPayoutResponse maps a payout record to its external view.
func NewPayoutResponse(payout models.PayoutRequest) PayoutResponse {
	return PayoutResponse{
		ID:        payout.ID,
		TeacherID: payout.TeacherID,
		Amount:    payout.Amount,
		Method:    string(payout.Method),
		Status:    string(payout.Status),
		Details: PayoutDetailsPayload{
			PayPalEmail:   payout.Details.PayPalEmail,
			BankName:      payout.Details.BankName,
			AccountName:   payout.Details.AccountName,
			AccountNumber: payout.Details.AccountNumber,
			RoutingNumber: payout.Details.RoutingNumber,
		},
		Notes:       payout.Notes,
		AdminNotes:  payout.AdminNotes,
		RequestedAt: payout.RequestedAt,
		ProcessedAt: payout.ProcessedAt,
	}
}
