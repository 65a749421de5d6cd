package models

import "time"

// PayoutMethod enumerates the supported withdrawal channels.
type PayoutMethod string

const (
	PayoutPayPal       PayoutMethod = "paypal"
	PayoutBankTransfer PayoutMethod = "bank_transfer"
)

// PayoutStatus enumerates the payout workflow states.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutApproved  PayoutStatus = "approved"
	PayoutRejected  PayoutStatus = "rejected"
	PayoutCompleted PayoutStatus = "completed"
)

// PayoutDetails carries the payment coordinates matching the chosen method.
type PayoutDetails struct {
	PayPalEmail   string `json:"paypal_email,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
}

// PayoutRequest is a teacher-initiated withdrawal of accumulated earnings.
// The status chain is strictly forward-only:
// pending -> approved -> completed, or pending -> rejected.
type PayoutRequest struct {
	ID          string        `json:"id"`
	TeacherID   string        `json:"teacher_id"`
	Amount      float64       `json:"amount"`
	Method      PayoutMethod  `json:"method"`
	Status      PayoutStatus  `json:"status"`
	Details     PayoutDetails `json:"details"`
	Notes       string        `json:"notes,omitempty"`
	AdminNotes  string        `json:"admin_notes,omitempty"`
	RequestedAt time.Time     `json:"requested_at"`
	ProcessedAt *time.Time    `json:"processed_at,omitempty"`
}

// CanTransitionTo reports whether the payout state machine allows moving to
// the target status. Rejected and completed are terminal.
func (p PayoutRequest) CanTransitionTo(target PayoutStatus) bool {
	switch p.Status {
	case PayoutPending:
		return target == PayoutApproved || target == PayoutRejected
	case PayoutApproved:
		return target == PayoutCompleted
	default:
		return false
	}
}
