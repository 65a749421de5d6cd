package store

import (
	"context"
	"fmt"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// Minimum withdrawal amounts per payout method.
const (
	MinPayoutPayPal       = 25.0
	MinPayoutBankTransfer = 100.0
)

// MinimumFor returns the minimum withdrawal amount for a payout method.
func MinimumFor(method models.PayoutMethod) float64 {
	if method == models.PayoutBankTransfer {
		return MinPayoutBankTransfer
	}
	return MinPayoutPayPal
}

// RequestPayout opens a pending withdrawal against teacher earnings.
// Earnings are not deducted until approval.
func (s *Store) RequestPayout(ctx context.Context, req dto.PayoutCreateRequest) (dto.PayoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findTeacher(req.TeacherID)
	if teacher == nil {
		return dto.PayoutResponse{}, ErrTeacherNotFound
	}

	method := models.PayoutMethod(req.Method)
	if req.Amount < MinimumFor(method) {
		return dto.PayoutResponse{}, ErrPayoutBelowMinimum
	}
	if req.Amount > teacher.Earnings {
		return dto.PayoutResponse{}, ErrInsufficientEarnings
	}

	payout := models.PayoutRequest{
		ID:        s.newID("payout"),
		TeacherID: teacher.ID,
		Amount:    req.Amount,
		Method:    method,
		Status:    models.PayoutPending,
		Details: models.PayoutDetails{
			PayPalEmail:   req.Details.PayPalEmail,
			BankName:      req.Details.BankName,
			AccountName:   req.Details.AccountName,
			AccountNumber: req.Details.AccountNumber,
			RoutingNumber: req.Details.RoutingNumber,
		},
		Notes:       req.Notes,
		RequestedAt: s.now(),
	}
	s.snap.Payouts = append(s.snap.Payouts, payout)

	s.recordActivity(models.ActivityPayoutRequested, teacher.ID, teacher.Name,
		fmt.Sprintf("%s requested a payout", teacher.Name),
		map[string]any{"amount": payout.Amount, "method": string(payout.Method)})
	s.commit(ctx)

	return dto.NewPayoutResponse(payout), nil
}

// ApprovePayout debits teacher earnings and marks the request approved.
// Earnings are re-validated here since they may have changed since the
// request; this is the single point where earnings are actually deducted.
// A non-pending request is a no-op returning false.
func (s *Store) ApprovePayout(ctx context.Context, requestID, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	payout := s.findPayout(requestID)
	if payout == nil || !payout.CanTransitionTo(models.PayoutApproved) {
		return false
	}

	teacher := s.findTeacher(payout.TeacherID)
	if teacher == nil || teacher.Earnings < payout.Amount {
		return false
	}

	teacher.Earnings -= payout.Amount
	payout.Status = models.PayoutApproved
	payout.AdminNotes = notes
	processedAt := s.now()
	payout.ProcessedAt = &processedAt

	s.recordActivity(models.ActivityPayoutApproved, teacher.ID, teacher.Name,
		fmt.Sprintf("payout of %.2f approved for %s", payout.Amount, teacher.Name),
		map[string]any{"request_id": payout.ID})
	s.commit(ctx)
	return true
}

// RejectPayout marks a pending request rejected; earnings stay untouched.
// A non-pending request is a no-op returning false.
func (s *Store) RejectPayout(ctx context.Context, requestID, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	payout := s.findPayout(requestID)
	if payout == nil || !payout.CanTransitionTo(models.PayoutRejected) {
		return false
	}

	payout.Status = models.PayoutRejected
	payout.AdminNotes = notes
	processedAt := s.now()
	payout.ProcessedAt = &processedAt

	userName := ""
	if teacher := s.findTeacher(payout.TeacherID); teacher != nil {
		userName = teacher.Name
	}
	s.recordActivity(models.ActivityPayoutRejected, payout.TeacherID, userName,
		fmt.Sprintf("payout of %.2f rejected", payout.Amount),
		map[string]any{"request_id": payout.ID})
	s.commit(ctx)
	return true
}

// CompletePayout marks an approved request completed, the terminal state.
func (s *Store) CompletePayout(ctx context.Context, requestID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	payout := s.findPayout(requestID)
	if payout == nil || !payout.CanTransitionTo(models.PayoutCompleted) {
		return false
	}

	payout.Status = models.PayoutCompleted
	s.commit(ctx)
	return true
}

// ListPayouts returns payout requests matching the filter, in insertion
// order.
func (s *Store) ListPayouts(ctx context.Context, filter dto.PayoutFilter) []dto.PayoutResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.PayoutResponse, 0, len(s.snap.Payouts))
	for i := range s.snap.Payouts {
		payout := s.snap.Payouts[i]
		if filter.TeacherID != "" && payout.TeacherID != filter.TeacherID {
			continue
		}
		if filter.Status != "" && string(payout.Status) != filter.Status {
			continue
		}
		responses = append(responses, dto.NewPayoutResponse(payout))
	}
	return responses
}
