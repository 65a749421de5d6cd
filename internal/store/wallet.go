package store

import (
	"context"
	"fmt"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// Balance returns the user's current wallet balance, or 0 for unknown ids.
func (s *Store) Balance(ctx context.Context, userID string) dto.BalanceResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	response := dto.BalanceResponse{UserID: userID}
	if student := s.findStudent(userID); student != nil {
		response.Balance = student.WalletBalance
	}
	return response
}

// Recharge tops up a user wallet. The external payment is simulated as
// already confirmed, so the ledger entry lands completed.
func (s *Store) Recharge(ctx context.Context, req dto.RechargeRequest) (dto.WalletTransactionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := s.findStudent(req.UserID)
	if student == nil {
		return dto.WalletTransactionResponse{}, ErrUserNotFound
	}

	student.WalletBalance += req.Amount
	tx := models.WalletTransaction{
		ID:        s.newID("txn"),
		UserID:    req.UserID,
		Type:      models.TransactionRecharge,
		Status:    models.TransactionCompleted,
		Amount:    req.Amount,
		Method:    req.Method,
		CreatedAt: s.now(),
	}
	s.snap.Transactions = append(s.snap.Transactions, tx)

	s.recordActivity(models.ActivityWalletRecharge, student.ID, student.Name,
		fmt.Sprintf("%s recharged their wallet", student.Name),
		map[string]any{"amount": req.Amount, "method": req.Method})
	s.commit(ctx)

	return dto.NewWalletTransactionResponse(tx), nil
}

// PayForLesson records a lesson payment. Only the wallet method is
// balance-checked; other methods assume the external gateway settled the
// charge upstream. Nothing is mutated before the balance check.
func (s *Store) PayForLesson(ctx context.Context, req dto.LessonPaymentRequest) (dto.WalletTransactionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Method == "wallet" {
		student := s.findStudent(req.UserID)
		if student == nil || student.WalletBalance < req.Amount {
			return dto.WalletTransactionResponse{}, ErrInsufficientFunds
		}
		student.WalletBalance -= req.Amount
	}

	tx := models.WalletTransaction{
		ID:        s.newID("txn"),
		UserID:    req.UserID,
		Type:      models.TransactionPayment,
		Status:    models.TransactionCompleted,
		Amount:    req.Amount,
		Method:    req.Method,
		LessonID:  req.LessonID,
		TeacherID: req.TeacherID,
		CreatedAt: s.now(),
	}
	s.snap.Transactions = append(s.snap.Transactions, tx)

	userName := ""
	if student := s.findStudent(req.UserID); student != nil {
		userName = student.Name
	}
	s.recordActivity(models.ActivityLessonPayment, req.UserID, userName,
		"lesson payment recorded",
		map[string]any{"lesson_id": req.LessonID, "amount": req.Amount, "method": req.Method})
	s.commit(ctx)

	return dto.NewWalletTransactionResponse(tx), nil
}

// Transactions returns the user's ledger entries, in insertion order.
func (s *Store) Transactions(ctx context.Context, userID string) []dto.WalletTransactionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.WalletTransactionResponse, 0)
	for i := range s.snap.Transactions {
		tx := s.snap.Transactions[i]
		if tx.UserID != userID {
			continue
		}
		responses = append(responses, dto.NewWalletTransactionResponse(tx))
	}
	return responses
}
