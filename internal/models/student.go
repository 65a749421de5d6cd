package models

import "time"

// StudentStatus enumerates the lifecycle states of a student account.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentSuspended StudentStatus = "suspended"
)

// Student represents a learner account with a spendable wallet balance.
type Student struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	PasswordHash      string        `json:"password_hash"`
	Status            StudentStatus `json:"status"`
	LearningLanguages []string      `json:"learning_languages"`
	WalletBalance     float64       `json:"wallet_balance"`
	CompletedLessons  int           `json:"completed_lessons"`
	HoursLearned      float64       `json:"hours_learned"`
	CreatedAt         time.Time     `json:"created_at"`
}
