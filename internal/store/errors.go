package store

import "errors"

// ErrDuplicateEmail is returned when the email is already registered by a
// student or a teacher.
var ErrDuplicateEmail = errors.New("email is already registered")

// ErrUserNotFound is returned by wallet operations for unknown users.
var ErrUserNotFound = errors.New("user not found")

// ErrTeacherNotFound is returned by payout creation for unknown teachers.
var ErrTeacherNotFound = errors.New("teacher not found")

// ErrInsufficientFunds is returned when a wallet payment exceeds the balance.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

// ErrInsufficientEarnings is returned when a payout exceeds teacher earnings.
var ErrInsufficientEarnings = errors.New("payout amount exceeds available earnings")

// ErrPayoutBelowMinimum is returned when a payout is below the method minimum.
var ErrPayoutBelowMinimum = errors.New("payout amount is below the method minimum")
