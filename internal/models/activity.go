package models

import "time"

// ActivityKind enumerates the domain events recorded in the activity feed.
type ActivityKind string

const (
	ActivityUserSignup         ActivityKind = "user_signup"
	ActivityTeacherApplication ActivityKind = "teacher_application"
	ActivityTeacherApproved    ActivityKind = "teacher_approved"
	ActivityTeacherRejected    ActivityKind = "teacher_rejected"
	ActivityLessonBooked       ActivityKind = "lesson_booked"
	ActivityLessonCompleted    ActivityKind = "lesson_completed"
	ActivityWalletRecharge     ActivityKind = "wallet_recharge"
	ActivityLessonPayment      ActivityKind = "lesson_payment"
	ActivityPayoutRequested    ActivityKind = "payout_requested"
	ActivityPayoutApproved     ActivityKind = "payout_approved"
	ActivityPayoutRejected     ActivityKind = "payout_rejected"
	ActivityPostCreated        ActivityKind = "post_created"
	ActivityEventCreated       ActivityKind = "event_created"
	ActivityChallengeCreated   ActivityKind = "challenge_created"
)

// Activity is one immutable entry in the bounded, most-recent-first feed.
type Activity struct {
	ID          string         `json:"id"`
	Kind        ActivityKind   `json:"kind"`
	UserID      string         `json:"user_id"`
	UserName    string         `json:"user_name"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
