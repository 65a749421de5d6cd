package models

import "time"

// TeacherStatus enumerates the vetting states of a teacher account.
type TeacherStatus string

const (
	TeacherIncomplete TeacherStatus = "incomplete"
	TeacherPending    TeacherStatus = "pending"
	TeacherApproved   TeacherStatus = "approved"
	TeacherRejected   TeacherStatus = "rejected"
)

// TeacherApplication holds the structured application a prospective teacher
// submits for vetting. Extra carries free-form admin metadata only.
type TeacherApplication struct {
	Headline       string         `json:"headline"`
	Bio            string         `json:"bio"`
	Experience     string         `json:"experience"`
	Certifications []string       `json:"certifications"`
	VideoURL       string         `json:"video_url"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// Teacher represents a tutor account. Earnings accumulate from completed
// lessons and are withdrawn through payout requests.
type Teacher struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Email             string              `json:"email"`
	PasswordHash      string              `json:"password_hash"`
	Status            TeacherStatus       `json:"status"`
	TeachingLanguages []string            `json:"teaching_languages"`
	NativeLanguage    string              `json:"native_language"`
	HourlyRate        float64             `json:"hourly_rate"`
	Specialties       []string            `json:"specialties"`
	Earnings          float64             `json:"earnings"`
	CompletedLessons  int                 `json:"completed_lessons"`
	Rating            float64             `json:"rating"`
	ReviewCount       int                 `json:"review_count"`
	Badges            []string            `json:"badges"`
	Application       *TeacherApplication `json:"application,omitempty"`
	MeetingPlatforms  []string            `json:"meeting_platforms,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// CanTransitionTo reports whether the vetting state machine allows moving to
// the target status. Approval and rejection are only reachable from pending.
func (t Teacher) CanTransitionTo(target TeacherStatus) bool {
	switch target {
	case TeacherApproved, TeacherRejected:
		return t.Status == TeacherPending
	case TeacherPending:
		return t.Status == TeacherIncomplete || t.Status == TeacherPending || t.Status == TeacherRejected
	default:
		return false
	}
}
