package dto

import (
	"time"

	"github.com/lingora-app/lingora-api/internal/models"
)

// PlatformStatsResponse aggregates the derived platform counters. Values
// are recomputed from the live collections on every call.
type PlatformStatsResponse struct {
	ActiveStudents      int       `json:"active_students"`
	ApprovedTeachers    int       `json:"approved_teachers"`
	CompletedLessons    int       `json:"completed_lessons"`
	TotalRevenue        float64   `json:"total_revenue"`
	PendingApplications int       `json:"pending_applications"`
	LessonsLastMonth    int       `json:"lessons_last_month"`
	RevenueLastMonth    float64   `json:"revenue_last_month"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// ActivityResponse is the external view of one activity feed entry.
type ActivityResponse struct {
	ID          string         `json:"id"`
	Kind        string         `json:"kind"`
	UserID      string         `json:"user_id"`
	UserName    string         `json:"user_name"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// SettingsResponse exposes the admin-configurable platform settings.
type SettingsResponse struct {
	FeeRate            float64  `json:"fee_rate"`
	SupportedLanguages []string `json:"supported_languages"`
	Timezones          []string `json:"timezones"`
}

// NewActivityResponse maps an activity record to its external view.
func NewActivityResponse(activity models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID,
		Kind:        string(activity.Kind),
		UserID:      activity.UserID,
		UserName:    activity.UserName,
		Description: activity.Description,
		Metadata:    activity.Metadata,
		CreatedAt:   activity.CreatedAt,
	}
}

// NewSettingsResponse maps the settings block to its external view.
func NewSettingsResponse(settings models.PlatformSettings) SettingsResponse {
	return SettingsResponse{
		FeeRate:            settings.FeeRate,
		SupportedLanguages: settings.SupportedLanguages,
		Timezones:          settings.Timezones,
	}
}
