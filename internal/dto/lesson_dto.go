package dto

import (
	"time"

	"github.com/lingora-app/lingora-api/internal/models"
)

// LessonCreateRequest books a session between a teacher and a student.
// Creating a lesson already marked completed triggers the completion side
// effects exactly once.
type LessonCreateRequest struct {
	TeacherID       string    `json:"teacher_id" validate:"required"`
	StudentID       string    `json:"student_id" validate:"required"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Price           float64   `json:"price" validate:"gte=0"`
	Language        string    `json:"language" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at"`
}

// LessonUpdateRequest shallow-merges fields into an existing lesson. Status
// changes through update never trigger financial side effects.
type LessonUpdateRequest struct {
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	Price           *float64   `json:"price" validate:"omitempty,gte=0"`
	Language        *string    `json:"language"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

// LessonFilter narrows lesson listings.
type LessonFilter struct {
	Status    string `json:"status"`
	TeacherID string `json:"teacher_id"`
	StudentID string `json:"student_id"`
}

// LessonResponse is the external view of a lesson.
type LessonResponse struct {
	ID              string    `json:"id"`
	TeacherID       string    `json:"teacher_id"`
	StudentID       string    `json:"student_id"`
	Status          string    `json:"status"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	Language        string    `json:"language"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewLessonResponse maps a lesson record to its external view.
func NewLessonResponse(lesson models.Lesson) LessonResponse {
	return LessonResponse{
		ID:              lesson.ID,
		TeacherID:       lesson.TeacherID,
		StudentID:       lesson.StudentID,
		Status:          string(lesson.Status),
		DurationMinutes: lesson.DurationMinutes,
		Price:           lesson.Price,
		Language:        lesson.Language,
		ScheduledAt:     lesson.ScheduledAt,
		CreatedAt:       lesson.CreatedAt,
	}
}
