package models

import "time"

// LessonStatus enumerates the lifecycle states of a lesson.
type LessonStatus string

const (
	LessonScheduled LessonStatus = "scheduled"
	LessonCompleted LessonStatus = "completed"
	LessonCancelled LessonStatus = "cancelled"
)

// Lesson links one teacher and one student for a single session.
type Lesson struct {
	ID              string       `json:"id"`
	TeacherID       string       `json:"teacher_id"`
	StudentID       string       `json:"student_id"`
	Status          LessonStatus `json:"status"`
	DurationMinutes int          `json:"duration_minutes"`
	Price           float64      `json:"price"`
	Language        string       `json:"language"`
	ScheduledAt     time.Time    `json:"scheduled_at"`
	CreatedAt       time.Time    `json:"created_at"`
}
