package store

import (
	"context"
	"fmt"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// CreateLesson inserts a lesson with a server-assigned id. A lesson created
// already completed triggers the completion side effects exactly once.
func (s *Store) CreateLesson(ctx context.Context, req dto.LessonCreateRequest) (dto.LessonResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.LessonStatus(req.Status)
	if status == "" {
		status = models.LessonScheduled
	}

	lesson := models.Lesson{
		ID:              s.newID("lesson"),
		TeacherID:       req.TeacherID,
		StudentID:       req.StudentID,
		Status:          status,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Language:        req.Language,
		ScheduledAt:     req.ScheduledAt,
		CreatedAt:       s.now(),
	}
	s.snap.Lessons = append(s.snap.Lessons, lesson)

	s.recordActivity(models.ActivityLessonBooked, lesson.StudentID, "",
		fmt.Sprintf("%s lesson booked", lesson.Language),
		map[string]any{"lesson_id": lesson.ID, "teacher_id": lesson.TeacherID})

	if lesson.Status == models.LessonCompleted {
		s.applyCompletionEffects(lesson)
	}
	s.commit(ctx)

	return dto.NewLessonResponse(lesson), nil
}

// CompleteLesson is the explicit completion transition. It applies the
// financial side effects exactly once; only scheduled lessons qualify.
func (s *Store) CompleteLesson(ctx context.Context, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson := s.findLesson(lessonID)
	if lesson == nil || lesson.Status != models.LessonScheduled {
		return false
	}

	lesson.Status = models.LessonCompleted
	s.applyCompletionEffects(*lesson)
	s.commit(ctx)
	return true
}

// UpdateLesson shallow-merges fields into an existing lesson. Status
// changes here never trigger completion side effects; callers wanting the
// financial effects use CompleteLesson.
func (s *Store) UpdateLesson(ctx context.Context, lessonID string, patch dto.LessonUpdateRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson := s.findLesson(lessonID)
	if lesson == nil {
		return false
	}

	if patch.Status != nil {
		lesson.Status = models.LessonStatus(*patch.Status)
	}
	if patch.DurationMinutes != nil {
		lesson.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Price != nil {
		lesson.Price = *patch.Price
	}
	if patch.Language != nil {
		lesson.Language = *patch.Language
	}
	if patch.ScheduledAt != nil {
		lesson.ScheduledAt = *patch.ScheduledAt
	}

	s.commit(ctx)
	return true
}

// ListLessons returns lessons matching the filter, in insertion order.
func (s *Store) ListLessons(ctx context.Context, filter dto.LessonFilter) []dto.LessonResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.LessonResponse, 0, len(s.snap.Lessons))
	for i := range s.snap.Lessons {
		lesson := s.snap.Lessons[i]
		if filter.Status != "" && string(lesson.Status) != filter.Status {
			continue
		}
		if filter.TeacherID != "" && lesson.TeacherID != filter.TeacherID {
			continue
		}
		if filter.StudentID != "" && lesson.StudentID != filter.StudentID {
			continue
		}
		responses = append(responses, dto.NewLessonResponse(lesson))
	}
	return responses
}

// applyCompletionEffects credits the teacher, advances the student's
// progress counters and accumulates global revenue. Invoked exactly once
// per lesson, at the completion transition.
func (s *Store) applyCompletionEffects(lesson models.Lesson) {
	if student := s.findStudent(lesson.StudentID); student != nil {
		student.CompletedLessons++
		student.HoursLearned += float64(lesson.DurationMinutes) / 60
	}

	if teacher := s.findTeacher(lesson.TeacherID); teacher != nil {
		teacher.CompletedLessons++
		teacher.Earnings += lesson.Price * (1 - s.snap.Settings.FeeRate)
	}

	s.snap.Stats.CompletedLessons++
	s.snap.Stats.TotalRevenue += lesson.Price

	s.recordActivity(models.ActivityLessonCompleted, lesson.StudentID, "",
		fmt.Sprintf("%s lesson completed", lesson.Language),
		map[string]any{"lesson_id": lesson.ID, "teacher_id": lesson.TeacherID, "price": lesson.Price})
}
