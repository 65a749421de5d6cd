package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

func TestCreateCompletedLessonAppliesEffectsOnce(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	lesson, err := s.CreateLesson(ctx, dto.LessonCreateRequest{
		TeacherID:       teacher.ID,
		StudentID:       student.ID,
		Status:          string(models.LessonCompleted),
		DurationMinutes: 90,
		Price:           100,
		Language:        "japanese",
	})
	require.NoError(t, err)
	require.Equal(t, "completed", lesson.Status)

	students := s.ListStudents(ctx, dto.AccountFilter{})
	require.Len(t, students, 1)
	require.Equal(t, 1, students[0].CompletedLessons)
	require.Equal(t, 1.5, students[0].HoursLearned)

	teachers := s.ListTeachers(ctx, dto.AccountFilter{})
	require.Len(t, teachers, 1)
	require.Equal(t, 1, teachers[0].CompletedLessons)
	require.Equal(t, 100*(1-models.DefaultFeeRate), teachers[0].Earnings)

	stats := s.Stats(ctx)
	require.Equal(t, 1, stats.CompletedLessons)
	require.Equal(t, 100.0, stats.TotalRevenue)

	// An already completed lesson cannot be completed again.
	require.False(t, s.CompleteLesson(ctx, lesson.ID))
	require.Equal(t, 100*(1-models.DefaultFeeRate), s.ListTeachers(ctx, dto.AccountFilter{})[0].Earnings)
}

func TestCompleteLessonTransitionsFromScheduledOnly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	lesson, err := s.CreateLesson(ctx, dto.LessonCreateRequest{
		TeacherID:       teacher.ID,
		StudentID:       student.ID,
		DurationMinutes: 60,
		Price:           40,
		Language:        "japanese",
	})
	require.NoError(t, err)
	require.Equal(t, "scheduled", lesson.Status, "lessons default to scheduled")

	require.True(t, s.CompleteLesson(ctx, lesson.ID))
	require.Equal(t, 40*(1-models.DefaultFeeRate), s.ListTeachers(ctx, dto.AccountFilter{})[0].Earnings)

	cancelled := string(models.LessonCancelled)
	require.True(t, s.UpdateLesson(ctx, lesson.ID, dto.LessonUpdateRequest{Status: &cancelled}))
	require.False(t, s.CompleteLesson(ctx, lesson.ID))
	require.False(t, s.CompleteLesson(ctx, "lesson_missing"))
}

func TestUpdateLessonNeverTriggersCompletionEffects(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	lesson, err := s.CreateLesson(ctx, dto.LessonCreateRequest{
		TeacherID:       teacher.ID,
		StudentID:       student.ID,
		DurationMinutes: 60,
		Price:           40,
		Language:        "japanese",
	})
	require.NoError(t, err)

	completed := string(models.LessonCompleted)
	price := 55.0
	require.True(t, s.UpdateLesson(ctx, lesson.ID, dto.LessonUpdateRequest{
		Status: &completed,
		Price:  &price,
	}))

	updated := s.ListLessons(ctx, dto.LessonFilter{Status: "completed"})
	require.Len(t, updated, 1)
	require.Equal(t, 55.0, updated[0].Price)

	// The raw status flip moves no money and advances no counters.
	require.Equal(t, 0.0, s.ListTeachers(ctx, dto.AccountFilter{})[0].Earnings)
	require.Equal(t, 0, s.ListStudents(ctx, dto.AccountFilter{})[0].CompletedLessons)
}

func TestListLessonsFilters(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")
	other := seedApprovedTeacher(t, s, "lena@example.com")

	for _, teacherID := range []string{teacher.ID, teacher.ID, other.ID} {
		_, err := s.CreateLesson(ctx, dto.LessonCreateRequest{
			TeacherID:       teacherID,
			StudentID:       student.ID,
			DurationMinutes: 60,
			Price:           40,
			Language:        "japanese",
		})
		require.NoError(t, err)
	}

	require.Len(t, s.ListLessons(ctx, dto.LessonFilter{TeacherID: teacher.ID}), 2)
	require.Len(t, s.ListLessons(ctx, dto.LessonFilter{StudentID: student.ID}), 3)
	require.Len(t, s.ListLessons(ctx, dto.LessonFilter{Status: "completed"}), 0)
}
