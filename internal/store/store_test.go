package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
	"github.com/lingora-app/lingora-api/internal/repository"
)

func newTestStore(t *testing.T) (*Store, *repository.MemorySnapshotRepository) {
	t.Helper()

	repo := repository.NewMemorySnapshotRepository()
	s, err := New(context.Background(), repo, zerolog.Nop())
	require.NoError(t, err)
	return s, repo
}

func seedStudent(t *testing.T, s *Store, email string) dto.StudentResponse {
	t.Helper()

	student, err := s.CreateStudent(context.Background(), dto.StudentCreateRequest{
		Name:     "Maria Lopez",
		Email:    email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return student
}

func seedApprovedTeacher(t *testing.T, s *Store, email string) dto.TeacherResponse {
	t.Helper()

	teacher, err := s.CreateTeacherApplication(context.Background(), dto.TeacherApplicationRequest{
		Name:              "Kenji Sato",
		Email:             email,
		Password:          "correct-horse",
		TeachingLanguages: []string{"japanese"},
		NativeLanguage:    "japanese",
		HourlyRate:        30,
	})
	require.NoError(t, err)
	require.True(t, s.ApproveTeacher(context.Background(), teacher.ID))
	return teacher
}

// earnTeacher books and completes a lesson so the teacher accrues
// price * (1 - fee rate) in earnings.
func earnTeacher(t *testing.T, s *Store, teacherID, studentID string, price float64) {
	t.Helper()

	_, err := s.CreateLesson(context.Background(), dto.LessonCreateRequest{
		TeacherID:       teacherID,
		StudentID:       studentID,
		Status:          string(models.LessonCompleted),
		DurationMinutes: 60,
		Price:           price,
		Language:        "japanese",
	})
	require.NoError(t, err)
}

func TestCommitFailureKeepsInMemoryState(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	repo.FailSaves = true

	_, err := s.Recharge(ctx, dto.RechargeRequest{UserID: student.ID, Amount: 40, Method: "card"})
	require.NoError(t, err)
	require.Equal(t, 40.0, s.Balance(ctx, student.ID).Balance)
}

func TestStateSurvivesReload(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	_, err := s.Recharge(ctx, dto.RechargeRequest{UserID: student.ID, Amount: 25, Method: "card"})
	require.NoError(t, err)

	reloaded, err := New(ctx, repo, zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, 25.0, reloaded.Balance(ctx, student.ID).Balance)
	require.NotEmpty(t, reloaded.RecentActivities(ctx, 0))
}

func TestActivityFeedCapsAtCapacityNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	for i := 1; i <= FeedCapacity+5; i++ {
		_, err := s.Recharge(ctx, dto.RechargeRequest{UserID: student.ID, Amount: float64(i), Method: "card"})
		require.NoError(t, err)
	}

	activities := s.RecentActivities(ctx, 0)
	require.Len(t, activities, FeedCapacity)
	require.Equal(t, float64(FeedCapacity+5), activities[0].Metadata["amount"])

	recent := s.RecentActivities(ctx, 3)
	require.Len(t, recent, 3)
	require.Equal(t, float64(FeedCapacity+4), recent[1].Metadata["amount"])
}

func TestIDsCarryPrefixAndAreUnique(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := s.newID("lesson")
		require.Regexp(t, `^lesson_\d+_[0-9a-f-]{8}$`, id)
		require.False(t, seen[id], fmt.Sprintf("duplicate id %s", id))
		seen[id] = true
	}
}

func TestSettingsExposeDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	settings := s.Settings(context.Background())
	require.Equal(t, models.DefaultFeeRate, settings.FeeRate)
	require.NotEmpty(t, settings.SupportedLanguages)
}

func TestSetFeeRateAppliesToLaterCompletions(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	require.Error(t, s.SetFeeRate(ctx, 1.2))
	require.NoError(t, s.SetFeeRate(ctx, 0.2))
	require.Equal(t, 0.2, s.Settings(ctx).FeeRate)

	earnTeacher(t, s, teacher.ID, student.ID, 100)
	require.InDelta(t, 80.0, s.ListTeachers(ctx, dto.AccountFilter{})[0].Earnings, 1e-9)
}

func TestStatsRollingMonthWindow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	base := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base.AddDate(0, -2, 0) }
	earnTeacher(t, s, teacher.ID, student.ID, 100)

	s.now = func() time.Time { return base.AddDate(0, 0, -3) }
	earnTeacher(t, s, teacher.ID, student.ID, 60)
	_, err := s.CreateLesson(ctx, dto.LessonCreateRequest{
		TeacherID:       teacher.ID,
		StudentID:       student.ID,
		DurationMinutes: 30,
		Price:           20,
		Language:        "japanese",
	})
	require.NoError(t, err)

	s.now = func() time.Time { return base }
	stats := s.Stats(ctx)

	require.Equal(t, 1, stats.ActiveStudents)
	require.Equal(t, 1, stats.ApprovedTeachers)
	require.Equal(t, 2, stats.CompletedLessons)
	require.Equal(t, 160.0, stats.TotalRevenue)
	// Scheduled lessons count toward volume, only completed toward revenue.
	require.Equal(t, 2, stats.LessonsLastMonth)
	require.Equal(t, 60.0, stats.RevenueLastMonth)
}
