package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingora-app/lingora-api/internal/dto"
)

func TestEmailUniqueAcrossAccountKinds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seedStudent(t, s, "shared@example.com")

	_, err := s.CreateStudent(ctx, dto.StudentCreateRequest{
		Name:     "Second Student",
		Email:    "shared@example.com",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// Case differences do not dodge the uniqueness check.
	_, err = s.CreateTeacherApplication(ctx, dto.TeacherApplicationRequest{
		Name:              "Impostor",
		Email:             "SHARED@example.com",
		Password:          "correct-horse",
		TeachingLanguages: []string{"spanish"},
		NativeLanguage:    "spanish",
		HourlyRate:        20,
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = s.CreateTeacher(ctx, dto.TeacherSignupRequest{
		Name:     "Impostor",
		Email:    "shared@example.com",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticateMatchesAccountKind(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	student := seedStudent(t, s, "maria@example.com")
	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	account, ok := s.Authenticate(ctx, "maria@example.com", "correct-horse")
	require.True(t, ok)
	require.Equal(t, "student", account.Kind)
	require.Equal(t, student.ID, account.Student.ID)

	account, ok = s.Authenticate(ctx, "KENJI@example.com", "correct-horse")
	require.True(t, ok)
	require.Equal(t, "teacher", account.Kind)
	require.Equal(t, teacher.ID, account.Teacher.ID)

	_, ok = s.Authenticate(ctx, "maria@example.com", "wrong-password")
	require.False(t, ok)

	_, ok = s.Authenticate(ctx, "nobody@example.com", "correct-horse")
	require.False(t, ok)
}

func TestAuthenticateExcludesRejectedTeachers(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	teacher, err := s.CreateTeacherApplication(ctx, dto.TeacherApplicationRequest{
		Name:              "Kenji Sato",
		Email:             "kenji@example.com",
		Password:          "correct-horse",
		TeachingLanguages: []string{"japanese"},
		NativeLanguage:    "japanese",
		HourlyRate:        30,
	})
	require.NoError(t, err)

	_, ok := s.Authenticate(ctx, "kenji@example.com", "correct-horse")
	require.True(t, ok, "pending teachers may sign in")

	require.True(t, s.RejectTeacher(ctx, teacher.ID))
	_, ok = s.Authenticate(ctx, "kenji@example.com", "correct-horse")
	require.False(t, ok)
}

func TestApproveTeacherSeedsPresentationStatsOnce(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	teacher, err := s.CreateTeacherApplication(ctx, dto.TeacherApplicationRequest{
		Name:              "Kenji Sato",
		Email:             "kenji@example.com",
		Password:          "correct-horse",
		TeachingLanguages: []string{"japanese"},
		NativeLanguage:    "japanese",
		HourlyRate:        30,
	})
	require.NoError(t, err)
	require.Equal(t, "pending", teacher.Status)

	require.True(t, s.ApproveTeacher(ctx, teacher.ID))

	approved := s.ListTeachers(ctx, dto.AccountFilter{Status: "approved"})
	require.Len(t, approved, 1)
	require.Equal(t, 5.0, approved[0].Rating)
	require.Equal(t, []string{"new_teacher"}, approved[0].Badges)

	// Approval is not repeatable and rejection no longer applies.
	require.False(t, s.ApproveTeacher(ctx, teacher.ID))
	require.False(t, s.RejectTeacher(ctx, teacher.ID))
}

func TestApproveTeacherKeepsEarnedRating(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	teacher, err := s.CreateTeacherApplication(ctx, dto.TeacherApplicationRequest{
		Name:              "Kenji Sato",
		Email:             "kenji@example.com",
		Password:          "correct-horse",
		TeachingLanguages: []string{"japanese"},
		NativeLanguage:    "japanese",
		HourlyRate:        30,
	})
	require.NoError(t, err)

	record := s.findTeacher(teacher.ID)
	record.Rating = 4.2
	record.ReviewCount = 17

	require.True(t, s.ApproveTeacher(ctx, teacher.ID))

	approved := s.ListTeachers(ctx, dto.AccountFilter{Status: "approved"})
	require.Len(t, approved, 1)
	require.Equal(t, 4.2, approved[0].Rating)
	require.Equal(t, 17, approved[0].ReviewCount)
	require.Empty(t, approved[0].Badges)
}

func TestUpdateApplicationMergesAndResetsToPending(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	teacher := seedApprovedTeacher(t, s, "kenji@example.com")

	rate := 45.0
	languages := []string{"japanese", "korean"}
	ok := s.UpdateTeacherApplication(ctx, teacher.ID, dto.TeacherApplicationUpdate{
		HourlyRate:        &rate,
		TeachingLanguages: &languages,
	})
	require.True(t, ok)

	pending := s.ListTeachers(ctx, dto.AccountFilter{Status: "pending"})
	require.Len(t, pending, 1)
	require.Equal(t, 45.0, pending[0].HourlyRate)
	require.Equal(t, languages, pending[0].TeachingLanguages)
	require.Equal(t, "japanese", pending[0].NativeLanguage, "unset fields are untouched")

	require.False(t, s.UpdateTeacherApplication(ctx, "teacher_missing", dto.TeacherApplicationUpdate{}))
}

func TestListAccountsFiltersByQuery(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seedStudent(t, s, "maria@example.com")
	_, err := s.CreateStudent(ctx, dto.StudentCreateRequest{
		Name:              "Jonas Weber",
		Email:             "jonas@example.com",
		Password:          "correct-horse",
		LearningLanguages: []string{"French"},
	})
	require.NoError(t, err)

	byName := s.ListStudents(ctx, dto.AccountFilter{Query: "jonas"})
	require.Len(t, byName, 1)
	require.Equal(t, "Jonas Weber", byName[0].Name)

	byLanguage := s.ListStudents(ctx, dto.AccountFilter{Query: "french"})
	require.Len(t, byLanguage, 1)
	require.Equal(t, "Jonas Weber", byLanguage[0].Name)

	all := s.ListStudents(ctx, dto.AccountFilter{})
	require.Len(t, all, 2)
}
