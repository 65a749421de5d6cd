package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// CreateStudent registers a learner account. The email must be unique
// across students and teachers.
func (s *Store) CreateStudent(ctx context.Context, req dto.StudentCreateRequest) (dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(req.Email) {
		return dto.StudentResponse{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.StudentResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	student := models.Student{
		ID:                s.newID("student"),
		Name:              req.Name,
		Email:             normalizeEmail(req.Email),
		PasswordHash:      string(hash),
		Status:            models.StudentActive,
		LearningLanguages: req.LearningLanguages,
		CreatedAt:         s.now(),
	}
	s.snap.Students = append(s.snap.Students, student)

	s.recordActivity(models.ActivityUserSignup, student.ID, student.Name,
		fmt.Sprintf("%s joined as a student", student.Name), nil)
	s.commit(ctx)

	return dto.NewStudentResponse(student), nil
}

// CreateTeacher seeds a minimal teacher record from a bare signup. The
// account stays incomplete until a full application arrives.
func (s *Store) CreateTeacher(ctx context.Context, req dto.TeacherSignupRequest) (dto.TeacherResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(req.Email) {
		return dto.TeacherResponse{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.TeacherResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	teacher := models.Teacher{
		ID:           s.newID("teacher"),
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Status:       models.TeacherIncomplete,
		CreatedAt:    s.now(),
	}
	s.snap.Teachers = append(s.snap.Teachers, teacher)

	s.recordActivity(models.ActivityUserSignup, teacher.ID, teacher.Name,
		fmt.Sprintf("%s signed up as a teacher", teacher.Name), nil)
	s.commit(ctx)

	return dto.NewTeacherResponse(teacher), nil
}

// CreateTeacherApplication registers a teacher with a complete application,
// entering the vetting queue as pending.
func (s *Store) CreateTeacherApplication(ctx context.Context, req dto.TeacherApplicationRequest) (dto.TeacherResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(req.Email) {
		return dto.TeacherResponse{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.TeacherResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	teacher := models.Teacher{
		ID:                s.newID("teacher"),
		Name:              req.Name,
		Email:             normalizeEmail(req.Email),
		PasswordHash:      string(hash),
		Status:            models.TeacherPending,
		TeachingLanguages: req.TeachingLanguages,
		NativeLanguage:    req.NativeLanguage,
		HourlyRate:        req.HourlyRate,
		Specialties:       req.Specialties,
		Application:       applicationFromPayload(req.Application),
		MeetingPlatforms:  req.MeetingPlatforms,
		CreatedAt:         s.now(),
	}
	s.snap.Teachers = append(s.snap.Teachers, teacher)

	s.recordActivity(models.ActivityTeacherApplication, teacher.ID, teacher.Name,
		fmt.Sprintf("%s applied to teach", teacher.Name),
		map[string]any{"languages": teacher.TeachingLanguages})
	s.commit(ctx)

	return dto.NewTeacherResponse(teacher), nil
}

// UpdateTeacherApplication merges application fields into an existing
// teacher and resets the status to pending. Returns false for unknown ids;
// callers must check.
func (s *Store) UpdateTeacherApplication(ctx context.Context, teacherID string, update dto.TeacherApplicationUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findTeacher(teacherID)
	if teacher == nil {
		return false
	}

	if update.TeachingLanguages != nil {
		teacher.TeachingLanguages = *update.TeachingLanguages
	}
	if update.NativeLanguage != nil {
		teacher.NativeLanguage = *update.NativeLanguage
	}
	if update.HourlyRate != nil {
		teacher.HourlyRate = *update.HourlyRate
	}
	if update.Specialties != nil {
		teacher.Specialties = *update.Specialties
	}
	if update.Application != nil {
		teacher.Application = applicationFromPayload(*update.Application)
	}
	if update.MeetingPlatforms != nil {
		teacher.MeetingPlatforms = *update.MeetingPlatforms
	}
	teacher.Status = models.TeacherPending

	s.commit(ctx)
	return true
}

// Authenticate matches an account by email and password, credentials
// stripped from the result. Students must be active; teachers may sign in
// while incomplete, pending or approved. Students are checked first, but
// the email-uniqueness invariant makes the order inconsequential.
func (s *Store) Authenticate(ctx context.Context, email, password string) (dto.AuthenticatedAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := normalizeEmail(email)

	for i := range s.snap.Students {
		student := s.snap.Students[i]
		if normalizeEmail(student.Email) != needle || student.Status != models.StudentActive {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password)) != nil {
			continue
		}
		response := dto.NewStudentResponse(student)
		return dto.AuthenticatedAccount{Kind: "student", Student: &response}, true
	}

	for i := range s.snap.Teachers {
		teacher := s.snap.Teachers[i]
		if normalizeEmail(teacher.Email) != needle || teacher.Status == models.TeacherRejected {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)) != nil {
			continue
		}
		response := dto.NewTeacherResponse(teacher)
		return dto.AuthenticatedAccount{Kind: "teacher", Teacher: &response}, true
	}

	return dto.AuthenticatedAccount{}, false
}

// ApproveTeacher moves a pending application to approved. Placeholder
// presentation statistics are seeded once for teachers without a rating.
func (s *Store) ApproveTeacher(ctx context.Context, teacherID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findTeacher(teacherID)
	if teacher == nil || !teacher.CanTransitionTo(models.TeacherApproved) {
		return false
	}

	teacher.Status = models.TeacherApproved
	if teacher.Rating == 0 {
		teacher.Rating = 5.0
		teacher.ReviewCount = 0
		teacher.Badges = []string{"new_teacher"}
	}
	s.snap.Stats.ApprovedTeachers = s.countTeachersByStatus(models.TeacherApproved)

	s.recordActivity(models.ActivityTeacherApproved, teacher.ID, teacher.Name,
		fmt.Sprintf("%s was approved to teach", teacher.Name), nil)
	s.commit(ctx)
	return true
}

// RejectTeacher moves a pending application to rejected.
func (s *Store) RejectTeacher(ctx context.Context, teacherID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	teacher := s.findTeacher(teacherID)
	if teacher == nil || !teacher.CanTransitionTo(models.TeacherRejected) {
		return false
	}

	teacher.Status = models.TeacherRejected
	s.snap.Stats.ApprovedTeachers = s.countTeachersByStatus(models.TeacherApproved)

	s.recordActivity(models.ActivityTeacherRejected, teacher.ID, teacher.Name,
		fmt.Sprintf("%s's application was rejected", teacher.Name), nil)
	s.commit(ctx)
	return true
}

// ListStudents returns students matching the filter, in insertion order.
func (s *Store) ListStudents(ctx context.Context, filter dto.AccountFilter) []dto.StudentResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.StudentResponse, 0, len(s.snap.Students))
	for i := range s.snap.Students {
		student := s.snap.Students[i]
		if filter.Status != "" && string(student.Status) != filter.Status {
			continue
		}
		if !matchesStudent(student, filter.Query) {
			continue
		}
		responses = append(responses, dto.NewStudentResponse(student))
	}
	return responses
}

// ListTeachers returns teachers matching the filter, in insertion order.
// Public listings must pass the approved status filter.
func (s *Store) ListTeachers(ctx context.Context, filter dto.AccountFilter) []dto.TeacherResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.TeacherResponse, 0, len(s.snap.Teachers))
	for i := range s.snap.Teachers {
		teacher := s.snap.Teachers[i]
		if filter.Status != "" && string(teacher.Status) != filter.Status {
			continue
		}
		if !matchesTeacher(teacher, filter.Query) {
			continue
		}
		responses = append(responses, dto.NewTeacherResponse(teacher))
	}
	return responses
}

func (s *Store) countTeachersByStatus(status models.TeacherStatus) int {
	count := 0
	for i := range s.snap.Teachers {
		if s.snap.Teachers[i].Status == status {
			count++
		}
	}
	return count
}

func matchesStudent(student models.Student, query string) bool {
	if query == "" {
		return true
	}
	if containsFold(student.Name, query) || containsFold(student.Email, query) {
		return true
	}
	for _, language := range student.LearningLanguages {
		if containsFold(language, query) {
			return true
		}
	}
	return false
}

func matchesTeacher(teacher models.Teacher, query string) bool {
	if query == "" {
		return true
	}
	if containsFold(teacher.Name, query) || containsFold(teacher.Email, query) {
		return true
	}
	if containsFold(teacher.NativeLanguage, query) {
		return true
	}
	for _, language := range teacher.TeachingLanguages {
		if containsFold(language, query) {
			return true
		}
	}
	return false
}

func applicationFromPayload(payload dto.ApplicationPayload) *models.TeacherApplication {
	return &models.TeacherApplication{
		Headline:       payload.Headline,
		Bio:            payload.Bio,
		Experience:     payload.Experience,
		Certifications: payload.Certifications,
		VideoURL:       payload.VideoURL,
		Extra:          payload.Extra,
	}
}
