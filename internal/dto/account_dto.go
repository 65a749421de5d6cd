package dto

import (
	"time"

	"github.com/lingora-app/lingora-api/internal/models"
)

// StudentCreateRequest is the signup payload for a learner account.
type StudentCreateRequest struct {
	Name              string   `json:"name" validate:"required,min=2,max=120"`
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,min=8"`
	LearningLanguages []string `json:"learning_languages"`
}

// TeacherSignupRequest seeds a minimal teacher record awaiting a full
// application.
type TeacherSignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ApplicationPayload carries the structured teacher application fields.
type ApplicationPayload struct {
	Headline       string         `json:"headline" validate:"max=255"`
	Bio            string         `json:"bio"`
	Experience     string         `json:"experience"`
	Certifications []string       `json:"certifications"`
	VideoURL       string         `json:"video_url" validate:"omitempty,url"`
	Extra          map[string]any `json:"extra"`
}

// TeacherApplicationRequest is the full application submitted at signup.
type TeacherApplicationRequest struct {
	Name              string             `json:"name" validate:"required,min=2,max=120"`
	Email             string             `json:"email" validate:"required,email"`
	Password          string             `json:"password" validate:"required,min=8"`
	TeachingLanguages []string           `json:"teaching_languages" validate:"required,min=1"`
	NativeLanguage    string             `json:"native_language" validate:"required"`
	HourlyRate        float64            `json:"hourly_rate" validate:"required,gt=0"`
	Specialties       []string           `json:"specialties"`
	Application       ApplicationPayload `json:"application"`
	MeetingPlatforms  []string           `json:"meeting_platforms"`
}

// TeacherApplicationUpdate merges application fields into an existing
// teacher. Nil fields are left untouched.
type TeacherApplicationUpdate struct {
	TeachingLanguages *[]string           `json:"teaching_languages"`
	NativeLanguage    *string             `json:"native_language"`
	HourlyRate        *float64            `json:"hourly_rate" validate:"omitempty,gt=0"`
	Specialties       *[]string           `json:"specialties"`
	Application       *ApplicationPayload `json:"application"`
	MeetingPlatforms  *[]string           `json:"meeting_platforms"`
}

// LoginRequest authenticates an account by email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountFilter narrows account listings. Query matches name, email or
// language case-insensitively.
type AccountFilter struct {
	Query  string `json:"query"`
	Status string `json:"status"`
}

// StudentResponse is the public view of a student, credentials stripped.
type StudentResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Status            string    `json:"status"`
	LearningLanguages []string  `json:"learning_languages"`
	WalletBalance     float64   `json:"wallet_balance"`
	CompletedLessons  int       `json:"completed_lessons"`
	HoursLearned      float64   `json:"hours_learned"`
	CreatedAt         time.Time `json:"created_at"`
}

// TeacherResponse is the public view of a teacher, credentials stripped.
type TeacherResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Email             string              `json:"email"`
	Status            string              `json:"status"`
	TeachingLanguages []string            `json:"teaching_languages"`
	NativeLanguage    string              `json:"native_language"`
	HourlyRate        float64             `json:"hourly_rate"`
	Specialties       []string            `json:"specialties"`
	Earnings          float64             `json:"earnings"`
	CompletedLessons  int                 `json:"completed_lessons"`
	Rating            float64             `json:"rating"`
	ReviewCount       int                 `json:"review_count"`
	Badges            []string            `json:"badges"`
	Application       *ApplicationPayload `json:"application,omitempty"`
	MeetingPlatforms  []string            `json:"meeting_platforms,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// AuthenticatedAccount tags the matched account kind for the caller.
type AuthenticatedAccount struct {
	Kind    string           `json:"kind"`
	Student *StudentResponse `json:"student,omitempty"`
	Teacher *TeacherResponse `json:"teacher,omitempty"`
}

// LoginResponse bundles the authenticated account with a bearer token.
type LoginResponse struct {
	AuthenticatedAccount
	Token string `json:"token"`
}

// NewStudentResponse maps a student record to its public view.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		ID:                student.ID,
		Name:              student.Name,
		Email:             student.Email,
		Status:            string(student.Status),
		LearningLanguages: student.LearningLanguages,
		WalletBalance:     student.WalletBalance,
		CompletedLessons:  student.CompletedLessons,
		HoursLearned:      student.HoursLearned,
		CreatedAt:         student.CreatedAt,
	}
}

// NewTeacherResponse maps a teacher record to its public view.
func NewTeacherResponse(teacher models.Teacher) TeacherResponse {
	response := TeacherResponse{
		ID:                teacher.ID,
		Name:              teacher.Name,
		Email:             teacher.Email,
		Status:            string(teacher.Status),
		TeachingLanguages: teacher.TeachingLanguages,
		NativeLanguage:    teacher.NativeLanguage,
		HourlyRate:        teacher.HourlyRate,
		Specialties:       teacher.Specialties,
		Earnings:          teacher.Earnings,
		CompletedLessons:  teacher.CompletedLessons,
		Rating:            teacher.Rating,
		ReviewCount:       teacher.ReviewCount,
		Badges:            teacher.Badges,
		MeetingPlatforms:  teacher.MeetingPlatforms,
		CreatedAt:         teacher.CreatedAt,
	}
	if teacher.Application != nil {
		response.Application = &ApplicationPayload{
			Headline:       teacher.Application.Headline,
			Bio:            teacher.Application.Bio,
			Experience:     teacher.Application.Experience,
			Certifications: teacher.Application.Certifications,
			VideoURL:       teacher.Application.VideoURL,
			Extra:          teacher.Application.Extra,
		}
	}
	return response
}
