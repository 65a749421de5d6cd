package dto

import (
	"time"

	"github.com/lingora-app/lingora-api/internal/models"
)

// PostCreateRequest publishes a community post. Content is sanitized before
// storage.
type PostCreateRequest struct {
	AuthorID   string `json:"author_id" validate:"required"`
	AuthorName string `json:"author_name" validate:"required"`
	Title      string `json:"title" validate:"required,max=255"`
	Content    string `json:"content" validate:"required"`
	Language   string `json:"language"`
}

// EventCreateRequest schedules a community event with a participant cap.
type EventCreateRequest struct {
	HostID          string    `json:"host_id" validate:"required"`
	HostName        string    `json:"host_name" validate:"required"`
	Title           string    `json:"title" validate:"required,max=255"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	StartsAt        time.Time `json:"starts_at"`
	MaxParticipants int       `json:"max_participants" validate:"required,gt=0"`
}

// ChallengeCreateRequest opens a practice challenge.
type ChallengeCreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

// StudyGroupCreateRequest starts a study group around one language.
type StudyGroupCreateRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Language string `json:"language" validate:"required"`
}

// JoinRequest adds a user to an event, challenge or study group.
type JoinRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// ModerateRequest applies a moderation decision to a post.
type ModerateRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject delete"`
}

// PostResponse is the external view of a community post.
type PostResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Language   string    `json:"language,omitempty"`
	Likes      int       `json:"likes"`
	Moderated  bool      `json:"moderated"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventResponse is the external view of a community event.
type EventResponse struct {
	ID              string    `json:"id"`
	HostID          string    `json:"host_id"`
	HostName        string    `json:"host_name"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Language        string    `json:"language,omitempty"`
	StartsAt        time.Time `json:"starts_at"`
	MaxParticipants int       `json:"max_participants"`
	Participants    []string  `json:"participants"`
	CreatedAt       time.Time `json:"created_at"`
}

// ChallengeResponse is the external view of a challenge.
type ChallengeResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Active       bool      `json:"active"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudyGroupResponse is the external view of a study group.
type StudyGroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Language  string    `json:"language"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPostResponse maps a post record to its external view.
func NewPostResponse(post models.CommunityPost) PostResponse {
	return PostResponse{
		ID:         post.ID,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		Title:      post.Title,
		Content:    post.Content,
		Language:   post.Language,
		Likes:      post.Likes,
		Moderated:  post.Moderated,
		CreatedAt:  post.CreatedAt,
	}
}

// NewEventResponse maps an event record to its external view.
func NewEventResponse(event models.CommunityEvent) EventResponse {
	return EventResponse{
		ID:              event.ID,
		HostID:          event.HostID,
		HostName:        event.HostName,
		Title:           event.Title,
		Description:     event.Description,
		Language:        event.Language,
		StartsAt:        event.StartsAt,
		MaxParticipants: event.MaxParticipants,
		Participants:    event.Participants,
		CreatedAt:       event.CreatedAt,
	}
}

// NewChallengeResponse maps a challenge record to its external view.
func NewChallengeResponse(challenge models.CommunityChallenge) ChallengeResponse {
	return ChallengeResponse{
		ID:           challenge.ID,
		Title:        challenge.Title,
		Description:  challenge.Description,
		Active:       challenge.Active,
		Participants: challenge.Participants,
		CreatedAt:    challenge.CreatedAt,
	}
}

// NewStudyGroupResponse maps a study group record to its external view.
func NewStudyGroupResponse(group models.StudyGroup) StudyGroupResponse {
	return StudyGroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		Language:  group.Language,
		Members:   group.Members,
		CreatedAt: group.CreatedAt,
	}
}
