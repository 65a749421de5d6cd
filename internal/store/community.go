package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// CreatePost publishes a community post. User-generated content is run
// through the HTML sanitizer before storage.
func (s *Store) CreatePost(ctx context.Context, req dto.PostCreateRequest) (dto.PostResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(s.sanitizer.Sanitize(req.Title))
	content := strings.TrimSpace(s.sanitizer.Sanitize(req.Content))
	if title == "" || content == "" {
		return dto.PostResponse{}, fmt.Errorf("post content empty after sanitization")
	}

	post := models.CommunityPost{
		ID:         s.newID("post"),
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
		Title:      title,
		Content:    content,
		Language:   req.Language,
		CreatedAt:  s.now(),
	}
	s.snap.Community.Posts = append(s.snap.Community.Posts, post)

	s.recordActivity(models.ActivityPostCreated, post.AuthorID, post.AuthorName,
		fmt.Sprintf("%s published a post", post.AuthorName), nil)
	s.commit(ctx)

	return dto.NewPostResponse(post), nil
}

// LikePost increments a post's like counter.
func (s *Store) LikePost(ctx context.Context, postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.Posts {
		if s.snap.Community.Posts[i].ID == postID {
			s.snap.Community.Posts[i].Likes++
			s.commit(ctx)
			return true
		}
	}
	return false
}

// ModeratePost applies an admin decision: approve sets the moderated flag,
// reject clears it, delete removes the record.
func (s *Store) ModeratePost(ctx context.Context, postID, action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.Posts {
		if s.snap.Community.Posts[i].ID != postID {
			continue
		}
		switch action {
		case "approve":
			s.snap.Community.Posts[i].Moderated = true
		case "reject":
			s.snap.Community.Posts[i].Moderated = false
		case "delete":
			s.snap.Community.Posts = append(s.snap.Community.Posts[:i], s.snap.Community.Posts[i+1:]...)
		default:
			return false
		}
		s.commit(ctx)
		return true
	}
	return false
}

// ListPosts returns community posts in insertion order.
func (s *Store) ListPosts(ctx context.Context) []dto.PostResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.PostResponse, 0, len(s.snap.Community.Posts))
	for _, post := range s.snap.Community.Posts {
		responses = append(responses, dto.NewPostResponse(post))
	}
	return responses
}

// CreateEvent schedules a community event with a participant cap.
func (s *Store) CreateEvent(ctx context.Context, req dto.EventCreateRequest) (dto.EventResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(s.sanitizer.Sanitize(req.Title))
	if title == "" {
		return dto.EventResponse{}, fmt.Errorf("event title empty after sanitization")
	}

	event := models.CommunityEvent{
		ID:              s.newID("event"),
		HostID:          req.HostID,
		HostName:        req.HostName,
		Title:           title,
		Description:     strings.TrimSpace(s.sanitizer.Sanitize(req.Description)),
		Language:        req.Language,
		StartsAt:        req.StartsAt,
		MaxParticipants: req.MaxParticipants,
		Participants:    []string{},
		CreatedAt:       s.now(),
	}
	s.snap.Community.Events = append(s.snap.Community.Events, event)

	s.recordActivity(models.ActivityEventCreated, event.HostID, event.HostName,
		fmt.Sprintf("%s scheduled an event", event.HostName), nil)
	s.commit(ctx)

	return dto.NewEventResponse(event), nil
}

// JoinEvent adds a participant. Full events and duplicate membership are
// rejected.
func (s *Store) JoinEvent(ctx context.Context, eventID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.Events {
		event := &s.snap.Community.Events[i]
		if event.ID != eventID {
			continue
		}
		if len(event.Participants) >= event.MaxParticipants || containsID(event.Participants, userID) {
			return false
		}
		event.Participants = append(event.Participants, userID)
		s.commit(ctx)
		return true
	}
	return false
}

// DeleteEvent removes an event.
func (s *Store) DeleteEvent(ctx context.Context, eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.Events {
		if s.snap.Community.Events[i].ID == eventID {
			s.snap.Community.Events = append(s.snap.Community.Events[:i], s.snap.Community.Events[i+1:]...)
			s.commit(ctx)
			return true
		}
	}
	return false
}

// ListEvents returns community events in insertion order.
func (s *Store) ListEvents(ctx context.Context) []dto.EventResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.EventResponse, 0, len(s.snap.Community.Events))
	for _, event := range s.snap.Community.Events {
		responses = append(responses, dto.NewEventResponse(event))
	}
	return responses
}

// CreateChallenge opens an active practice challenge.
func (s *Store) CreateChallenge(ctx context.Context, req dto.ChallengeCreateRequest) (dto.ChallengeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(s.sanitizer.Sanitize(req.Title))
	if title == "" {
		return dto.ChallengeResponse{}, fmt.Errorf("challenge title empty after sanitization")
	}

	challenge := models.CommunityChallenge{
		ID:           s.newID("challenge"),
		Title:        title,
		Description:  strings.TrimSpace(s.sanitizer.Sanitize(req.Description)),
		Active:       true,
		Participants: []string{},
		CreatedAt:    s.now(),
	}
	s.snap.Community.Challenges = append(s.snap.Community.Challenges, challenge)

	s.recordActivity(models.ActivityChallengeCreated, "", "",
		fmt.Sprintf("challenge %q opened", challenge.Title), nil)
	s.commit(ctx)

	return dto.NewChallengeResponse(challenge), nil
}

// JoinChallenge adds a participant. There is no capacity cap; inactive
// challenges and duplicate membership are rejected.
func (s *Store) JoinChallenge(ctx context.Context, challengeID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.Challenges {
		challenge := &s.snap.Community.Challenges[i]
		if challenge.ID != challengeID {
			continue
		}
		if !challenge.Active || containsID(challenge.Participants, userID) {
			return false
		}
		challenge.Participants = append(challenge.Participants, userID)
		s.commit(ctx)
		return true
	}
	return false
}

// DeactivateChallenge closes a challenge without deleting its history.
func (s *Store) DeactivateChallenge(ctx context.Context, challengeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.Challenges {
		if s.snap.Community.Challenges[i].ID == challengeID {
			s.snap.Community.Challenges[i].Active = false
			s.commit(ctx)
			return true
		}
	}
	return false
}

// ListChallenges returns challenges in insertion order.
func (s *Store) ListChallenges(ctx context.Context) []dto.ChallengeResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.ChallengeResponse, 0, len(s.snap.Community.Challenges))
	for _, challenge := range s.snap.Community.Challenges {
		responses = append(responses, dto.NewChallengeResponse(challenge))
	}
	return responses
}

// CreateStudyGroup starts a study group around one language.
func (s *Store) CreateStudyGroup(ctx context.Context, req dto.StudyGroupCreateRequest) (dto.StudyGroupResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	if name == "" {
		return dto.StudyGroupResponse{}, fmt.Errorf("group name empty after sanitization")
	}

	group := models.StudyGroup{
		ID:        s.newID("group"),
		Name:      name,
		Language:  req.Language,
		Members:   []string{},
		CreatedAt: s.now(),
	}
	s.snap.Community.StudyGroups = append(s.snap.Community.StudyGroups, group)
	s.commit(ctx)

	return dto.NewStudyGroupResponse(group), nil
}

// JoinStudyGroup adds a member; duplicate membership is rejected.
func (s *Store) JoinStudyGroup(ctx context.Context, groupID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.Community.StudyGroups {
		group := &s.snap.Community.StudyGroups[i]
		if group.ID != groupID {
			continue
		}
		if containsID(group.Members, userID) {
			return false
		}
		group.Members = append(group.Members, userID)
		s.commit(ctx)
		return true
	}
	return false
}

// ListStudyGroups returns study groups in insertion order.
func (s *Store) ListStudyGroups(ctx context.Context) []dto.StudyGroupResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make([]dto.StudyGroupResponse, 0, len(s.snap.Community.StudyGroups))
	for _, group := range s.snap.Community.StudyGroups {
		responses = append(responses, dto.NewStudyGroupResponse(group))
	}
	return responses
}
