package models

import "time"

// CommunityPost is a member-authored post with a like counter and a
// moderation flag set by admins.
type CommunityPost struct {
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

// CommunityEvent is a hosted gathering with a participant cap.
type CommunityEvent struct {
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

// CommunityChallenge is an open practice challenge without a capacity cap.
type CommunityChallenge struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Active       bool      `json:"active"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
}

// StudyGroup is a lightweight member circle around one language.
type StudyGroup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Language  string    `json:"language"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// CommunityCollections groups the community sub-collections inside the
// persisted snapshot.
type CommunityCollections struct {
	Posts       []CommunityPost      `json:"posts"`
	Events      []CommunityEvent     `json:"events"`
	Challenges  []CommunityChallenge `json:"challenges"`
	StudyGroups []StudyGroup         `json:"study_groups"`
}
