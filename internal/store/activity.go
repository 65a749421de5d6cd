package store

import (
	"context"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// recordActivity appends an entry to the bounded feed. It is invoked as a
// side effect of the domain operations and never exposed directly.
func (s *Store) recordActivity(kind models.ActivityKind, userID, userName, description string, metadata map[string]any) {
	s.feed.Push(models.Activity{
		ID:          s.newID("act"),
		Kind:        kind,
		UserID:      userID,
		UserName:    userName,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   s.now(),
	})
}

// RecentActivities returns up to limit feed entries, newest first.
func (s *Store) RecentActivities(ctx context.Context, limit int) []dto.ActivityResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.feed.Recent(limit)
	responses := make([]dto.ActivityResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewActivityResponse(entry))
	}
	return responses
}
