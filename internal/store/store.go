// Package store implements the marketplace domain core: an in-process
// store owning every entity collection and enforcing the platform's
// business rules. Each mutating operation validates, mutates the in-memory
// collections, appends activity entries and commits the whole snapshot to
// the persistence substrate.
package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/models"
	"github.com/lingora-app/lingora-api/internal/observability"
	"github.com/lingora-app/lingora-api/internal/repository"
	"github.com/lingora-app/lingora-api/pkg/ringlog"
)

// FeedCapacity bounds the activity feed to the newest entries.
const FeedCapacity = 100

// Store is the domain core. A single mutex serializes operations: every
// public call is one atomic transaction over the shared snapshot.
type Store struct {
	mu        sync.Mutex
	snap      models.Snapshot
	feed      *ringlog.Buffer[models.Activity]
	repo      repository.SnapshotRepository
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// New loads the snapshot from the repository and constructs the store.
func New(ctx context.Context, repo repository.SnapshotRepository, logger zerolog.Logger) (*Store, error) {
	snapshot, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Store{
		snap:      snapshot,
		feed:      ringlog.NewFrom(FeedCapacity, snapshot.Activities),
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger.With().Str("component", "domain_store").Logger(),
		now:       time.Now,
	}, nil
}

// commit writes the snapshot back to the persistence substrate. Failures
// are logged and the in-memory effect is kept: the store trades durability
// for availability.
func (s *Store) commit(ctx context.Context) {
	s.snap.Activities = s.feed.Items()

	if err := s.repo.Save(ctx, s.snap); err != nil {
		observability.StoreCommitFailures().Inc()
		s.logger.Warn().Err(err).Msg("snapshot commit failed, in-memory state retained")
		return
	}
	observability.StoreCommits().Inc()
}

func (s *Store) findStudent(id string) *models.Student {
	for i := range s.snap.Students {
		if s.snap.Students[i].ID == id {
			return &s.snap.Students[i]
		}
	}
	return nil
}

func (s *Store) findTeacher(id string) *models.Teacher {
	for i := range s.snap.Teachers {
		if s.snap.Teachers[i].ID == id {
			return &s.snap.Teachers[i]
		}
	}
	return nil
}

func (s *Store) findLesson(id string) *models.Lesson {
	for i := range s.snap.Lessons {
		if s.snap.Lessons[i].ID == id {
			return &s.snap.Lessons[i]
		}
	}
	return nil
}

func (s *Store) findPayout(id string) *models.PayoutRequest {
	for i := range s.snap.Payouts {
		if s.snap.Payouts[i].ID == id {
			return &s.snap.Payouts[i]
		}
	}
	return nil
}

// emailTaken checks uniqueness across both account kinds.
func (s *Store) emailTaken(email string) bool {
	needle := normalizeEmail(email)
	for i := range s.snap.Students {
		if normalizeEmail(s.snap.Students[i].Email) == needle {
			return true
		}
	}
	for i := range s.snap.Teachers {
		if normalizeEmail(s.snap.Teachers[i].Email) == needle {
			return true
		}
	}
	return false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
