package store

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/models"
)

// Stats recomputes the aggregate platform counters from the live
// collections on every call; nothing is cached. The rolling-month window
// filters lesson creation timestamps against now minus one calendar month.
func (s *Store) Stats(ctx context.Context) dto.PlatformStatsResponse {
	tracer := otel.Tracer("github.com/lingora-app/lingora-api/internal/store")
	_, span := tracer.Start(ctx, "store.stats")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	monthAgo := now.AddDate(0, -1, 0)

	response := dto.PlatformStatsResponse{GeneratedAt: now}

	for i := range s.snap.Students {
		if s.snap.Students[i].Status == models.StudentActive {
			response.ActiveStudents++
		}
	}

	for i := range s.snap.Teachers {
		switch s.snap.Teachers[i].Status {
		case models.TeacherApproved:
			response.ApprovedTeachers++
		case models.TeacherPending:
			response.PendingApplications++
		}
	}

	for i := range s.snap.Lessons {
		lesson := s.snap.Lessons[i]
		recent := lesson.CreatedAt.After(monthAgo)
		if recent {
			response.LessonsLastMonth++
		}
		if lesson.Status != models.LessonCompleted {
			continue
		}
		response.CompletedLessons++
		response.TotalRevenue += lesson.Price
		if recent {
			response.RevenueLastMonth += lesson.Price
		}
	}

	span.SetAttributes(
		attribute.Int("stats.active_students", response.ActiveStudents),
		attribute.Int("stats.approved_teachers", response.ApprovedTeachers),
	)
	return response
}

// Settings returns the admin-configurable platform settings block.
func (s *Store) Settings(ctx context.Context) dto.SettingsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.NewSettingsResponse(s.snap.Settings)
}

// SetFeeRate overrides the platform share applied at lesson completion.
// Already-credited earnings are never recomputed.
func (s *Store) SetFeeRate(ctx context.Context, rate float64) error {
	if rate <= 0 || rate >= 1 {
		return fmt.Errorf("fee rate must be between 0 and 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Settings.FeeRate == rate {
		return nil
	}
	s.snap.Settings.FeeRate = rate
	s.commit(ctx)
	return nil
}
