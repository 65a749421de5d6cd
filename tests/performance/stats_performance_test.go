package performance_test

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/handler"
	"github.com/lingora-app/lingora-api/internal/models"
	"github.com/lingora-app/lingora-api/internal/repository"
	"github.com/lingora-app/lingora-api/internal/store"
)

func setupStatsPerformanceApp(t *testing.T) *fiber.App {
	t.Helper()

	ctx := context.Background()
	domain, err := store.New(ctx, repository.NewMemorySnapshotRepository(), zerolog.New(io.Discard))
	require.NoError(t, err)

	student, err := domain.CreateStudent(ctx, dto.StudentCreateRequest{
		Name:     "Maria Lopez",
		Email:    "maria@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Seed a realistic lesson history across several teachers.
	for i := 0; i < 5; i++ {
		teacher, err := domain.CreateTeacherApplication(ctx, dto.TeacherApplicationRequest{
			Name:              fmt.Sprintf("Teacher %d", i),
			Email:             fmt.Sprintf("teacher%d@example.com", i),
			Password:          "correct-horse",
			TeachingLanguages: []string{"japanese"},
			NativeLanguage:    "japanese",
			HourlyRate:        30,
		})
		require.NoError(t, err)
		require.True(t, domain.ApproveTeacher(ctx, teacher.ID))

		for j := 0; j < 40; j++ {
			_, err := domain.CreateLesson(ctx, dto.LessonCreateRequest{
				TeacherID:       teacher.ID,
				StudentID:       student.ID,
				Status:          string(models.LessonCompleted),
				DurationMinutes: 60,
				Price:           40,
				Language:        "japanese",
			})
			require.NoError(t, err)
		}
	}

	app := fiber.New()
	handler.NewStatsHandler(domain, zerolog.Nop()).Register(app.Group("/api/v1"))
	return app
}

func TestPlatformStatsP95LatencyBelow250ms(t *testing.T) {
	app := setupStatsPerformanceApp(t)

	runs := 40
	durations := make([]time.Duration, 0, runs)

	for i := 0; i < runs; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		start := time.Now()
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		durations = append(durations, time.Since(start))
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	index := int(math.Ceil(0.95*float64(len(durations)))) - 1
	if index < 0 {
		index = 0
	}
	p95 := durations[index]

	require.LessOrEqual(t, p95, 250*time.Millisecond)
}
