package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lingora-app/lingora-api/internal/config"
	"github.com/lingora-app/lingora-api/internal/dto"
	"github.com/lingora-app/lingora-api/internal/handler"
	"github.com/lingora-app/lingora-api/internal/middleware"
	"github.com/lingora-app/lingora-api/internal/models"
	"github.com/lingora-app/lingora-api/internal/repository"
	"github.com/lingora-app/lingora-api/internal/router"
	"github.com/lingora-app/lingora-api/internal/store"
)

const testSecret = "integration-secret"

func setupPlatformApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		AppName:   "Lingora API",
		AppEnv:    "test",
		JWTSecret: testSecret,
		FeeRate:   models.DefaultFeeRate,
	}

	logger := zerolog.New(io.Discard)
	domain, err := store.New(context.Background(), repository.NewMemorySnapshotRepository(), logger)
	require.NoError(t, err)

	validate := validator.New(validator.WithRequiredStructEnabled())

	app := fiber.New()
	router.Register(app, cfg, router.Dependencies{
		AccountHandler:   handler.NewAccountHandler(domain, validate, cfg.JWTSecret, logger),
		LessonHandler:    handler.NewLessonHandler(domain, validate, logger),
		WalletHandler:    handler.NewWalletHandler(domain, validate, logger),
		PayoutHandler:    handler.NewPayoutHandler(domain, validate, logger),
		CommunityHandler: handler.NewCommunityHandler(domain, validate, logger),
		StatsHandler:     handler.NewStatsHandler(domain, logger),
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload any, out any) int {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := middleware.IssueToken(testSecret, "admin_1", "admin", time.Hour)
	require.NoError(t, err)
	return token
}

func TestPlatformLifecycle(t *testing.T) {
	app := setupPlatformApp(t)
	admin := adminToken(t)

	// Student signs up and logs in.
	var created struct {
		Data dto.StudentResponse `json:"data"`
	}
	status := doJSON(t, app, http.MethodPost, "/api/v1/accounts/students", "", dto.StudentCreateRequest{
		Name:     "Maria Lopez",
		Email:    "maria@example.com",
		Password: "correct-horse",
	}, &created)
	require.Equal(t, fiber.StatusCreated, status)
	studentID := created.Data.ID

	var login struct {
		Data dto.LoginResponse `json:"data"`
	}
	status = doJSON(t, app, http.MethodPost, "/api/v1/accounts/auth/login", "", dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "correct-horse",
	}, &login)
	require.Equal(t, fiber.StatusOK, status)
	studentToken := login.Data.Token
	require.NotEmpty(t, studentToken)

	// Teacher applies; the admin surface requires the admin token.
	var applied struct {
		Data dto.TeacherResponse `json:"data"`
	}
	status = doJSON(t, app, http.MethodPost, "/api/v1/accounts/teachers/apply", "", dto.TeacherApplicationRequest{
		Name:              "Kenji Sato",
		Email:             "kenji@example.com",
		Password:          "correct-horse",
		TeachingLanguages: []string{"japanese"},
		NativeLanguage:    "japanese",
		HourlyRate:        30,
	}, &applied)
	require.Equal(t, fiber.StatusCreated, status)
	teacherID := applied.Data.ID

	status = doJSON(t, app, http.MethodPost, "/api/admin/accounts/teachers/"+teacherID+"/approve", "", nil, nil)
	require.Equal(t, fiber.StatusUnauthorized, status)

	status = doJSON(t, app, http.MethodPost, "/api/admin/accounts/teachers/"+teacherID+"/approve", admin, nil, nil)
	require.Equal(t, fiber.StatusOK, status)

	// Student recharges and pays for a booked lesson from the wallet.
	status = doJSON(t, app, http.MethodPost, "/api/v1/wallet/recharge", studentToken, dto.RechargeRequest{
		UserID: studentID,
		Amount: 60,
		Method: "card",
	}, nil)
	require.Equal(t, fiber.StatusCreated, status)

	var lesson struct {
		Data dto.LessonResponse `json:"data"`
	}
	status = doJSON(t, app, http.MethodPost, "/api/v1/lessons", studentToken, dto.LessonCreateRequest{
		TeacherID:       teacherID,
		StudentID:       studentID,
		DurationMinutes: 60,
		Price:           40,
		Language:        "japanese",
		ScheduledAt:     time.Now().Add(24 * time.Hour),
	}, &lesson)
	require.Equal(t, fiber.StatusCreated, status)

	status = doJSON(t, app, http.MethodPost, "/api/v1/wallet/pay", studentToken, dto.LessonPaymentRequest{
		UserID:    studentID,
		LessonID:  lesson.Data.ID,
		TeacherID: teacherID,
		Amount:    40,
		Method:    "wallet",
	}, nil)
	require.Equal(t, fiber.StatusCreated, status)

	status = doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lesson.Data.ID+"/complete", studentToken, nil, nil)
	require.Equal(t, fiber.StatusOK, status)

	// Teacher withdraws; the admin approves.
	var payout struct {
		Data dto.PayoutResponse `json:"data"`
	}
	status = doJSON(t, app, http.MethodPost, "/api/v1/payouts", studentToken, dto.PayoutCreateRequest{
		TeacherID: teacherID,
		Amount:    30,
		Method:    "paypal",
		Details:   dto.PayoutDetailsPayload{PayPalEmail: "kenji@example.com"},
	}, &payout)
	require.Equal(t, fiber.StatusCreated, status)

	status = doJSON(t, app, http.MethodPost, "/api/admin/payouts/"+payout.Data.ID+"/approve", admin, dto.PayoutDecisionRequest{Notes: "ok"}, nil)
	require.Equal(t, fiber.StatusOK, status)

	// Aggregates reflect the completed lesson and the activity feed filled up.
	var stats struct {
		Data dto.PlatformStatsResponse `json:"data"`
	}
	status = doJSON(t, app, http.MethodGet, "/api/v1/stats", "", nil, &stats)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, 1, stats.Data.ActiveStudents)
	require.Equal(t, 1, stats.Data.ApprovedTeachers)
	require.Equal(t, 1, stats.Data.CompletedLessons)
	require.Equal(t, 40.0, stats.Data.TotalRevenue)

	var activities struct {
		Data []dto.ActivityResponse `json:"data"`
	}
	status = doJSON(t, app, http.MethodGet, "/api/v1/activities?limit=5", "", nil, &activities)
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, activities.Data)
}
