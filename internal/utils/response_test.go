package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, handler fiber.Handler) APIResponse {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope APIResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestSendSuccessDefaultsMessage(t *testing.T) {
	envelope := performRequest(t, func(c *fiber.Ctx) error {
		return SendSuccess(c, "", fiber.Map{"id": "student_1"})
	})

	require.True(t, envelope.Success)
	require.Equal(t, "success", envelope.Message)
	require.NotNil(t, envelope.Data)
}

func TestSendErrorEnvelope(t *testing.T) {
	envelope := performRequest(t, func(c *fiber.Ctx) error {
		return SendError(c, fiber.StatusConflict, "email is already registered")
	})

	require.False(t, envelope.Success)
	require.Equal(t, "email is already registered", envelope.Message)
	require.Nil(t, envelope.Data)
}
