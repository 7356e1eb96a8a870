package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, handler fiber.Handler) (int, models.ErrorResponse) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(RequestIDKey, "req-1")
		return c.Next()
	})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
		missing []string
	}{
		{"validation", services.NewValidationError("title", "questions"), 400, "Missing required fields: title, questions", []string{"title", "questions"}},
		{"wrapped validation", fmt.Errorf("ctx: %w", services.NewValidationError("answers")), 400, "Missing required fields: answers", []string{"answers"}},
		{"not found", &services.NotFoundError{Resource: "form", ID: "x"}, 404, "Form not found", nil},
		{"no file", services.ErrNoFileProvided, 400, "No file uploaded", nil},
		{"persistence", services.NewPersistenceError("create form", errors.New("secret dsn mongodb://user:pw@host")), 500, "Failed to do it", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, out := serve(t, func(c *fiber.Ctx) error {
				return HandleServiceError(c, tc.err, "Failed to do it")
			})
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, out.Status)
			assert.Equal(t, tc.message, out.Message)
			assert.Equal(t, tc.missing, out.Missing)
			assert.Equal(t, "req-1", out.RequestID)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	status, out := serve(t, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Request Entity Too Large")
	})
	assert.Equal(t, 413, status)
	assert.Equal(t, "Request Entity Too Large", out.Message)

	status, out = serve(t, func(c *fiber.Ctx) error {
		return errors.New("raw internal detail")
	})
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal server error", out.Message)
	assert.Equal(t, "req-1", out.RequestID)
}
