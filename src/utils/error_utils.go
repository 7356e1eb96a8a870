// error_utils.go
package utils

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/services"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the fiber Locals key the requestid middleware writes to.
const RequestIDKey = "requestid"

func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:    status,
		Message:   message,
		RequestID: RequestID(c),
	})
}

// HandleServiceError maps a service error onto the HTTP response. Anything
// that is not a client error is logged with the request id and answered with
// failMessage only.
func HandleServiceError(c *fiber.Ctx, err error, failMessage string) error {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Status:    fiber.StatusBadRequest,
			Message:   "Missing required fields: " + strings.Join(validationErr.Missing, ", "),
			RequestID: RequestID(c),
			Missing:   validationErr.Missing,
		})
	case errors.As(err, &notFoundErr):
		return HandleError(c, fiber.StatusNotFound, capitalize(notFoundErr.Resource)+" not found")
	case errors.Is(err, services.ErrNoFileProvided):
		return HandleError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	slog.Error(failMessage,
		slog.String("requestId", RequestID(c)),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return HandleError(c, fiber.StatusInternalServerError, failMessage)
}

// ErrorHandler is the fiber.Config.ErrorHandler. Fiber errors keep their code;
// everything else becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return HandleError(c, fiberErr.Code, fiberErr.Message)
	}

	slog.Error("unhandled error",
		slog.String("requestId", RequestID(c)),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return HandleError(c, fiber.StatusInternalServerError, "Internal server error")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
