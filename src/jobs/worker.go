package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityRecorder stores the latest submission time per form.
type ActivityRecorder interface {
	TouchLastResponse(ctx context.Context, formID primitive.ObjectID, at time.Time) error
}

type Handlers struct {
	activity ActivityRecorder
}

func NewHandlers(activity ActivityRecorder) *Handlers {
	return &Handlers{activity: activity}
}

// Register attaches every task handler to mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeResponseSubmitted, h.HandleResponseSubmitted)
}

func (h *Handlers) HandleResponseSubmitted(ctx context.Context, t *asynq.Task) error {
	var payload ResponseSubmittedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	formID, err := primitive.ObjectIDFromHex(payload.FormID)
	if err != nil {
		return fmt.Errorf("invalid form id %q: %w", payload.FormID, asynq.SkipRetry)
	}

	at := payload.SubmittedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}
	if err := h.activity.TouchLastResponse(ctx, formID, at); err != nil {
		return err
	}

	slog.Info("response recorded",
		slog.String("formId", payload.FormID),
		slog.String("responseId", payload.ResponseID))
	return nil
}

// NewServer builds the asynq worker server for the given Redis address.
func NewServer(redisAddr string) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 5,
			Logger:      slogAdapter{},
		},
	)
}

// slogAdapter routes asynq's internal logging through slog.
type slogAdapter struct{}

func (slogAdapter) Debug(args ...interface{}) { slog.Debug(fmt.Sprint(args...), slog.String("component", "asynq")) }
func (slogAdapter) Info(args ...interface{})  { slog.Info(fmt.Sprint(args...), slog.String("component", "asynq")) }
func (slogAdapter) Warn(args ...interface{})  { slog.Warn(fmt.Sprint(args...), slog.String("component", "asynq")) }
func (slogAdapter) Error(args ...interface{}) { slog.Error(fmt.Sprint(args...), slog.String("component", "asynq")) }
func (slogAdapter) Fatal(args ...interface{}) {
	slog.Error(fmt.Sprint(args...), slog.String("component", "asynq"))
	os.Exit(1)
}
