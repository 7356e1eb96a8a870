package jobs

import (
	"context"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"github.com/hibiken/asynq"
)

// Enqueuer publishes response events to the asynq queue.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) ResponseSubmitted(ctx context.Context, response *models.Response) error {
	task, err := NewResponseSubmittedTask(ResponseSubmittedPayload{
		FormID:      response.FormID.Hex(),
		ResponseID:  response.ID.Hex(),
		SubmittedAt: response.CreatedAt,
	})
	if err != nil {
		return err
	}
	_, err = e.client.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	return err
}
