package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeResponseSubmitted = "response:submitted"

type ResponseSubmittedPayload struct {
	FormID      string    `json:"form_id"`
	ResponseID  string    `json:"response_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewResponseSubmittedTask(p ResponseSubmittedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeResponseSubmitted, payload), nil
}
