package responses

import (
	"context"
	"log/slog"
	"time"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/repositories"
	"github.com/Jafre0912/ReactNativeFORM/src/services"
	"github.com/Jafre0912/ReactNativeFORM/src/services/forms"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier is told about every stored response. Failures are logged and
// never affect the submission.
type Notifier interface {
	ResponseSubmitted(ctx context.Context, response *models.Response) error
}

// ActivityReader supplies the last submission time recorded for a form.
type ActivityReader interface {
	LastResponseAt(ctx context.Context, formID primitive.ObjectID) (*time.Time, error)
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithActivity(a ActivityReader) Option {
	return func(s *Service) { s.activity = a }
}

type Service struct {
	forms     repositories.FormRepository
	responses repositories.ResponseRepository
	notifier  Notifier
	activity  ActivityReader
}

func NewService(forms repositories.FormRepository, responses repositories.ResponseRepository, opts ...Option) *Service {
	s := &Service{forms: forms, responses: responses}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitResponse stores answers for the form identified by formID.
//
// The form lookup happens before anything else, so an unknown form is
// reported as not found whatever the answers are. The lookup and the insert
// are not atomic. Answers are not compared with the form's questions.
func (s *Service) SubmitResponse(ctx context.Context, formID string, answers []string) (primitive.ObjectID, error) {
	form, err := forms.FindExisting(ctx, s.forms, formID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := services.ValidateStruct(&models.SubmitResponseRequest{Answers: answers}); err != nil {
		return primitive.NilObjectID, err
	}

	response := &models.Response{
		FormID:  form.ID,
		Answers: answers,
	}
	id, err := s.responses.Save(ctx, response)
	if err != nil {
		return primitive.NilObjectID, services.NewPersistenceError("submit response", err)
	}

	if s.notifier != nil {
		if err := s.notifier.ResponseSubmitted(ctx, response); err != nil {
			slog.Warn("response notification failed",
				slog.String("formId", form.ID.Hex()),
				slog.String("responseId", id.Hex()),
				slog.String("error", err.Error()))
		}
	}
	return id, nil
}

// Stats counts the responses stored for a form.
func (s *Service) Stats(ctx context.Context, formID string) (*models.FormStats, error) {
	form, err := forms.FindExisting(ctx, s.forms, formID)
	if err != nil {
		return nil, err
	}

	count, err := s.responses.CountByFormID(ctx, form.ID)
	if err != nil {
		return nil, services.NewPersistenceError("count responses", err)
	}

	stats := &models.FormStats{FormID: form.ID.Hex(), ResponseCount: count}
	if s.activity != nil {
		last, err := s.activity.LastResponseAt(ctx, form.ID)
		if err != nil {
			slog.Warn("reading last response time failed", slog.String("formId", form.ID.Hex()), slog.String("error", err.Error()))
		} else {
			stats.LastResponseAt = last
		}
	}
	return stats, nil
}
