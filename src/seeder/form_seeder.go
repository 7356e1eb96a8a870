package seeder

import (
	"context"
	"log/slog"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FormService interface {
	CreateForm(ctx context.Context, req *models.CreateFormRequest) (primitive.ObjectID, error)
	ListForms(ctx context.Context) ([]models.Form, error)
}

// SampleForms are the forms created on an empty store.
func SampleForms() []models.CreateFormRequest {
	return []models.CreateFormRequest{
		{
			Title:       "Customer Feedback",
			Description: "Tell us about your experience",
			Questions: []models.QuestionRequest{
				{Type: "Text", Label: "What is your name?"},
				{Type: "CheckBox", Label: "Which products do you use?", Options: []string{"Web", "Mobile", "Desktop"}},
				{Type: "Grid", Label: "Rate our service", Options: []string{"Poor", "Fair", "Good", "Excellent"}},
			},
		},
		{
			Title: "Event Registration",
			Questions: []models.QuestionRequest{
				{Type: "Text", Label: "Full name"},
				{Type: "Text", Label: "Email"},
			},
		},
	}
}

// SeedSampleForms creates SampleForms through the form service when no form
// exists yet. It returns how many forms were created.
func SeedSampleForms(ctx context.Context, svc FormService) (int, error) {
	existing, err := svc.ListForms(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		slog.Info("skipping form seed, store not empty", slog.Int("forms", len(existing)))
		return 0, nil
	}

	created := 0
	for _, req := range SampleForms() {
		req := req
		id, err := svc.CreateForm(ctx, &req)
		if err != nil {
			return created, err
		}
		created++
		slog.Info("seeded form", slog.String("formId", id.Hex()), slog.String("title", req.Title))
	}
	return created, nil
}
