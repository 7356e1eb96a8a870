package forms

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/repositories"
	"github.com/Jafre0912/ReactNativeFORM/src/services"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo repositories.FormRepository
}

func NewService(repo repositories.FormRepository) *Service {
	return &Service{repo: repo}
}

// CreateForm validates req and stores it as one form document with its
// questions embedded. Nothing is written when validation fails.
func (s *Service) CreateForm(ctx context.Context, req *models.CreateFormRequest) (primitive.ObjectID, error) {
	if req == nil {
		return primitive.NilObjectID, services.NewValidationError("title", "questions")
	}
	if err := services.ValidateStruct(req); err != nil {
		return primitive.NilObjectID, err
	}

	form := &models.Form{
		Title:       req.Title,
		Description: req.Description,
		HeaderImage: req.HeaderImage,
		Questions:   make([]models.Question, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		form.Questions = append(form.Questions, models.Question{
			Type:    q.Type,
			Label:   q.Label,
			Options: options,
			Image:   q.Image,
		})
	}

	id, err := s.repo.Save(ctx, form)
	if err != nil {
		return primitive.NilObjectID, services.NewPersistenceError("create form", err)
	}

	slog.Info("form created", slog.String("formId", id.Hex()), slog.Int("questions", len(form.Questions)))
	return id, nil
}

// ListForms returns every stored form, unfiltered and unsorted.
func (s *Service) ListForms(ctx context.Context) ([]models.Form, error) {
	forms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, services.NewPersistenceError("list forms", err)
	}
	return forms, nil
}

// GetForm looks a form up by its hex id. Malformed ids are reported as not found.
func (s *Service) GetForm(ctx context.Context, id string) (*models.Form, error) {
	return FindExisting(ctx, s.repo, id)
}

// FindExisting resolves id against repo, mapping absence to *services.NotFoundError
// and any other failure to *services.PersistenceError.
func FindExisting(ctx context.Context, repo repositories.FormRepository, id string) (*models.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &services.NotFoundError{Resource: "form", ID: id}
	}

	form, err := repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &services.NotFoundError{Resource: "form", ID: id}
		}
		return nil, services.NewPersistenceError("find form", err)
	}
	return form, nil
}
