// Package repotest provides in-memory repositories with failure injection
// for service and handler tests.
package repotest

import (
	"context"
	"sync"
	"time"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repositories.FormRepository     = (*MemoryFormRepository)(nil)
	_ repositories.ResponseRepository = (*MemoryResponseRepository)(nil)
)

// MemoryFormRepository is an in-process FormRepository. Documents are copied
// on the way in and out so callers never share slices with the store.
// Setting Err makes every call fail with it.
type MemoryFormRepository struct {
	mu    sync.RWMutex
	forms []models.Form
	Err   error
}

func NewMemoryFormRepository() *MemoryFormRepository {
	return &MemoryFormRepository{}
}

func (r *MemoryFormRepository) Save(_ context.Context, form *models.Form) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}

	if form.ID.IsZero() {
		form.ID = primitive.NewObjectID()
	}
	if form.CreatedAt.IsZero() {
		form.CreatedAt = time.Now().UTC()
	}
	r.forms = append(r.forms, copyForm(*form))
	return form.ID, nil
}

func (r *MemoryFormRepository) FindAll(_ context.Context) ([]models.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]models.Form, 0, len(r.forms))
	for _, f := range r.forms {
		out = append(out, copyForm(f))
	}
	return out, nil
}

func (r *MemoryFormRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	for _, f := range r.forms {
		if f.ID == id {
			found := copyForm(f)
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Len reports how many forms have been saved.
func (r *MemoryFormRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.forms)
}

func copyForm(f models.Form) models.Form {
	questions := make([]models.Question, len(f.Questions))
	for i, q := range f.Questions {
		q.Options = append([]string{}, q.Options...)
		questions[i] = q
	}
	f.Questions = questions
	return f
}

// MemoryResponseRepository is an in-process ResponseRepository.
type MemoryResponseRepository struct {
	mu        sync.RWMutex
	responses []models.Response
	Err       error
}

func NewMemoryResponseRepository() *MemoryResponseRepository {
	return &MemoryResponseRepository{}
}

func (r *MemoryResponseRepository) Save(_ context.Context, response *models.Response) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return primitive.NilObjectID, r.Err
	}

	if response.ID.IsZero() {
		response.ID = primitive.NewObjectID()
	}
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}
	stored := *response
	stored.Answers = append([]string{}, response.Answers...)
	r.responses = append(r.responses, stored)
	return response.ID, nil
}

func (r *MemoryResponseRepository) CountByFormID(_ context.Context, formID primitive.ObjectID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return 0, r.Err
	}

	var n int64
	for _, resp := range r.responses {
		if resp.FormID == formID {
			n++
		}
	}
	return n, nil
}

// All returns a copy of every stored response in insertion order.
func (r *MemoryResponseRepository) All() []models.Response {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Response, len(r.responses))
	for i, resp := range r.responses {
		resp.Answers = append([]string{}, resp.Answers...)
		out[i] = resp
	}
	return out
}
