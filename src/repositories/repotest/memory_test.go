package repotest

import (
	"context"
	"testing"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFormRepositoryCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFormRepository()

	form := &models.Form{
		Title:     "Survey",
		Questions: []models.Question{{Type: "CheckBox", Label: "Pets", Options: []string{"Cat"}}},
	}
	id, err := repo.Save(ctx, form)
	require.NoError(t, err)

	form.Questions[0].Options[0] = "changed"
	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Cat", got.Questions[0].Options[0])

	got.Title = "changed"
	again, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Survey", again.Title)
}
