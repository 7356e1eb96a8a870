package repositories

import (
	"context"
	"testing"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoResponseRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		formID := primitive.NewObjectID()

		resp := &models.Response{FormID: formID, Answers: []string{"Alice"}}
		id, err := NewMongoResponseRepository(mt.DB).Save(ctx, resp)
		require.NoError(mt, err)
		assert.Equal(mt, id, resp.ID)
		assert.Equal(mt, formID, resp.FormID)
		assert.False(mt, resp.CreatedAt.IsZero())
	})

	mt.Run("save write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "document failed validation",
		}))

		_, err := NewMongoResponseRepository(mt.DB).Save(ctx, &models.Response{FormID: primitive.NewObjectID()})
		assert.Error(mt, err)
	})

	mt.Run("count by form", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "form-builder.responses", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int32(4)}}))

		n, err := NewMongoResponseRepository(mt.DB).CountByFormID(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), n)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, NewMongoResponseRepository(mt.DB).EnsureIndexes(ctx))
	})
}
