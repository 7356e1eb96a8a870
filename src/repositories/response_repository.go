package repositories

import (
	"context"
	"time"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ResponseRepository persists Response documents. The store does not
// enforce that FormID points at an existing form.
type ResponseRepository interface {
	Save(ctx context.Context, response *models.Response) (primitive.ObjectID, error)
	CountByFormID(ctx context.Context, formID primitive.ObjectID) (int64, error)
}

type MongoResponseRepository struct {
	collection *mongo.Collection
}

func NewMongoResponseRepository(db *mongo.Database) *MongoResponseRepository {
	return &MongoResponseRepository{collection: db.Collection(ResponsesCollectionName)}
}

// EnsureIndexes creates the formId index used by CountByFormID.
func (r *MongoResponseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "formId", Value: 1}},
	})
	return err
}

func (r *MongoResponseRepository) Save(ctx context.Context, response *models.Response) (primitive.ObjectID, error) {
	if response.ID.IsZero() {
		response.ID = primitive.NewObjectID()
	}
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, response)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		response.ID = oid
	}
	return response.ID, nil
}

func (r *MongoResponseRepository) CountByFormID(ctx context.Context, formID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"formId": formID})
}
