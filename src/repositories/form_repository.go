package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// collection names
const (
	FormsCollectionName     = "forms"
	ResponsesCollectionName = "responses"
)

// ErrNotFound is returned by FindByID when no document has the given id.
var ErrNotFound = errors.New("document not found")

// FormRepository persists Form documents. Questions are embedded in the
// form document and have no collection of their own.
type FormRepository interface {
	Save(ctx context.Context, form *models.Form) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.Form, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
}

type MongoFormRepository struct {
	collection *mongo.Collection
}

func NewMongoFormRepository(db *mongo.Database) *MongoFormRepository {
	return &MongoFormRepository{collection: db.Collection(FormsCollectionName)}
}

// Save inserts the form as a single document and assigns its id.
func (r *MongoFormRepository) Save(ctx context.Context, form *models.Form) (primitive.ObjectID, error) {
	if form.ID.IsZero() {
		form.ID = primitive.NewObjectID()
	}
	if form.CreatedAt.IsZero() {
		form.CreatedAt = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, form)
	if err != nil {
		return primitive.NilObjectID, err
	}

	// sync inserted id (เผื่อไดรเวอร์คืนค่า id ใหม่)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return form.ID, nil
}

// FindAll returns every form in natural order.
func (r *MongoFormRepository) FindAll(ctx context.Context) ([]models.Form, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	if forms == nil {
		forms = []models.Form{}
	}
	return forms, nil
}

func (r *MongoFormRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}
