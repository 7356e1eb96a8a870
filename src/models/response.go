package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is one submitted answer set. Answers line up with the form's
// questions by position; lengths are not compared.
type Response struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FormID    primitive.ObjectID `bson:"formId" json:"formId"`
	Answers   []string           `bson:"answers" json:"answers"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type SubmitResponseRequest struct {
	Answers []string `json:"answers" validate:"required,min=1"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Response submitted"`
}
