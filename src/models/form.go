package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	HeaderImage string             `bson:"headerImage,omitempty" json:"headerImage,omitempty"`
	Questions   []Question         `bson:"questions" json:"questions"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// --- Question ---
// Type is an open set ("Text", "Grid", "CheckBox", ...) and is stored as given.
type Question struct {
	Type    string   `bson:"type" json:"type"`
	Label   string   `bson:"label" json:"label"`
	Options []string `bson:"options" json:"options"`
	Image   string   `bson:"image,omitempty" json:"image,omitempty"`
}

// CreateFormRequest body ของ POST /create
type CreateFormRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	HeaderImage string            `json:"headerImage"`
	Questions   []QuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

type QuestionRequest struct {
	Type    string   `json:"type" validate:"required"`
	Label   string   `json:"label" validate:"required"`
	Options []string `json:"options"`
	Image   string   `json:"image"`
}

type CreateFormResponse struct {
	Message string `json:"message" example:"Form created"`
	FormID  string `json:"formId" example:"65f1c0d2e4b0a1b2c3d4e5f6"`
}

// FormStats สรุปจำนวน response ของฟอร์ม
type FormStats struct {
	FormID         string     `json:"formId"`
	ResponseCount  int64      `json:"responseCount"`
	LastResponseAt *time.Time `json:"lastResponseAt,omitempty"`
}
