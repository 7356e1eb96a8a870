package models

type UploadImageResponse struct {
	ImageURL string `json:"imageUrl" example:"/uploads/0b5c6f1e-7d2a-4c4e-9a51-3f0d2b8e9c11-cat.png"`
}
