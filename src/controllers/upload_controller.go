package controllers

import (
	"io"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/services"
	"github.com/Jafre0912/ReactNativeFORM/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ImageStore interface {
	Store(data []byte, originalName string) (string, error)
}

type UploadController struct {
	store ImageStore
}

func NewUploadController(store ImageStore) *UploadController {
	return &UploadController{store: store}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Store an image for a form header or question
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file"
// @Success      200  {object}  models.UploadImageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /upload [post]
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return utils.HandleServiceError(c, services.ErrNoFileProvided, "")
	}

	f, err := file.Open()
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to upload file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to upload file")
	}

	imageURL, err := ctrl.store.Store(data, file.Filename)
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to upload file")
	}

	return c.Status(fiber.StatusOK).JSON(models.UploadImageResponse{ImageURL: imageURL})
}
