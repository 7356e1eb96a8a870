package controllers

import (
	"context"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResponseService interface {
	SubmitResponse(ctx context.Context, formID string, answers []string) (primitive.ObjectID, error)
	Stats(ctx context.Context, formID string) (*models.FormStats, error)
}

type ResponseController struct {
	service ResponseService
}

func NewResponseController(service ResponseService) *ResponseController {
	return &ResponseController{service: service}
}

// SubmitResponse godoc
// @Summary      Submit a response
// @Description  Store answers for a form. Answers are matched to questions by position.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        formId path string true "Form ID"
// @Param        body body models.SubmitResponseRequest true "Answers"
// @Success      201  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /submit/{formId} [post]
func (ctrl *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	var req models.SubmitResponseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
		}
	}

	if _, err := ctrl.service.SubmitResponse(c.UserContext(), c.Params("formId"), req.Answers); err != nil {
		return utils.HandleServiceError(c, err, "Failed to submit response")
	}

	return c.Status(fiber.StatusCreated).JSON(models.MessageResponse{Message: "Response submitted"})
}

// GetFormStats godoc
// @Summary      Response statistics of a form
// @Tags         responses
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.FormStats
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms/{id}/stats [get]
func (ctrl *ResponseController) GetFormStats(c *fiber.Ctx) error {
	stats, err := ctrl.service.Stats(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to fetch form stats")
	}
	return c.JSON(stats)
}
