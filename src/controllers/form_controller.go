package controllers

import (
	"context"

	"github.com/Jafre0912/ReactNativeFORM/src/models"
	"github.com/Jafre0912/ReactNativeFORM/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FormService interface {
	CreateForm(ctx context.Context, req *models.CreateFormRequest) (primitive.ObjectID, error)
	ListForms(ctx context.Context) ([]models.Form, error)
	GetForm(ctx context.Context, id string) (*models.Form, error)
}

type FormController struct {
	service FormService
}

func NewFormController(service FormService) *FormController {
	return &FormController{service: service}
}

// CreateForm godoc
// @Summary      Create a new form
// @Description  Create a form with a title and at least one question
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateFormRequest true "Form definition"
// @Success      201  {object}  models.CreateFormResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /create [post]
func (ctrl *FormController) CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
		}
	}

	id, err := ctrl.service.CreateForm(c.UserContext(), &req)
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to create form")
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateFormResponse{
		Message: "Form created",
		FormID:  id.Hex(),
	})
}

// GetAllForms godoc
// @Summary      List forms
// @Description  Return every stored form
// @Tags         forms
// @Produce      json
// @Success      200  {array}   models.Form
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func (ctrl *FormController) GetAllForms(c *fiber.Ctx) error {
	forms, err := ctrl.service.ListForms(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to fetch forms")
	}
	return c.JSON(forms)
}

// GetFormByID godoc
// @Summary      Get a form by ID
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func (ctrl *FormController) GetFormByID(c *fiber.Ctx) error {
	form, err := ctrl.service.GetForm(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, "Failed to fetch form")
	}
	return c.JSON(form)
}
