package routes

import (
	"github.com/Jafre0912/ReactNativeFORM/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// FormRoutes กำหนด route สำหรับ form management
func FormRoutes(router fiber.Router, forms *controllers.FormController, responses *controllers.ResponseController) {
	router.Post("/create", forms.CreateForm)

	group := router.Group("/forms")
	group.Get("/", forms.GetAllForms)
	group.Get("/:id", forms.GetFormByID)
	group.Get("/:id/stats", responses.GetFormStats)
}
