package routes

import (
	"github.com/Jafre0912/ReactNativeFORM/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func ResponseRoutes(router fiber.Router, ctrl *controllers.ResponseController) {
	router.Post("/submit/:formId", ctrl.SubmitResponse)
}
