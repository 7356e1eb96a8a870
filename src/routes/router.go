package routes

import (
	"github.com/Jafre0912/ReactNativeFORM/src/controllers"
	"github.com/Jafre0912/ReactNativeFORM/src/services/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Controllers รวม controller ทุกตัวที่ router ต้องใช้
type Controllers struct {
	Forms     *controllers.FormController
	Responses *controllers.ResponseController
	Uploads   *controllers.UploadController
}

// InitRoutes registers every route. uploadDir is served statically under
// the same prefix the image store puts in imageUrl.
func InitRoutes(app *fiber.App, ctrls Controllers, uploadDir string) {
	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running")
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	FormRoutes(app, ctrls.Forms, ctrls.Responses)
	ResponseRoutes(app, ctrls.Responses)
	UploadRoutes(app, ctrls.Uploads, uploadDir)

	// Fallback Route
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})
}

func UploadRoutes(router fiber.Router, ctrl *controllers.UploadController, uploadDir string) {
	router.Post("/upload", ctrl.UploadImage)
	router.Static(uploads.PublicPrefix, uploadDir)
}
