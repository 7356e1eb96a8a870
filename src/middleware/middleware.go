package middleware

import (
	"io"

	"github.com/Jafre0912/ReactNativeFORM/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Setup installs the common middleware chain: request id, panic recovery,
// access log and CORS. Access log lines go to logOutput.
func Setup(app *fiber.App, allowedOrigins string, logOutput io.Writer) {
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: utils.RequestIDKey,
	}))

	app.Use(recover.New())

	app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","requestId":"${locals:requestid}","status":${status},"latency":"${latency}","method":"${method}","path":"${path}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Output:     logOutput,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		ExposeHeaders:    fiber.HeaderXRequestID,
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))
}
