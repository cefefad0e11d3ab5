package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "englishku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
