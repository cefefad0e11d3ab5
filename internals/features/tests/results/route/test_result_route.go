package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "englishku_backend/internals/features/tests/results/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// TestResultRoutes registers result submission, history and statistics.
func TestResultRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewTestResultController(db)

	results := api.Group("/test-results", authMiddleware.AuthMiddleware(db))
	results.Post("/", ctrl.Submit)
	results.Get("/my", ctrl.MyResults)
	results.Get("/statistics", ctrl.Statistics)
	results.Get("/:id", ctrl.GetByID)
	results.Delete("/:id", ctrl.Delete)
}
