package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mockController "englishku_backend/internals/features/tests/mock/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// MockTestRoutes registers mock exam generation, submission and history.
func MockTestRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := mockController.NewMockTestController(db)

	mock := api.Group("/mock-tests", authMiddleware.AuthMiddleware(db))
	mock.Post("/generate", ctrl.Generate)
	mock.Post("/submit", ctrl.Submit)
	mock.Get("/check-eligibility", ctrl.CheckEligibility)
	mock.Get("/history", ctrl.History)
	mock.Get("/:id", ctrl.GetByID)
}
