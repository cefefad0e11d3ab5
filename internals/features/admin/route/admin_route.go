package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "englishku_backend/internals/features/admin/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// AdminRoutes registers the admin dashboard and reporting endpoints.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admin := api.Group("/admin", authMiddleware.AuthMiddleware(db), authMiddleware.AdminOnly())
	admin.Get("/dashboard", ctrl.Dashboard)
	admin.Get("/users", ctrl.Users)
	admin.Get("/users/:id/results", ctrl.UserResults)
	admin.Get("/results", ctrl.Results)
	admin.Get("/results/export", ctrl.ExportResults)
}
