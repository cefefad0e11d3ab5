package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "englishku_backend/internals/features/curriculum/grades/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// GradeRoutes registers public reads and admin writes for grades.
func GradeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	grades := api.Group("/grades")
	grades.Get("/", ctrl.GetAll)
	grades.Get("/:id", ctrl.GetByID)

	admin := grades.Group("/", authMiddleware.AuthMiddleware(db), authMiddleware.AdminOnly())
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
