package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonController "englishku_backend/internals/features/curriculum/lessons/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// LessonRoutes registers lesson CRUD and the audio attachment endpoints.
func LessonRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := lessonController.NewLessonController(db)

	lessons := api.Group("/lessons")
	lessons.Get("/", ctrl.GetAll)
	lessons.Get("/:id", ctrl.GetByID)
	lessons.Get("/:id/audio/:filename", ctrl.ServeAudio)

	admin := lessons.Group("/", authMiddleware.AuthMiddleware(db), authMiddleware.AdminOnly())
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
	admin.Post("/:id/audio", ctrl.UploadAudio)
	admin.Delete("/:id/audio/:filename", ctrl.DeleteAudio)
}
