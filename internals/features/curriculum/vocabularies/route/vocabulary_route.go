package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vocabController "englishku_backend/internals/features/curriculum/vocabularies/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// VocabularyRoutes registers vocabulary reads and admin writes.
func VocabularyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := vocabController.NewVocabularyController(db)

	vocabularies := api.Group("/vocabularies")
	vocabularies.Get("/", ctrl.GetAll)
	vocabularies.Get("/:id", ctrl.GetByID)

	admin := vocabularies.Group("/", authMiddleware.AuthMiddleware(db), authMiddleware.AdminOnly())
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
