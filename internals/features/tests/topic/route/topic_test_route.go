package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topicController "englishku_backend/internals/features/tests/topic/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// TopicTestRoutes registers topic speaking tests, evaluation and results.
// Public reads go first so the group middleware below never touches them.
func TopicTestRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := topicController.NewTopicTestController(db)

	topics := api.Group("/topic-tests")
	topics.Get("/", ctrl.GetAll)
	topics.Get("/:id", ctrl.GetByID)

	authed := topics.Group("/", authMiddleware.AuthMiddleware(db))
	authed.Post("/evaluate", ctrl.Evaluate)
	authed.Get("/results/my", ctrl.MyResults)
	authed.Get("/results/:id", ctrl.GetResultByID)

	admin := authed.Group("/", authMiddleware.AdminOnly())
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
