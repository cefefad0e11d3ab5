package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "englishku_backend/internals/features/admin/route"
	gradeRoute "englishku_backend/internals/features/curriculum/grades/route"
	lessonRoute "englishku_backend/internals/features/curriculum/lessons/route"
	vocabularyRoute "englishku_backend/internals/features/curriculum/vocabularies/route"
	notificationRoute "englishku_backend/internals/features/notifications/route"
	mockRoute "englishku_backend/internals/features/tests/mock/route"
	resultRoute "englishku_backend/internals/features/tests/results/route"
	testRoute "englishku_backend/internals/features/tests/tests/route"
	topicRoute "englishku_backend/internals/features/tests/topic/route"
	authRoute "englishku_backend/internals/features/users/auth/route"
	helper "englishku_backend/internals/helpers"
)

// SetupRoutes mounts every feature under /api plus the health check.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	gradeRoute.GradeRoutes(api, db)
	lessonRoute.LessonRoutes(api, db)
	vocabularyRoute.VocabularyRoutes(api, db)
	testRoute.TestRoutes(api, db)
	resultRoute.TestResultRoutes(api, db)
	topicRoute.TopicTestRoutes(api, db)
	mockRoute.MockTestRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
	adminRoute.AdminRoutes(api, db)

	app.Use(func(c *fiber.Ctx) error {
		return helper.Error(c, fiber.StatusNotFound, "Route not found")
	})
}
