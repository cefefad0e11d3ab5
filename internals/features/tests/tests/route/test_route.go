package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	testController "englishku_backend/internals/features/tests/tests/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// TestRoutes registers tests and their questions.
func TestRoutes(api fiber.Router, db *gorm.DB) {
	testCtrl := testController.NewTestController(db)
	detailCtrl := testController.NewTestDetailController(db)

	tests := api.Group("/tests")
	tests.Get("/", testCtrl.GetAll)
	tests.Get("/:id", testCtrl.GetByID)

	testsAdmin := tests.Group("/", authMiddleware.AuthMiddleware(db), authMiddleware.AdminOnly())
	testsAdmin.Post("/", testCtrl.Create)
	testsAdmin.Put("/:id", testCtrl.Update)
	testsAdmin.Delete("/:id", testCtrl.Delete)

	details := api.Group("/test-details")
	details.Get("/", detailCtrl.GetAll)

	detailsAdmin := details.Group("/", authMiddleware.AuthMiddleware(db), authMiddleware.AdminOnly())
	detailsAdmin.Post("/", detailCtrl.Create)
	detailsAdmin.Put("/:id", detailCtrl.Update)
	detailsAdmin.Delete("/:id", detailCtrl.Delete)
}
