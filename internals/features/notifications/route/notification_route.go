package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "englishku_backend/internals/features/notifications/controller"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// NotificationRoutes registers the per-user notification inbox.
func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := api.Group("/notifications", authMiddleware.AuthMiddleware(db))
	notifications.Get("/", ctrl.GetAll)
	notifications.Put("/read-all", ctrl.MarkAllRead)
	notifications.Get("/:id/details", ctrl.GetDetails)
	notifications.Get("/:id", ctrl.GetByID)
	notifications.Put("/:id/read", ctrl.MarkRead)
	notifications.Delete("/:id", ctrl.Delete)
}
