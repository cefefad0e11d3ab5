package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "englishku_backend/internals/features/users/auth/controller"
	"englishku_backend/internals/middlewares"
	authMiddleware "englishku_backend/internals/middlewares/auth"
)

// AuthRoutes registers registration, login and profile management.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	authed := auth.Group("/", authMiddleware.AuthMiddleware(db))
	authed.Get("/profile", ctrl.Profile)
	authed.Put("/profile", ctrl.UpdateProfile)
	authed.Put("/password", ctrl.UpdatePassword)
}
