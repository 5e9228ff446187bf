package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "campushub_backend/internals/features/users/auth/controller"
	"campushub_backend/internals/middlewares"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Get("/github", ctrl.LoginGitHub)
	auth.Get("/github/callback", ctrl.LoginGitHubCallback)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", authMiddleware.AuthJWT(db), ctrl.Logout)
}
