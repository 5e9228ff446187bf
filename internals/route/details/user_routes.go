package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "campushub_backend/internals/features/users/user/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := app.Group("/api/users", authMiddleware.AuthJWT(db))
	users.Get("/profile", ctrl.GetProfile)
	users.Patch("/complete-profile", ctrl.CompleteProfile)
}
