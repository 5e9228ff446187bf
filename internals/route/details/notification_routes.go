package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "campushub_backend/internals/features/home/notifications/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func NotificationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifs := app.Group("/api/notifications", authMiddleware.AuthJWT(db))
	notifs.Get("/", ctrl.GetMyNotifications)
	notifs.Put("/:id/read", ctrl.MarkAsRead)
	notifs.Delete("/:id", ctrl.DeleteNotification)
}
