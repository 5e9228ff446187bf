package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "campushub_backend/internals/features/social/comments/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func CommentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := commentController.NewCommentController(db)

	comments := app.Group("/api/comments")
	comments.Get("/event/:eventId", ctrl.GetCommentsByEvent)

	authed := comments.Group("", authMiddleware.AuthJWT(db))
	authed.Post("/", ctrl.CreateComment)
	authed.Put("/:id", ctrl.UpdateComment)
	authed.Delete("/:id", ctrl.DeleteComment)
	authed.Post("/:id/like", ctrl.ToggleLike)
	authed.Post("/:id/reply", ctrl.AddReply)
}
