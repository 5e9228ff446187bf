package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	feedbackController "campushub_backend/internals/features/social/feedback/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func FeedbackRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := feedbackController.NewFeedbackController(db)

	feedback := app.Group("/api/feedback")
	feedback.Get("/event/:eventId", ctrl.GetFeedbackByEvent)

	feedback.Post("/",
		authMiddleware.AuthJWT(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("event feedback"), constants.StudentOnly...),
		ctrl.CreateFeedback)
	feedback.Get("/check/:eventId", authMiddleware.AuthJWT(db), ctrl.CheckFeedback)
	feedback.Get("/analytics",
		authMiddleware.AuthJWT(db),
		authMiddleware.OnlyRoles(constants.RoleErrorOrganizer("feedback analytics"), constants.EventManagerRoles...),
		ctrl.GetFeedbackAnalytics)
}
