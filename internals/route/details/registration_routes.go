package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	registrationController "campushub_backend/internals/features/events/registration/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func RegistrationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := registrationController.NewRegistrationController(db)

	regs := app.Group("/api/registrations", authMiddleware.AuthJWT(db))
	regs.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("event registration"), constants.StudentOnly...),
		ctrl.CreateRegistration)
	regs.Get("/my", ctrl.GetMyRegistrations)
	regs.Get("/all",
		authMiddleware.OnlyRoles(constants.RoleErrorOrganizer("registration review"), constants.EventManagerRoles...),
		ctrl.GetAllRegistrations)
	regs.Put("/:id/status",
		authMiddleware.OnlyRoles(constants.RoleErrorOrganizer("registration review"), constants.EventManagerRoles...),
		ctrl.UpdateRegistrationStatus)
}
