package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	eventController "campushub_backend/internals/features/events/event/controller"
	authMiddleware "campushub_backend/internals/middlewares/auth"
)

func EventRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	// Browsing is public; writes need an event manager role.
	events := app.Group("/api/events")
	events.Get("/", ctrl.GetAllEvents)
	events.Get("/filter", ctrl.FilterEvents)
	events.Get("/:id", ctrl.GetEventByID)

	manage := events.Group("",
		authMiddleware.AuthJWT(db),
		authMiddleware.OnlyRoles(constants.RoleErrorOrganizer("event management"), constants.EventManagerRoles...),
	)
	manage.Post("/", ctrl.CreateEvent)
	manage.Put("/:id", ctrl.UpdateEvent)
	manage.Delete("/:id", ctrl.DeleteEvent)
}
