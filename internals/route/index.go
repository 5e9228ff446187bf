package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "campushub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db)

	log.Println("[INFO] Setting up EventRoutes...")
	routeDetails.EventRoutes(app, db)

	log.Println("[INFO] Setting up RegistrationRoutes...")
	routeDetails.RegistrationRoutes(app, db)

	log.Println("[INFO] Setting up NotificationRoutes...")
	routeDetails.NotificationRoutes(app, db)

	log.Println("[INFO] Setting up CommentRoutes...")
	routeDetails.CommentRoutes(app, db)

	log.Println("[INFO] Setting up FeedbackRoutes...")
	routeDetails.FeedbackRoutes(app, db)
}
