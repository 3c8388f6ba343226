package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupReferenceRoutes(app *fiber.App, db *gorm.DB) {
	referenceController := controllers.NewReferenceController(db)

	api := app.Group(config.MAIN_ROUTES, middleware.AuthMiddleware)

	api.Get("/locations", referenceController.GetLocations)
	api.Get("/statuses", referenceController.GetStatuses)
	api.Get("/conditions", referenceController.GetConditions)
}
