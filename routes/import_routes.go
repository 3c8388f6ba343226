package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupImportRoutes(app *fiber.App, db *gorm.DB) {
	importController := controllers.NewImportController(db)

	api := app.Group(config.MAIN_ROUTES+"/import", middleware.AuthMiddleware)

	api.Post("/", importController.ImportFiles)
	api.Get("/logs", importController.GetImportLogs)
}
