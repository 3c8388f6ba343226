package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/inventories", middleware.AuthMiddleware)

	api.Get("/", inventoryController.GetInventories)
	api.Get("/active", inventoryController.GetActiveInventory)
	api.Post("/active", inventoryController.SetActiveInventory)
	api.Get("/:id/export", inventoryController.ExportInventory)
	api.Delete("/:id", inventoryController.DeleteInventory)
	api.Post("/reset-all", inventoryController.ResetAll)
}
