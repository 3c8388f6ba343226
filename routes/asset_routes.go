package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupAssetRoutes(app *fiber.App, db *gorm.DB) {
	assetController := controllers.NewAssetController(db)

	api := app.Group(config.MAIN_ROUTES+"/assets", middleware.AuthMiddleware)

	api.Get("/", assetController.GetAssets)
	api.Get("/search", assetController.SearchAsset)
	api.Get("/export-excel", assetController.ExportExcel)
	api.Put("/annotate", assetController.Annotate)
}
