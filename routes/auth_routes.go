package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
	api.Post("/forgot-password", authController.ForgotPassword)
	api.Post("/reset-password", authController.ResetPassword)
	api.Post("/delete-account", middleware.AuthMiddleware, authController.DeleteAccount)
}
