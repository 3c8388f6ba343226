package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/rand"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open(config.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	idgen.Init()
	rand.Seed(uint64(time.Now().UnixNano()))

	routes.SetupAuthRoutes(app, db)
	routes.SetupImportRoutes(app, db)
	routes.SetupAssetRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupReferenceRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
