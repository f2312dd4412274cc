package main

import (
	"log"

	"github.com/campaignforge/server/internal/appcron"
	"github.com/campaignforge/server/internal/campaigns"
	"github.com/campaignforge/server/internal/content"
	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/intelligence"
	"github.com/campaignforge/server/internal/providers"
	"github.com/campaignforge/server/internal/storage"
	"github.com/campaignforge/server/internal/usage"
	"github.com/campaignforge/server/internal/visuals"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db.Connect()
	db.Migrate()
	db.ConnectMongo()
	providers.Init()
	storage.Init()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	campaigns.MountController(app.Group("/campaigns"))
	intelligence.MountController(app.Group("/intelligence"))
	content.MountController(app.Group("/content"))
	visuals.MountController(app.Group("/visuals"))
	visuals.MountAssetController(app.Group("/assets"))
	usage.MountController(app.Group("/usage"))
	appcron.MountController(app.Group("/jobs"))

	appcron.SetupAssetHealthCron()

	app.Listen(":8080")
}
