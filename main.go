package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"aice/adaptive"
	"aice/config"
	devControllers "aice/controllers/dev"
	portalControllers "aice/controllers/portal"
	"aice/database"
	"aice/feedback"
	"aice/ingestion"
	devRoutes "aice/routers/devRoutes"
	portalRoutes "aice/routers/portalRoutes"
	"aice/store"
	"aice/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}

	// All long-lived instances are constructed here and passed down; no
	// package-level singletons.
	knowledge := store.New(db)
	pipeline := ingestion.NewPipeline(ingestion.NewOCRClient(config.AppConfig.OCRApiURL))
	adaptivePipeline := adaptive.NewPipeline(knowledge)

	loop, err := feedback.NewLoop(config.AppConfig.FeedbackLogPath)
	if err != nil {
		log.Fatalf("Failed to open feedback log: %v", err)
	}

	scheduler, err := utils.StartFeedbackScheduler(loop, config.AppConfig.FeedbackCron)
	if err != nil {
		log.Fatalf("Failed to start feedback scheduler: %v", err)
	}
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	devRoutes.SetupDevRoutes(app, devControllers.NewDevController(pipeline, knowledge))
	portalRoutes.SetupPortalRoutes(app, portalControllers.NewPortalController(knowledge, adaptivePipeline, loop))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
