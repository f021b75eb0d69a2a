package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/gitmusaddique/FitnessTracker-sub000/auth"
	"github.com/gitmusaddique/FitnessTracker-sub000/config"
	"github.com/gitmusaddique/FitnessTracker-sub000/cron"
	"github.com/gitmusaddique/FitnessTracker-sub000/db"
	"github.com/gitmusaddique/FitnessTracker-sub000/media"
	"github.com/gitmusaddique/FitnessTracker-sub000/routes"
	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	cfg := config.Load()

	var store storage.Storage
	switch cfg.StorageBackend {
	case "memory":
		// Process-local; fine for a single dev instance, nothing else.
		store = storage.NewMemStorage()
	default:
		database, err := db.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		if err := db.Migrate(database); err != nil {
			log.Fatal("Failed to run migrations: ", err)
		}
		store = storage.NewGormStorage(database)
	}

	manager := auth.NewManager(cfg.JWTSecret, cfg.AdminJWTSecret)

	var uploader media.Uploader
	if cfg.CloudinaryCloudName != "" {
		cld, err := media.NewCloudinaryUploader(
			cfg.CloudinaryCloudName,
			cfg.CloudinaryAPIKey,
			cfg.CloudinaryAPISecret,
			cfg.CloudinaryFolder,
		)
		if err != nil {
			log.Fatal("Failed to init cloudinary: ", err)
		}
		uploader = cld
	} else {
		disk, err := media.NewDiskUploader(cfg.UploadDir)
		if err != nil {
			log.Fatal("Failed to init upload directory: ", err)
		}
		uploader = disk
	}

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	if mailer.Enabled() {
		cron.StartReminderJob(store, mailer)
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Setup(app, store, manager, uploader)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
