package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"eventexplorer/internal/config"
	"eventexplorer/internal/handler"
	"eventexplorer/internal/middleware"
	"eventexplorer/internal/repository"
	"eventexplorer/internal/service"
	"eventexplorer/pkg/database"
	"eventexplorer/pkg/storage"
	"eventexplorer/pkg/utils"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Load .env when present; production supplies real env vars.
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}

	cfg := config.LoadConfig()

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("database setup failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	participationRepo := repository.NewParticipationRepository(db)

	// Services
	authService := service.NewAuthService(userRepo)
	eventService := service.NewEventService(eventRepo, participationRepo)
	participationService := service.NewParticipationService(eventRepo, userRepo, participationRepo)

	// Upload storage
	localStorage := storage.NewLocalStorage(cfg.UploadDir)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	participationHandler := handler.NewParticipationHandler(participationService, validator)
	uploadHandler := handler.NewUploadHandler(localStorage, log)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Authentication and the ordered authorization rules run on every route.
	app.Use(middleware.AuthMiddleware(authService))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Get("/me", authHandler.Me)

	api.Post("/upload/image", uploadHandler.UploadImage)
	app.Static(handler.PublicImagePath, cfg.UploadDir)

	events := app.Group("/events")
	events.Get("/", eventHandler.GetEvents)
	events.Post("/", eventHandler.CreateEvent)
	events.Get("/:id", eventHandler.GetEvent)
	events.Put("/:id", eventHandler.UpdateEvent)
	events.Delete("/:id", eventHandler.DeleteEvent)
	events.Post("/:id/participation", participationHandler.Mark)
	events.Get("/:id/participation", participationHandler.Counts)
	events.Delete("/:id/participation", participationHandler.Remove)

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
