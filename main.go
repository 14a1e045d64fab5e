package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/rajdwivedi/aeonaxy-server/config"
	authController "github.com/rajdwivedi/aeonaxy-server/controllers/auth"
	controllers "github.com/rajdwivedi/aeonaxy-server/controllers/course"
	moduleController "github.com/rajdwivedi/aeonaxy-server/controllers/module"
	userController "github.com/rajdwivedi/aeonaxy-server/controllers/userControllers"
	videoController "github.com/rajdwivedi/aeonaxy-server/controllers/video"
	webhookController "github.com/rajdwivedi/aeonaxy-server/controllers/webhooks"
	"github.com/rajdwivedi/aeonaxy-server/database"
	"github.com/rajdwivedi/aeonaxy-server/repository"
	courseRoutes "github.com/rajdwivedi/aeonaxy-server/routers/courseRoutes"
	moduleRoutes "github.com/rajdwivedi/aeonaxy-server/routers/moduleRoutes"
	userRoutes "github.com/rajdwivedi/aeonaxy-server/routers/userRoutes"
	videoRoutes "github.com/rajdwivedi/aeonaxy-server/routers/videoRoutes"
	webhookRoutes "github.com/rajdwivedi/aeonaxy-server/routers/webhookRoutes"
	"github.com/rajdwivedi/aeonaxy-server/store"
	"github.com/rajdwivedi/aeonaxy-server/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	mainStore := store.NewMongoStore(db.Main)
	credStore := store.NewMongoStore(db.Pass)

	courses := repository.NewCourseRepo(mainStore)
	modules := repository.NewModuleRepo(mainStore)
	videos := repository.NewVideoRepo(mainStore)
	cascade := repository.NewCascade(mainStore, modules, videos)
	enrollments := repository.NewEnrollmentManager(mainStore)
	users := repository.NewUserRepo(mainStore, credStore)

	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024, // video uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",      // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	userRoutes.SetupUserRoutes(app, authController.NewHandler(users), userController.NewHandler(users, enrollments))
	courseRoutes.SetupCourseRoutes(app, controllers.NewHandler(courses, modules, cascade, enrollments, users))
	moduleRoutes.SetupModuleRoutes(app, moduleController.NewHandler(modules, cascade))
	videoRoutes.SetupVideoRoutes(app, videoController.NewHandler(videos))
	webhookRoutes.SetupWebhookRoutes(app, webhookController.NewHandler())

	sweeper := utils.InitializeTokenSweeper(credStore)

	go func() {
		log.Printf("Server is running on port %s", config.AppConfig.Port)
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	sweeper.Stop()
	if err := app.Shutdown(); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Close(ctx); err != nil {
		log.Printf("Error closing MongoDB connection: %v", err)
	}
}
