package config

import (
	"os"
	"time"

	"FreshStock-Backend/internal/api/handlers"
	"FreshStock-Backend/internal/api/routes"
	"FreshStock-Backend/internal/middleware"
	"FreshStock-Backend/internal/utils"
	"FreshStock-Backend/internal/utils/mailing"
	"FreshStock-Backend/pkg/batch"
	"FreshStock-Backend/pkg/catalog"
	"FreshStock-Backend/pkg/jwt"
	"FreshStock-Backend/pkg/user"
	"FreshStock-Backend/pkg/warning"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	batchRepository := batch.NewBatchRepository(db)
	warningRepository := warning.NewWarningRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	batchService := batch.NewBatchMutationService(batchRepository)
	warningService := warning.NewWarningService(warningRepository, mailing.SendMail)
	catalogService := catalog.NewCatalogService(catalogRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	batchHandler := handlers.NewBatchHandler(batchService, validator)
	warningHandler := handlers.NewWarningHandler(warningService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		BatchHandler:   batchHandler,
		WarningHandler: warningHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
