package routes

import (
	"FreshStock-Backend/internal/api/handlers"
	"FreshStock-Backend/internal/middleware"
	"FreshStock-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	BatchHandler   handlers.BatchHandler
	WarningHandler handlers.WarningHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Batches()
	c.Warnings()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Batches() {
	batches := c.App.Group("/api/v1/batches", c.Middleware.AuthMiddleware(c.JWTService))

	batches.Post("", c.BatchHandler.AddBatches)
	batches.Put("/:id", c.BatchHandler.UpdateBatch)
	batches.Delete("/:id", c.BatchHandler.DeleteBatch)

	batches.Post("/sessions", c.BatchHandler.OpenSession)
	batches.Post("/sessions/entries", c.BatchHandler.AddToSession)
}

func (c *Config) Warnings() {
	warnings := c.App.Group("/api/v1/warnings", c.Middleware.AuthMiddleware(c.JWTService))

	warnings.Post("/scan", c.WarningHandler.ScanWarnings)
	warnings.Get("", c.WarningHandler.GetWarnings)
	warnings.Patch("/:id/resolve", c.WarningHandler.ResolveWarning)

	warnings.Get("/config", c.WarningHandler.GetConfig)
	warnings.Put("/config", c.WarningHandler.UpdateConfig)
	warnings.Post("/digest", c.WarningHandler.SendDigest)
}

func (c *Config) Catalog() {
	products := c.App.Group("/api/v1/catalog/products", c.Middleware.AuthMiddleware(c.JWTService))
	products.Post("", c.CatalogHandler.CreateProduct)
	products.Get("", c.CatalogHandler.GetProducts)
	products.Put("/:sku", c.CatalogHandler.UpdateProduct)
	products.Get("/:sku/batches", c.CatalogHandler.GetProductBatches)

	categories := c.App.Group("/api/v1/catalog/categories", c.Middleware.AuthMiddleware(c.JWTService))
	categories.Post("", c.CatalogHandler.CreateCategory)
	categories.Get("", c.CatalogHandler.GetCategories)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
