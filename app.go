package main

import (
	"time"

	"tokoadmin/internal/config"
	"tokoadmin/internal/handlers"
	"tokoadmin/internal/middleware"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// newApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil, in which case catalog events are not sent.
func newApp(cfg config.Config, db *gorm.DB, publisher services.EventPublisher) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	billboardRepo := repositories.NewGORMBillboardRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	sizeRepo := repositories.NewGORMSizeRepository(db)
	colorRepo := repositories.NewGORMColorRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	guard := services.NewStoreGuard(storeRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	storeService := services.NewStoreService(storeRepo, guard, publisher)
	billboardService := services.NewBillboardService(billboardRepo, guard, publisher)
	categoryService := services.NewCategoryService(categoryRepo, guard, publisher)
	sizeService := services.NewSizeService(sizeRepo, guard, publisher)
	colorService := services.NewColorService(colorRepo, guard, publisher)
	productService := services.NewProductService(productRepo, guard, publisher)

	// --- Handlers ---
	opts := handlers.Options{Strict: cfg.Strict}
	authHandler := handlers.NewAuthHandler(authService)
	storeHandler := handlers.NewStoreHandler(storeService, opts)
	billboardHandler := handlers.NewBillboardHandler(billboardService, opts)
	categoryHandler := handlers.NewCategoryHandler(categoryService, opts)
	sizeHandler := handlers.NewSizeHandler(sizeService, opts)
	colorHandler := handlers.NewColorHandler(colorService, opts)
	productHandler := handlers.NewProductHandler(productService, opts)

	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"rabbitMQ": publisher != nil,
		})
	})

	// --- API Routes ---
	api := app.Group("/api")
	auth := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(api)
	// Store routes go first so /api/stores is never read as a store id.
	storeHandler.RegisterRoutes(api, auth)
	billboardHandler.RegisterRoutes(api, auth)
	categoryHandler.RegisterRoutes(api, auth)
	sizeHandler.RegisterRoutes(api, auth)
	colorHandler.RegisterRoutes(api, auth)
	productHandler.RegisterRoutes(api, auth)

	return app
}
