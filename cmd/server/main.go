package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/justicelink/justicelink/internal/config"
	"github.com/justicelink/justicelink/internal/database"
	"github.com/justicelink/justicelink/internal/handlers"
	"github.com/justicelink/justicelink/internal/middleware"
	"github.com/justicelink/justicelink/internal/services"
	"github.com/justicelink/justicelink/internal/storage"
	"github.com/justicelink/justicelink/internal/types"

	_ "github.com/justicelink/justicelink/docs/api" // Swagger docs
)

// @title JusticeLink API
// @version 1.0.0
// @description Case-management backend for legal professionals
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/justicelink/justicelink

// @license.name MIT

// @host localhost:5001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session_id

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Prepare the upload directory
	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// Server-side sessions keyed by the session_id cookie
	sessions := session.New(session.Config{
		Expiration:     time.Duration(cfg.SessionTTLMinutes) * time.Minute,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("justicelink")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Sessions: sessions}
	userHandler := &handlers.UserHandler{DB: db}
	caseHandler := &handlers.CaseHandler{DB: db}
	permHandler := &handlers.PermissionHandler{DB: db}
	docHandler := &handlers.DocumentHandler{DB: db, Files: files}

	// Public authentication routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Everything below requires an authenticated session
	requireAuth := middleware.RequireAuth(sessions)

	api.Post("/logout", requireAuth, authHandler.Logout)
	api.Get("/session", requireAuth, authHandler.Session)

	api.Get("/user/:id", requireAuth, userHandler.GetUser)
	api.Get("/users/search", requireAuth, userHandler.SearchUsers)

	api.Post("/cases", requireAuth, caseHandler.CreateCase)
	api.Get("/cases", requireAuth, caseHandler.ListCases)
	api.Get("/case/:id", requireAuth, caseHandler.GetCase)
	api.Put("/case/:id/status", requireAuth, caseHandler.UpdateStatus)
	api.Get("/case/:id/summary", requireAuth, caseHandler.Summarize)

	api.Get("/case/:id/permissions", requireAuth, permHandler.ListPermissions)
	api.Post("/case/:id/grant-access", requireAuth, permHandler.GrantAccess)

	api.Get("/case/:id/documents", requireAuth, docHandler.ListDocuments)
	api.Post("/case/:id/upload", requireAuth, docHandler.Upload)
	api.Get("/document/:id/download", requireAuth, docHandler.Download)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Errors raised by middleware carry their own code and type
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
