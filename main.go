package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"bajrangpumps/internal/config"
	"bajrangpumps/internal/handlers"
	"bajrangpumps/internal/repositories"
	"bajrangpumps/internal/services"
	"bajrangpumps/pkg/excel"
	"bajrangpumps/pkg/mailer"
	"bajrangpumps/pkg/sheets"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Record store ---
	// Lives for the process lifetime; a restart loses all submissions.
	contactRepo := repositories.NewMemoryContactRepository()
	enquiryRepo := repositories.NewMemoryEnquiryRepository()

	// --- Side channels ---
	notifier := mailer.New(cfg.SMTP)
	if !notifier.Enabled() {
		log.Println("SMTP credentials missing; notification emails disabled")
	}
	localExporter := excel.NewExporter(cfg.ExcelPath)
	remoteExporter := sheets.NewClient(cfg.Sheets)
	if !remoteExporter.Enabled() {
		log.Println("Google Sheets not configured; remote export disabled")
	}

	// --- Services ---
	submissionService := services.NewSubmissionService(
		contactRepo, enquiryRepo, notifier, localExporter, remoteExporter)

	// --- Handlers ---
	contactHandler := handlers.NewContactHandler(submissionService)
	enquiryHandler := handlers.NewEnquiryHandler(submissionService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(recover.New())
	// The page-rendering layer is served from elsewhere, so all origins are
	// allowed.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// --- API Routes ---
	api := app.Group("/api")
	contactHandler.RegisterRoutes(api)
	enquiryHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
