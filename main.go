package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/nexuscoliving/finanzas-backend/handlers"
	"github.com/nexuscoliving/finanzas-backend/repository"
	"github.com/nexuscoliving/finanzas-backend/routes"
	"github.com/nexuscoliving/finanzas-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Nexus Finanzas API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	if err := repository.RunMigrations(repository.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create uploads directory if it doesn't exist
	uploadsDir := getEnvOrDefault("UPLOADS_DIR", "uploads")
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// Initialize repositories
	db := repository.GetDB()
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	documentStore := services.NewDiskDocumentStore(uploadsDir, "/uploads")
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, getEnvOrDefault("JWT_SECRET", "dev-secret"), 24*time.Hour)
	paymentService := services.NewPaymentService(paymentRepo, documentStore, userService)
	expenseService := services.NewExpenseService(expenseRepo, catalogRepo, documentStore, userService)
	supplierService := services.NewSupplierService(catalogRepo)
	reportService := services.NewReportService(paymentService, expenseService)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Resolve the session email for audit fields on every request
	router.Use(handlers.SessionMiddleware(authService))

	// Serve uploaded documents by their public URL
	router.Static("/uploads", uploadsDir)

	// Set up routes
	routes.SetupRoutes(router, &routes.Handlers{
		Payments:  handlers.NewPaymentHandler(paymentService),
		Expenses:  handlers.NewExpenseHandler(expenseService),
		Suppliers: handlers.NewSupplierHandler(supplierService),
		Catalog:   handlers.NewCatalogHandler(catalogRepo),
		Auth:      handlers.NewAuthHandler(authService, userService),
		Reports:   handlers.NewReportHandler(reportService),
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
