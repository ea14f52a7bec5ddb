package main

import (
	"fmt"
	"net/http"
	"os"

	"teamboard/internal/config"
	"teamboard/internal/database"
	"teamboard/internal/handlers"
	"teamboard/internal/logger"
	"teamboard/internal/middleware"
	"teamboard/internal/pdf"
	"teamboard/internal/services"
	"teamboard/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title           Teamboard API
// @version         1.0
// @description     Teamboard is a team management application covering members, roles, invoices, todos, calendars, and availability.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()

	// Seed the default roles on first boot
	if err := database.SeedRoles(db); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	// Register custom request validations
	validator.Register()

	// Make sure the avatar upload directory exists
	if err := os.MkdirAll(appConfig.UploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Initialize services
	notificationService := services.NewNotificationService(db)
	userService := services.NewUserService(db, notificationService)
	roleService := services.NewRoleService(db)
	invoiceService := services.NewInvoiceService(db, notificationService)
	todoService := services.NewTodoService(db)
	eventService := services.NewEventService(db)
	availabilityService := services.NewAvailabilityService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewRoleHandler(roleService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdf.NewRenderer())
	todoHandler := handlers.NewTodoHandler(todoService)
	eventHandler := handlers.NewEventHandler(eventService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	profileHandler := handlers.NewProfileHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(userService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded avatars
	router.Static("/images", appConfig.UploadDir)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.RequireAuth(db))

	// Profile
	profile := protected.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.POST("/avatar", profileHandler.UploadAvatar)
	profile.DELETE("/avatar", profileHandler.DeleteAvatar)

	// Team overview
	protected.GET("/team", userHandler.GetTeam)

	// Invoice routes
	invoices := protected.Group("/invoices")
	invoices.GET("", invoiceHandler.ListInvoices)
	invoices.POST("", invoiceHandler.UploadInvoice)
	invoices.GET("/filter", invoiceHandler.FilterInvoices)
	invoices.GET("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.DELETE("/:id", invoiceHandler.RemoveInvoice)

	// Todo routes
	todos := protected.Group("/todos")
	todos.GET("", todoHandler.ListTodos)
	todos.POST("", todoHandler.AddTodo)
	todos.PUT("/:id", todoHandler.UpdateTodo)
	todos.PUT("/:id/status", todoHandler.UpdateTodoStatus)

	// Calendar routes
	events := protected.Group("/events")
	events.GET("", eventHandler.GetEvents)
	events.POST("", eventHandler.SaveEvents)
	events.DELETE("/:id", eventHandler.RemoveEvent)

	// Availability routes
	availability := protected.Group("/availability")
	availability.GET("", availabilityHandler.GetAvailability)
	availability.PUT("", availabilityHandler.ReplaceAvailability)

	// Notification routes
	notifications := protected.Group("/notifications")
	notifications.GET("", notificationHandler.ListNotifications)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/dashboard", dashboardHandler.GetDashboard)
	admin.POST("/users", userHandler.CreateUser)
	admin.PUT("/users/:id", userHandler.UpdateUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)
	admin.GET("/roles", roleHandler.ListRoles)
	admin.POST("/roles", roleHandler.AddRole)
	admin.DELETE("/roles/:id", roleHandler.RemoveRole)
	admin.PUT("/invoices/:id/note", invoiceHandler.SetNote)
	admin.PUT("/invoices/:id/status", invoiceHandler.UpdateStatus)

	log.Infof("Starting Teamboard backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
