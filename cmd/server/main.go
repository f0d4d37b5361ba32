package main

import (
	"log"

	"github.com/dsavelev/todoweb/internal/config"
	"github.com/dsavelev/todoweb/internal/database"
	"github.com/dsavelev/todoweb/internal/handlers"
	"github.com/dsavelev/todoweb/internal/middleware"
	"github.com/dsavelev/todoweb/internal/repository"
	"github.com/dsavelev/todoweb/internal/services"
	"github.com/dsavelev/todoweb/internal/session"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration; a missing session secret is fatal.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Session codec and cookie manager
	codec := session.NewCodec(cfg.SessionSecret)
	sessions := session.NewManager(codec, cfg.SessionTTL, cfg.IsProduction())

	// Repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, sessions)
	taskHandler := handlers.NewTaskHandler(taskService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	pageHandler := handlers.NewPageHandler()

	// Initialize Gin router
	r := gin.Default()

	// The guard runs on every request ahead of the page handlers.
	r.Use(middleware.SessionGuard(sessions))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
		})
	})

	// Page routes
	r.GET("/login", pageHandler.Login)
	r.GET("/register", pageHandler.Register)
	r.GET("/dashboard", pageHandler.Dashboard)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(sessions), authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(sessions))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(middleware.RequireAuth(sessions))
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
