package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studioledger/internal/config"
	"studioledger/internal/database"
	"studioledger/internal/handlers"
	"studioledger/internal/logger"
	"studioledger/internal/middleware"
	"studioledger/internal/services"
	"studioledger/internal/validator"

	_ "studioledger/internal/docs" // Import swagger docs
)

// @title           StudioLedger API
// @version         1.0
// @description     StudioLedger is a finance tracker for small businesses: accounts, categorized transactions, transfers, and reports across multiple studios.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

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

	// Register custom request validators
	validator.Register()

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seed reference data on first start
	db := dbManager.DB()
	if err := database.Seed(db); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize services
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	studioService := services.NewStudioService(db)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	contractorService := services.NewContractorService(db)
	projectService := services.NewProjectService(db)
	transactionService := services.NewTransactionService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	studioHandler := handlers.NewStudioHandler(studioService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	contractorHandler := handlers.NewContractorHandler(contractorService, auditService)
	projectHandler := handlers.NewProjectHandler(projectService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	activityHandler := handlers.NewActivityHandler(auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Identity())

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

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	api := router.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Studio routes
	studios := api.Group("/studios")
	studios.GET("", studioHandler.GetStudios)
	studios.POST("", studioHandler.CreateStudio)
	studios.PUT("/:id", studioHandler.UpdateStudio)
	studios.DELETE("/:id", studioHandler.DeleteStudio)

	// Account routes
	accounts := api.Group("/accounts")
	accounts.GET("", accountHandler.GetAccounts)
	accounts.POST("", accountHandler.CreateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	// Category routes
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Contractor routes
	contractors := api.Group("/contractors")
	contractors.GET("", contractorHandler.GetContractors)
	contractors.POST("", contractorHandler.CreateContractor)
	contractors.PUT("/:id", contractorHandler.UpdateContractor)
	contractors.DELETE("/:id", contractorHandler.DeleteContractor)

	// Project routes
	projects := api.Group("/projects")
	projects.GET("", projectHandler.GetProjects)
	projects.POST("", projectHandler.CreateProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/cashflow", reportHandler.GetCashflow)
	reports.GET("/pnl", reportHandler.GetPnl)

	// Activity log routes
	api.GET("/activity-logs", activityHandler.GetActivityLogs)

	log.Infof("Starting StudioLedger backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
