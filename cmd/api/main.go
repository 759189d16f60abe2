package main

import (
	"fmt"
	"net/http"
	"os"

	"captable/internal/config"
	"captable/internal/database"
	"captable/internal/handlers"
	"captable/internal/logger"
	"captable/internal/middleware"
	"captable/internal/services"
	"captable/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "captable/internal/docs" // Import swagger docs
)

// @title           Captable API
// @version         1.0
// @description     Captable models startup capitalization tables: shareholders, holdings, SAFE notes, and what-if scenarios for funding rounds, SAFE conversions, pro-rata participation, and exits.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

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

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	shareholderService := services.NewShareholderService(db)
	safeNoteService := services.NewSafeNoteService(db)
	capTableService := services.NewCapTableService(db)
	scenarioService := services.NewScenarioService(db, capTableService)

	// Initialize handlers
	shareholderHandler := handlers.NewShareholderHandler(shareholderService)
	safeNoteHandler := handlers.NewSafeNoteHandler(safeNoteService, scenarioService)
	capTableHandler := handlers.NewCapTableHandler(capTableService)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
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

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Cap table routes
	captable := v1.Group("/captable")
	captable.GET("/company", capTableHandler.GetCompany)
	captable.PUT("/company", capTableHandler.UpdateCompany)
	captable.GET("/summary", capTableHandler.GetSummary)

	// Shareholder routes
	shareholders := v1.Group("/shareholders")
	shareholders.POST("", shareholderHandler.CreateShareholder)
	shareholders.GET("", shareholderHandler.GetShareholders)
	shareholders.GET("/:id", shareholderHandler.GetShareholderByID)
	shareholders.PUT("/:id", shareholderHandler.UpdateShareholder)
	shareholders.DELETE("/:id", shareholderHandler.DeleteShareholder)
	shareholders.POST("/:id/holdings", shareholderHandler.AddHolding)
	shareholders.GET("/:id/holdings", shareholderHandler.GetShareholderHoldings)

	// Holding routes
	holdings := v1.Group("/holdings")
	holdings.PUT("/:id", shareholderHandler.UpdateHolding)
	holdings.DELETE("/:id", shareholderHandler.DeleteHolding)

	// SAFE note routes
	safes := v1.Group("/safes")
	safes.POST("", safeNoteHandler.CreateSafeNote)
	safes.GET("", safeNoteHandler.GetSafeNotes)
	safes.POST("/conversions", safeNoteHandler.ResolveConversions)
	safes.GET("/:id", safeNoteHandler.GetSafeNoteByID)
	safes.PUT("/:id", safeNoteHandler.UpdateSafeNote)
	safes.POST("/:id/cancel", safeNoteHandler.CancelSafeNote)
	safes.DELETE("/:id", safeNoteHandler.DeleteSafeNote)

	// Scenario routes
	scenarios := v1.Group("/scenarios")
	scenarios.POST("", scenarioHandler.CreateScenario)
	scenarios.GET("", scenarioHandler.GetScenarios)
	scenarios.POST("/evaluate", scenarioHandler.EvaluateScenario)
	scenarios.GET("/:id", scenarioHandler.GetScenarioByID)
	scenarios.PUT("/:id", scenarioHandler.UpdateScenario)
	scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	scenarios.POST("/:id/evaluate", scenarioHandler.EvaluateScenarioByID)

	log.Infof("Starting Captable backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
