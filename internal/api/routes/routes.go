package routes

import (
	"cadet-corps-backend/internal/api/handlers"
	"cadet-corps-backend/internal/api/middleware"
	"cadet-corps-backend/internal/auth"
	"cadet-corps-backend/internal/config"
	"cadet-corps-backend/internal/events"
	"cadet-corps-backend/internal/repository"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator and the in-process event bus
	validator := validator.New()
	bus := events.NewBus()

	// Initialize repositories
	yearRepo := repository.NewSchoolYearRepository(db)
	cadetRepo := repository.NewCadetRepository(db)
	chartRepo := repository.NewChainOfCommandRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	activityRepo := repository.NewActivityCatalogRepository(db)
	userRepo := repository.NewUserProfileRepository(db)

	// Initialize services
	yearService := service.NewSchoolYearService(yearRepo, cadetRepo, validator, bus)
	cadetService := service.NewCadetService(cadetRepo, yearRepo, chartRepo, positionRepo, validator, bus)
	chartService := service.NewChainOfCommandService(chartRepo, positionRepo, cadetRepo, yearRepo, validator, bus)
	activityService := service.NewActivityService(activityRepo, validator)
	userService := service.NewUserService(userRepo)
	transferService := service.NewTransferService(yearRepo)

	// Initialize auth service and middleware
	authService := auth.NewService(cfg)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	yearHandler := handlers.NewSchoolYearHandler(yearService)
	cadetHandler := handlers.NewCadetHandler(cadetService)
	chartHandler := handlers.NewChainOfCommandHandler(chartService)
	activityHandler := handlers.NewActivityHandler(activityService)
	userHandler := handlers.NewUserHandler(userService)
	transferHandler := handlers.NewTransferHandler(transferService)
	streamHandler := handlers.NewStreamHandler(bus)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// School year routes
		schoolYears := v1.Group("/school-years")
		{
			schoolYears.GET("", yearHandler.GetAllSchoolYears)
			schoolYears.POST("", yearHandler.CreateSchoolYear)
			schoolYears.GET("/active", yearHandler.GetActiveSchoolYear)
			schoolYears.POST("/promote", yearHandler.Promote)
			schoolYears.GET("/:id", yearHandler.GetSchoolYear)
			schoolYears.PUT("/:id", yearHandler.UpdateSchoolYear)
			schoolYears.DELETE("/:id", yearHandler.DeleteSchoolYear)
			schoolYears.POST("/:id/activate", yearHandler.ActivateSchoolYear)
			schoolYears.GET("/:id/cadets", cadetHandler.GetCadetsBySchoolYear)
			schoolYears.GET("/:id/charts", chartHandler.GetChartsBySchoolYear)
		}

		// Cadet routes
		cadets := v1.Group("/cadets")
		{
			cadets.POST("", cadetHandler.CreateCadet)
			cadets.GET("/:id", cadetHandler.GetCadet)
			cadets.PUT("/:id", cadetHandler.UpdateCadet)
			cadets.DELETE("/:id", cadetHandler.DeleteCadet)
		}

		// Chain of command routes
		charts := v1.Group("/charts")
		{
			charts.POST("", chartHandler.CreateChart)
			charts.GET("/:id", chartHandler.GetChart)
			charts.PUT("/:id", chartHandler.UpdateChart)
			charts.DELETE("/:id", chartHandler.DeleteChart)
			charts.POST("/:id/template", chartHandler.InstallTemplate)
			charts.POST("/:id/positions", chartHandler.AddPosition)
			charts.PUT("/:id/positions/:positionId", chartHandler.UpdatePosition)
			charts.DELETE("/:id/positions/:positionId", chartHandler.DeletePosition)
			charts.POST("/:id/positions/:positionId/assign", chartHandler.AssignCadet)
			charts.POST("/:id/positions/:positionId/unassign", chartHandler.UnassignCadet)
		}

		// Activity catalog routes
		activities := v1.Group("/activities")
		{
			activities.GET("", activityHandler.GetActivities)
			activities.PUT("", activityHandler.ReplaceActivities)
		}

		// User profile routes
		v1.GET("/profile", userHandler.GetProfile)

		// Export / import routes
		v1.GET("/export", transferHandler.Export)
		v1.POST("/import", transferHandler.Import)

		// Change event stream
		v1.GET("/stream", streamHandler.Stream)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
