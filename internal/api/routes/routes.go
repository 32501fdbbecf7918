package routes

import (
	"baseball-stats-backend/internal/api/handlers"
	"baseball-stats-backend/internal/api/middleware"
	"baseball-stats-backend/internal/config"
	"baseball-stats-backend/internal/metrics"
	"baseball-stats-backend/internal/repository"
	"baseball-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	gameRepo := repository.NewGameRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	playerService := service.NewPlayerService(playerRepo, eventRepo, validator, cfg.Reports)
	teamService := service.NewTeamService(teamRepo, gameRepo, validator, cfg.Reports)
	headToHeadService := service.NewHeadToHeadService(teamRepo, gameRepo, eventRepo, validator, cfg.Reports)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	playerHandler := handlers.NewPlayerHandler(playerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	headToHeadHandler := handlers.NewHeadToHeadHandler(headToHeadService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", handlers.Welcome)

	// Player routes
	router.GET("/players", playerHandler.SearchPlayers)
	router.GET("/batters", playerHandler.ListBatters)
	router.GET("/pitchers", playerHandler.ListPitchers)
	player := router.Group("/player")
	{
		player.GET("/:playerId", playerHandler.GetPlayer)
		player.GET("/batstats/:playerId", playerHandler.BattingStats)
		player.GET("/batstats/:playerId/trend", playerHandler.BattingTrend)
		player.GET("/pitchstats/:playerId", playerHandler.PitchingStats)
		player.GET("/pitchstats/:playerId/trend", playerHandler.PitchingTrend)
	}

	// Team routes
	teams := router.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/wins", teamHandler.TeamWins)
		teams.GET("/season/leaderboard", teamHandler.Leaderboard)
		teams.GET("/:teamId", teamHandler.Roster)
	}

	// Head-to-head routes
	headToHead := router.Group("/head2head")
	{
		headToHead.GET("/players", playerHandler.HeadToHead)

		teamMatchups := headToHead.Group("/teams")
		{
			teamMatchups.GET("/games/:team1/:team2", headToHeadHandler.GameDates)
			teamMatchups.GET("/pitchers/:team1/:team2", headToHeadHandler.PitchingLeaders)
			teamMatchups.GET("/batters/:team1/:team2", headToHeadHandler.BattingLeaders)
			teamMatchups.GET("/:team1/:team2", headToHeadHandler.Snapshot)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Endpoint not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	return router
}
