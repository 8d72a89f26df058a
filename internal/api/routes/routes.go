package routes

import (
	"fmt"
	"net/http"

	"cricauction-backend/internal/api/handlers"
	"cricauction-backend/internal/api/middleware"
	"cricauction-backend/internal/auth"
	"cricauction-backend/internal/config"
	"cricauction-backend/internal/repository"
	"cricauction-backend/internal/service"
	"cricauction-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the router cannot build from the database alone.
// Provider and ImageStore may be nil when sign-in or image storage is not configured.
type Dependencies struct {
	AuthConfig *auth.AuthConfig
	Provider   auth.IdentityProvider
	ImageStore storage.ImageStore
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()
	policy := auth.NewPolicy(auth.DefaultPermissions())
	schedule := service.NewSchedule(cfg.Location(), cfg.AuctionWindow())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	auctionRepo := repository.NewAuctionRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)

	// Services
	auctionService := service.NewAuctionService(auctionRepo, policy, schedule, validator)
	teamService := service.NewTeamService(teamRepo, auctionRepo, policy, validator)
	playerService := service.NewPlayerService(playerRepo, teamRepo, auctionRepo, policy, validator)
	userService := service.NewUserService(userRepo, policy, validator)
	statsService := service.NewStatsService(auctionRepo, teamRepo, playerRepo, policy, schedule)
	imageService := service.NewImageService(deps.ImageStore)

	authService, err := auth.NewAuthService(deps.AuthConfig, deps.Provider, userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	states := auth.NewStateStore(deps.AuthConfig.SessionSecret, deps.AuthConfig.SecureCookies)
	authHandler := auth.NewAuthHandler(authService, states)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, deps.ImageStore != nil)
	auctionHandler := handlers.NewAuctionHandler(auctionService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	userHandler := handlers.NewUserHandler(userService)
	statsHandler := handlers.NewStatsHandler(statsService)
	uploadHandler := handlers.NewUploadHandler(imageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.GET("/google/start", authHandler.Start)
		authRoutes.GET("/google/callback", authHandler.Callback)
		authRoutes.GET("/session", authMiddleware.OptionalAuth(), authHandler.Session)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api")

	// Reachable without a session
	public := api.Group("")
	{
		public.GET("/auction/code/:code", auctionHandler.GetAuctionByCode)
		public.GET("/auction/:id/teams", teamHandler.ListTeams)
		public.GET("/auction/:id/teams/:teamId", teamHandler.GetTeam)
		public.GET("/auction/:id/players", playerHandler.ListPlayers)
		public.GET("/auction/:id/stats", statsHandler.GetAuctionSummary)
		public.POST("/upload/delete-image", uploadHandler.DeleteImage)
	}

	// Self registration is open to anonymous callers while the auction allows it
	optional := api.Group("")
	optional.Use(authMiddleware.OptionalAuth())
	{
		optional.POST("/auction/:id/players", playerHandler.CreatePlayer)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auction", auctionHandler.ListAuctions)
		protected.GET("/auctions", auctionHandler.ListAuctions)
		protected.POST("/auction", auctionHandler.CreateAuction)
		protected.GET("/auction/user/:userId", auctionHandler.ListUserAuctions)
		protected.GET("/auction/:id", auctionHandler.GetAuction)
		protected.PATCH("/auction/:id", auctionHandler.UpdateAuction)
		protected.DELETE("/auction/:id", auctionHandler.DeleteAuction)

		protected.POST("/auction/:id/teams", teamHandler.CreateTeam)
		protected.PATCH("/auction/:id/teams/:teamId", teamHandler.UpdateTeam)
		protected.DELETE("/auction/:id/teams/:teamId", teamHandler.DeleteTeam)

		protected.GET("/auction/:id/players/:playerId", playerHandler.GetPlayer)
		protected.PATCH("/auction/:id/players/:playerId", playerHandler.UpdatePlayer)
		protected.DELETE("/auction/:id/players/:playerId", playerHandler.DeletePlayer)

		protected.PATCH("/user/:id", userHandler.UpdateUser)

		protected.GET("/stats", statsHandler.GetStats)
		protected.GET("/profile-stats", statsHandler.GetProfileStats)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":    false,
			"message":    "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, false)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
