package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/api/handlers"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/api/middleware"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/auth"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/authz"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/config"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/grants"
)

// NewRouter creates and configures the Gin router. Every protected endpoint
// declares exactly one permission policy name; the policy middleware resolves
// it at registration time and evaluates it against the principal's claims.
func NewRouter(cfg *config.Config, db *gorm.DB, authenticator auth.Authenticator, local *auth.LocalAuthenticator) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware())
	router.NoRoute(middleware.NotFound)

	grantService := grants.NewService(db)
	catalogHandler := handlers.NewCatalogHandler(db)
	venueHandler := handlers.NewVenueHandler(db)
	grantHandler := handlers.NewGrantHandler(grantService)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", handlers.HealthCheck)

		// Local token mint stands in for the identity provider in dev mode
		if local != nil && cfg.Auth.Type == "local" {
			tokenHandler := handlers.NewTokenHandler(local, grantService)
			public.POST("/auth/token", tokenHandler.Mint)
		}
	}

	// Protected routes (require authentication and a permission per endpoint)
	protected := router.Group("/api/v1")
	protected.Use(authenticator.Middleware())
	{
		protected.GET("/venues",
			middleware.RequirePermission(authz.PermReadVenues), venueHandler.ListVenues)

		protected.GET("/permissions",
			middleware.RequirePermission(authz.PermAdminSystem), catalogHandler.ListPermissions)
		protected.GET("/roles",
			middleware.RequirePermission(authz.PermAdminSystem), catalogHandler.ListRoles)
		protected.GET("/roles/:name/permissions",
			middleware.RequirePermission(authz.PermAdminSystem), catalogHandler.GetRolePermissions)

		protected.GET("/users/:id/permissions",
			middleware.RequirePermission(authz.PermReadVenueUsers), grantHandler.GetUserPermissions)
		protected.POST("/users/:id/roles",
			middleware.RequirePermission(authz.PermAdminSystem), grantHandler.AssignUserRole)
		protected.DELETE("/users/:id/roles/:roleID",
			middleware.RequirePermission(authz.PermAdminSystem), grantHandler.RevokeUserRole)

		protected.POST("/venues/:id/roles",
			middleware.RequirePermission(authz.PermWriteVenueUsers), grantHandler.AssignVenueRole)
		protected.DELETE("/venues/:id/users/:userID/roles/:roleID",
			middleware.RequirePermission(authz.PermDeleteVenueUsers), grantHandler.RevokeVenueRole)
	}

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router
}

// corsMiddleware adds CORS headers for the SPA client
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
