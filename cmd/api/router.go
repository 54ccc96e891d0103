package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"landing-cms-backend/internal/shared/middleware"
	"landing-cms-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigin),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupContentRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/verify", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Verify)
		auth.PUT("/password", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.ChangePassword)
	}
}

// ========================================
// CONTENT ROUTES
// ========================================
// Reads are public, the frontend renders from them without a token.
// Every mutation sits behind the auth middleware.
func setupContentRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/hero", c.ContentHandler.GetHero)
	api.GET("/sections", c.ContentHandler.GetSections)
	api.GET("/page-data", c.ContentHandler.GetPageData)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		protected.PUT("/hero", c.ContentHandler.UpdateHero)

		protected.POST("/sections", c.ContentHandler.CreateSection)
		protected.PUT("/sections/reorder", c.ContentHandler.ReorderSections)
		protected.DELETE("/sections/:id", c.ContentHandler.DeleteSection)

		protected.PUT("/spotlight/:sectionId", c.ContentHandler.UpdateSpotlight)
		protected.PUT("/grid/:sectionId", c.ContentHandler.UpdateGrid)
		protected.POST("/grid/:sectionId/products", c.ContentHandler.AddProduct)

		protected.PUT("/products/:id", c.ContentHandler.UpdateProduct)
		protected.DELETE("/products/:id", c.ContentHandler.DeleteProduct)

		protected.POST("/save-all", c.ContentHandler.SaveAll)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}
		services := gin.H{}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		}
		services["database"] = dbStatus

		redisStatus := "disabled"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.HealthCheck(c.Request.Context()); err != nil {
				redisStatus = "disconnected"
			}
		}
		services["redis"] = redisStatus

		health["services"] = services

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, health)
	}
}
