package router

import (
	"net/http"
	"time"

	"github.com/clothyvs/dashboard-backend/internal/config"
	"github.com/clothyvs/dashboard-backend/internal/handler"
	"github.com/clothyvs/dashboard-backend/internal/middleware"
	"github.com/clothyvs/dashboard-backend/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const pageMetaMaxAge = time.Hour

// Handlers groups all handler instances for route setup.
type Handlers struct {
	PageMeta *handler.PageMetaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	router.NoRoute(response.NotFound)

	router.GET("/health", middleware.NoStore(), func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Page Metadata (Public) ────────────────────────────────────────
	pageMeta := router.Group("/api/v1/page-meta")
	pageMeta.Use(middleware.CacheControl(pageMetaMaxAge))
	{
		pageMeta.GET("", handlers.PageMeta.Get)
		pageMeta.GET("/head", handlers.PageMeta.Head)
	}

	return router
}
