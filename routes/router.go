package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ertansel/siteapi/config"
	"github.com/ertansel/siteapi/controllers"
	"github.com/ertansel/siteapi/middleware"
	"github.com/ertansel/siteapi/services"
	"github.com/ertansel/siteapi/utils"
)

// SetupRouter wires routes, middlewares, services and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Record daily article traffic after each request
	r.Use(middleware.PageViewRecorder(db))

	store := services.NewGormStore(db)
	engagement := services.NewEngagement(store)
	moderation := services.NewModeration(store)
	listing := services.NewListing(store)

	articleController := controllers.NewArticleController(listing, engagement)
	engagementController := controllers.NewEngagementController(engagement)
	commentController := controllers.NewCommentController(moderation, listing)
	adminController := controllers.NewAdminController(moderation, listing)
	statsController := controllers.NewStatsController(db)
	configController := controllers.NewConfigController()
	spotifyController := controllers.NewSpotifyController()

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, "SUCCESS", gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	articles := api.Group("/articles")
	articles.GET("", articleController.ListArticles)
	articles.GET("/:slug", articleController.GetArticle)

	engaged := api.Group("/articles")
	engaged.Use(middleware.RateLimitMiddleware())
	engaged.POST("/like", engagementController.Like)
	engaged.POST("/unlike", engagementController.Unlike)

	commentsGroup := api.Group("/comments")
	commentsGroup.GET("", commentController.ListComments)
	commentsGroup.Use(middleware.RateLimitMiddleware())
	commentsGroup.POST("", commentController.CreateComment)
	commentsGroup.DELETE("/:id", commentController.DeleteComment)

	api.GET("/config/profile", configController.GetProfile)
	api.GET("/config/social", configController.GetSocialLinks)
	api.GET("/spotify/now-playing", spotifyController.NowPlaying)

	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", middleware.RateLimitMiddleware(), adminController.Login)

	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminRequired())
	adminProtected.POST("/logout", adminController.Logout)
	adminProtected.GET("/me", adminController.Me)
	adminProtected.GET("/stats", statsController.GetStats)
	adminProtected.GET("/comments", adminController.ListComments)
	adminProtected.DELETE("/comments/:id", adminController.DeleteComment)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "NOT_FOUND")
	})

	return r
}
