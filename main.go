package main

import (
	"net/http"

	"conduit-api/config"
	"conduit-api/handlers"
	"conduit-api/middleware"
	"conduit-api/repositories"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	profileService := services.NewProfileService(userRepo, followRepo)
	articleService := services.NewArticleService(articleRepo, userRepo, followRepo, favoriteRepo, tagRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	articleHandler := handlers.NewArticleHandler(articleService)
	tagHandler := handlers.NewTagHandler(articleService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authRequired := middleware.AuthMiddleware(cfg)
	authOptional := middleware.OptionalAuthMiddleware(cfg)

	// API routes
	api := router.Group("/api")
	{
		// Users
		api.POST("/users", authHandler.Register)
		api.POST("/users/login", authHandler.Login)
		api.GET("/user", authRequired, authHandler.GetCurrentUser)
		api.PUT("/user", authRequired, authHandler.UpdateCurrentUser)

		// Profiles
		profiles := api.Group("/profiles")
		{
			profiles.GET("/:username", authOptional, profileHandler.GetProfile)
			profiles.POST("/:username/follow", authRequired, profileHandler.FollowUser)
			profiles.DELETE("/:username/follow", authRequired, profileHandler.UnfollowUser)
		}

		// Articles
		articles := api.Group("/articles")
		{
			articles.GET("", authOptional, articleHandler.GetArticles)
			articles.GET("/feed", authRequired, articleHandler.GetFeed)
			articles.GET("/:slug", authOptional, articleHandler.GetArticle)
			articles.POST("", authRequired, articleHandler.CreateArticle)
			articles.PUT("/:slug", authRequired, articleHandler.UpdateArticle)
			articles.DELETE("/:slug", authRequired, articleHandler.DeleteArticle)
			articles.POST("/:slug/favorite", authRequired, articleHandler.FavoriteArticle)
			articles.DELETE("/:slug/favorite", authRequired, articleHandler.UnfavoriteArticle)
		}

		// Tags
		api.GET("/tags", tagHandler.GetTags)
	}

	// Start server
	log.WithField("port", cfg.Port).Info("Server starting")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
