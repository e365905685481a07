package routes

import (
	"fmt"
	"time"

	"procook-backend/internal/api/handlers"
	"procook-backend/internal/api/middleware"
	"procook-backend/internal/auth"
	"procook-backend/internal/config"
	"procook-backend/internal/repository"
	"procook-backend/internal/service"
	"procook-backend/internal/storage"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// UploadsPath is where the local asset store is served from
const UploadsPath = "/uploads"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, assets storage.AssetStore, version string) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{UploadsPath})))

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg)
	tokens, err := auth.NewTokenService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	router.Use(auth.SessionMiddleware(auth.NewSessionStore(authConfig)))

	// Initialize store and services
	store := repository.NewStore(db)
	validator := service.NewValidator()
	cache := service.NewRatingSummaryCache(cfg.RatingCacheSize, time.Duration(cfg.RatingCacheTTLSeconds)*time.Second)

	recipeService := service.NewRecipeService(store, assets, service.NewNotesRenderer(), cache, validator)
	commentService := service.NewCommentService(store, validator)
	ratingService := service.NewRatingService(store, cache, validator)
	savedRecipeService := service.NewSavedRecipeService(store, assets)
	accountService := service.NewAccountService(store, assets, cache, validator)

	authMiddleware := auth.NewAuthMiddleware(tokens, store.Users())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, version)
	recipeHandler := handlers.NewRecipeHandler(recipeService, cfg.MaxUploadBytes)
	commentHandler := handlers.NewCommentHandler(commentService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	savedRecipeHandler := handlers.NewSavedRecipeHandler(savedRecipeService)
	accountHandler := handlers.NewAccountHandler(accountService, tokens, authMiddleware)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Media written by the local asset store
	if local, ok := assets.(*storage.LocalStore); ok {
		router.Static(UploadsPath, local.Root())
	}

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/register", accountHandler.Register)
		api.POST("/login", accountHandler.Login)

		// Public reads, attributed to the viewer in logs when one is signed in
		public := api.Group("")
		public.Use(authMiddleware.OptionalAuth())
		{
			public.GET("/recipes", recipeHandler.ListRecipes)
			public.GET("/recipes/:id", recipeHandler.GetRecipe)
			public.GET("/recipes/:id/comments", commentHandler.ListComments)
			public.GET("/recipes/:id/rating/public", ratingHandler.GetPublicRating)
		}

		// Routes that need a principal
		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.POST("/logout", accountHandler.Logout)
			protected.GET("/user", accountHandler.CurrentUser)
			protected.GET("/profile", accountHandler.Profile)
			protected.PUT("/profile", accountHandler.UpdateProfile)
			protected.PUT("/profile/password", accountHandler.ChangePassword)
			protected.DELETE("/profile", accountHandler.DeleteAccount)

			protected.GET("/my-recipes", recipeHandler.MyRecipes)
			protected.POST("/recipes", recipeHandler.CreateRecipe)
			protected.PUT("/recipes/:id", recipeHandler.UpdateRecipe)
			protected.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)

			protected.POST("/recipes/:id/comments", commentHandler.CreateComment)
			protected.PUT("/recipes/:id/comments/:commentId", commentHandler.UpdateComment)
			protected.DELETE("/recipes/:id/comments/:commentId", commentHandler.DeleteComment)

			protected.POST("/recipes/:id/rating", ratingHandler.SubmitRating)
			protected.GET("/recipes/:id/rating", ratingHandler.GetRating)
			protected.DELETE("/recipes/:id/rating", ratingHandler.DeleteRating)

			protected.GET("/saved-recipes", savedRecipeHandler.ListSaved)
			protected.GET("/recipes/:id/saved", savedRecipeHandler.IsSaved)
			protected.POST("/recipes/:id/save", savedRecipeHandler.ToggleSaved)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success":    false,
			"message":    "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, version string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
