package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"postable/config"
	"postable/handlers"
	"postable/helper"
	"postable/middleware"
	"postable/repositories"
	"postable/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	likeRepo := repositories.NewLikeRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService(userRepo, tokenService, cfg)
	postService := services.NewPostService(postRepo)
	likeService := services.NewLikeService(likeRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper(cfg.IsDevelopment())
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, httpHelper)
	likeHandler := handlers.NewLikeHandler(likeService, httpHelper)

	// Setup router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/posts", postHandler.GetPosts)
	router.GET("/posts/:id", postHandler.GetPost)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenService, httpHelper))
	{
		protected.POST("/posts", postHandler.CreatePost)
		protected.POST("/posts/:id/like", likeHandler.AddLike)
		protected.DELETE("/posts/:id/like", likeHandler.RemoveLike)
		protected.PUT("/users/password", authHandler.UpdatePassword)
		protected.DELETE("/users", authHandler.DeleteAccount)

		// Mutations on existing posts additionally require
		// ownership-or-admin.
		owned := protected.Group("/")
		owned.Use(middleware.RequireOwnershipOrAdmin(postRepo, httpHelper))
		{
			owned.PUT("/posts/:id", postHandler.UpdatePost)
			owned.DELETE("/posts/:id", postHandler.DeletePost)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
