package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/0xGitteth/Exhibit-sub000/internal/container"
	"github.com/0xGitteth/Exhibit-sub000/internal/handlers"
	"github.com/0xGitteth/Exhibit-sub000/internal/middleware"
)

func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	r.Static("/uploads", c.Config.UploadDir)

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login(c.AuthService, c.Config.JWTSecret))
			auth.POST("/register", handlers.Register(c.AuthService, c.Config.JWTSecret))
			auth.POST("/logout", handlers.Logout())
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(c.Config.JWTSecret, c.UserService, c.Logger))
		{
			users := protected.Group("/users")
			{
				users.GET("/me", handlers.GetMe())
				users.PATCH("/me", handlers.UpdateMe(c.UserService))
				users.POST("/filter", handlers.FilterUsers(c.UserService))
				users.PATCH("/:email", handlers.UpdateUserByEmail(c.UserService))
			}

			posts := protected.Group("/posts")
			{
				posts.POST("", handlers.CreatePost(c.PostService))
				posts.POST("/filter", handlers.FilterPosts(c.PostService))
			}

			likes := protected.Group("/likes")
			{
				likes.POST("", handlers.CreateLike(c.JoinService))
				likes.POST("/filter", handlers.FilterLikes(c.JoinService))
				likes.DELETE("/:id", handlers.DeleteLike(c.JoinService))
			}

			saved := protected.Group("/saved-posts")
			{
				saved.POST("", handlers.CreateSavedPost(c.JoinService))
				saved.POST("/filter", handlers.FilterSavedPosts(c.JoinService))
				saved.DELETE("/:id", handlers.DeleteSavedPost(c.JoinService))
			}

			protected.GET("/communities", handlers.ListCommunities(c.CommunityService))
			protected.POST("/uploads", handlers.Upload(c.Cloudinary, c.Config.UploadDir, c.Logger))
		}
	}

	return r
}
