package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mjtaylor123/sunlessCoding/internal/handlers"
	"github.com/mjtaylor123/sunlessCoding/internal/types"
)

// Handlers carries the request handlers wired into the route table.
type Handlers struct {
	Users  *handlers.UserHandler
	Posts  *handlers.PostHandler
	Health *handlers.HealthHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Check)
		api.GET("/ws/:user_id", handlers.PostFeed)

		users := api.Group("/users")
		{
			users.POST("", h.Users.Create)
			users.GET("", h.Users.List)
			users.GET("/:user_id", h.Users.Get)
			users.PUT("/:user_id", h.Users.Update)

			// Post endpoints
			users.POST("/:user_id/posts", h.Posts.Create)
			users.GET("/:user_id/posts", h.Posts.ListByUser)
			users.DELETE("/:user_id/posts", h.Posts.DeleteByUser)
		}
	}

	return r
}
