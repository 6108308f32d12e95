package router

import (
	"net/http"

	"bookclub/internal/handlers"
	"bookclub/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up all API endpoints.
func RegisterRoutes(r *gin.Engine) {
	userHandler := handlers.NewUserHandler()
	topicHandler := handlers.NewTopicHandler()
	bookHandler := handlers.NewBookHandler()
	voteHandler := handlers.NewVoteHandler()
	statusHandler := handlers.NewStatusHandler()
	commentHandler := handlers.NewCommentHandler()
	catalogHandler := handlers.NewCatalogHandler(services.NewCatalogService())

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Book Club backend is running!")
	})

	// Members
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/users", userHandler.List)
	r.GET("/users/:id/books", userHandler.Books)
	r.GET("/users/:id/votes", userHandler.Votes)
	r.GET("/users/:id/statuses", userHandler.Statuses)

	// Topics
	r.GET("/topics", topicHandler.List)
	r.GET("/topics/search", topicHandler.Search)
	r.POST("/topics", topicHandler.Create)

	// Books
	r.GET("/books", bookHandler.List)
	r.POST("/books", bookHandler.Create)
	r.GET("/books/:id", bookHandler.Detail)
	r.DELETE("/books/:id", bookHandler.Delete)

	// Engagement
	r.POST("/books/:id/vote", voteHandler.Cast)
	r.DELETE("/books/:id/vote", voteHandler.Retract)
	r.POST("/books/:id/status", statusHandler.Add)
	r.DELETE("/books/:id/status", statusHandler.Remove)

	// Comments
	r.GET("/books/:id/comments", commentHandler.List)
	r.GET("/books/:id/comments/count", commentHandler.Count)
	r.POST("/books/:id/comments", commentHandler.Create)
	r.DELETE("/books/:id/comments/:commentId", commentHandler.Delete)

	// External catalog
	r.GET("/catalog/search", catalogHandler.Search)
}
