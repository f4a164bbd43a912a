package routes

import (
	"github.com/gin-gonic/gin"

	"prodea_gateway/api"
	"prodea_gateway/board"
	"prodea_gateway/handlers"
	"prodea_gateway/middleware"
	"prodea_gateway/session"
)

// SetupRoutes configures all the routes for the gateway
func SetupRoutes(r *gin.Engine, client *api.Client, sessions *session.Store, boards *board.Manager) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(client, sessions, boards)
	boardHandler := handlers.NewBoardHandler(client, boards)
	userHandler := handlers.NewUserHandler(client)
	healthHandler := handlers.NewHealthHandler(client)

	r.GET("/health", healthHandler.HealthCheck)

	// Every route below is session-scoped; an anonymous session is still
	// a session. Viewing the board does not require a login.
	withSession := r.Group("/")
	withSession.Use(middleware.Session(sessions))
	{
		// Auth routes
		withSession.POST("/login", authHandler.Login)
		withSession.POST("/register", authHandler.Register)
		withSession.POST("/logout", authHandler.Logout)
		withSession.GET("/session", authHandler.SessionInfo)

		// Board view and actions
		withSession.GET("/board", boardHandler.GetBoard)

		withSession.POST("/board/posts", boardHandler.CreatePost)
		withSession.PUT("/board/posts/:id", boardHandler.UpdatePost)
		withSession.DELETE("/board/posts/:id", boardHandler.DeletePost)
		withSession.POST("/board/posts/:id/like", boardHandler.LikePost)
		withSession.POST("/board/posts/:id/dislike", boardHandler.DislikePost)
		withSession.POST("/board/posts/:id/toggle", boardHandler.TogglePost)

		withSession.POST("/board/solutions", boardHandler.CreateSolution)
		withSession.PUT("/board/solutions/:id", boardHandler.UpdateSolution)
		withSession.DELETE("/board/solutions/:id", boardHandler.DeleteSolution)
		withSession.POST("/board/solutions/:id/like", boardHandler.LikeSolution)
		withSession.POST("/board/solutions/:id/dislike", boardHandler.DislikeSolution)
		withSession.POST("/board/solutions/:id/toggle", boardHandler.ToggleSolution)

		withSession.POST("/board/comments", boardHandler.CreateComment)
		withSession.PUT("/board/comments/:id", boardHandler.UpdateComment)
		withSession.DELETE("/board/comments/:id", boardHandler.DeleteComment)
		withSession.POST("/board/comments/:id/like", boardHandler.LikeComment)
		withSession.POST("/board/comments/:id/dislike", boardHandler.DislikeComment)

		// User management view
		withSession.GET("/users", userHandler.GetUsers)
		withSession.GET("/users/:id", userHandler.GetUserByID)
		withSession.POST("/users", userHandler.CreateUser)
		withSession.PUT("/users/:id", userHandler.UpdateUser)
		withSession.DELETE("/users/:id", userHandler.DeleteUser)
	}
}
