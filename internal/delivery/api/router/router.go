// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"
	"blog/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FileHandler    *handler.FileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	fileHandler    *handler.FileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		fileHandler:    params.FileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	// Session
	e.POST("/login", r.userHandler.Login)
	e.POST("/logout", r.userHandler.Logout, r.authMiddleware.OptionalAuthenticate)

	// Users
	users := e.Group("/users")
	{
		users.POST("", r.userHandler.RegisterUser)
		users.GET("", r.userHandler.ListUsers)
		users.GET("/:id", r.userHandler.GetUser)
		users.PATCH("/:id/change-password", r.userHandler.ChangePassword, auth)
		users.PATCH("/:id/change-profile", r.userHandler.UpdateProfile, auth)
	}

	// Posts
	posts := e.Group("/posts")
	{
		posts.GET("", r.postHandler.ListPosts)
		posts.GET("/:id", r.postHandler.GetPost)
		posts.POST("", r.postHandler.CreatePost, auth)
		posts.PUT("/:id", r.postHandler.UpdatePost, auth)
		posts.DELETE("/:id", r.postHandler.DeletePost, auth)
		posts.PUT("/:id/like", r.postHandler.LikePost, auth)
		posts.DELETE("/:id/like", r.postHandler.UnlikePost, auth)
		posts.POST("/:id/images", r.postHandler.AttachImage, auth)

		posts.GET("/:id/comments", r.commentHandler.ListComments)
		posts.POST("/:id/comments", r.commentHandler.AddComment, auth)
	}

	e.DELETE("/comments/:id", r.commentHandler.DeleteComment, auth)

	// Uploaded files
	e.GET(storage.FilesPath+"*", r.fileHandler.GetFile)
}
