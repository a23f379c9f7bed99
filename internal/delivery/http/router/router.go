// Package router contains routing setup for the HTTP delivery.
package router

import (
	"mesto/internal/delivery/http/middleware"
	"mesto/internal/delivery/http/response"
	"mesto/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CardHandler    *handler.CardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	cardHandler    *handler.CardHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		cardHandler:    params.CardHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/signup", r.userHandler.SignUp)
	e.POST("/signin", r.userHandler.SignIn)

	// Signing out only makes sense with a live session
	e.GET("/signout", r.authMiddleware.Authenticate(r.userHandler.SignOut))

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/me", r.userHandler.GetCurrentUser)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
		userGroup.PATCH("/me/avatar", r.userHandler.UpdateAvatar)
		userGroup.GET("/:userId", r.userHandler.GetUser)
	}

	// Card routes that require authentication
	cardGroup := e.Group("/cards")
	cardGroup.Use(r.authMiddleware.Authenticate)
	{
		cardGroup.GET("", r.cardHandler.ListCards)
		cardGroup.POST("", r.cardHandler.CreateCard)
		cardGroup.DELETE("/:cardId", r.cardHandler.DeleteCard)
		cardGroup.PUT("/:cardId/likes", r.cardHandler.LikeCard)
		cardGroup.DELETE("/:cardId/likes", r.cardHandler.UnlikeCard)
	}

	// Unknown routes still pass through authentication before the 404,
	// so an unauthenticated probe cannot map the route table.
	e.RouteNotFound("/*", r.authMiddleware.Authenticate(notFound))
}

func notFound(c echo.Context) error {
	return response.NotFound(c, "NOT_FOUND", "Requested resource not found")
}
