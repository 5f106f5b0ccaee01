// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"memoria/internal/delivery/http/middleware"
	"memoria/internal/delivery/http/router/handler"
	"memoria/internal/delivery/http/upload"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	JournalHandler *handler.JournalHandler
	AuthMiddleware *middleware.AuthMiddleware
	Stager         *upload.Stager
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	journalHandler *handler.JournalHandler
	authMiddleware *middleware.AuthMiddleware
	stager         *upload.Stager
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		journalHandler: params.JournalHandler,
		authMiddleware: params.AuthMiddleware,
		stager:         params.Stager,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/verify-email", r.userHandler.VerifyEmail)
		authGroup.GET("/verify", r.userHandler.CurrentUser, r.authMiddleware.Authenticate)
	}

	// Journal routes, all behind authentication
	journalGroup := e.Group("/journals")
	journalGroup.Use(r.authMiddleware.Authenticate)
	{
		journalGroup.POST("/addOrUpdate", r.journalHandler.Submit, r.stager.Stage)
		journalGroup.GET("/date", r.journalHandler.ByDate)
		journalGroup.GET("/paginated", r.journalHandler.Paginated)
		journalGroup.GET("/journal-entry-dates", r.journalHandler.EntryDates)
		journalGroup.GET("/metrics", r.journalHandler.Metrics)
		journalGroup.POST("/deleteJournal", r.journalHandler.Delete)
	}
}
