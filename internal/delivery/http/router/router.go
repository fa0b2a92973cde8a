// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/reactive-web/reactive-cms/internal/delivery/http/middleware"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/router/handler"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	SetupHandler   *handler.SetupHandler
	AuthHandler    *handler.AuthHandler
	ContentHandler *handler.ContentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	setupHandler   *handler.SetupHandler
	authHandler    *handler.AuthHandler
	contentHandler *handler.ContentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		setupHandler:   params.SetupHandler,
		authHandler:    params.AuthHandler,
		contentHandler: params.ContentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// First-run setup
	e.GET("/setup", r.setupHandler.ShowSetup)
	e.POST("/setup", r.setupHandler.Bootstrap)

	// Admin entry and session lifecycle
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("", r.authHandler.ShowLogin)
		adminGroup.POST("/login", r.authHandler.Login)
		adminGroup.POST("/logout", r.authHandler.Logout)
	}

	// Dashboard routes that require an authenticated admin session
	dashboardGroup := e.Group("/admin/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	dashboardGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		dashboardGroup.GET("", r.authHandler.Dashboard)
	}

	// Public site
	e.GET("/", r.contentHandler.Home)
	e.GET("/page/:slug", r.contentHandler.Page)
	e.GET("/blog", r.contentHandler.Blog)
	e.GET("/blog/page/:page", r.contentHandler.Archive)
	e.GET("/blog/:slug", r.contentHandler.Post)
}
