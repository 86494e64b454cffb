// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inspection/internal/delivery/api/middleware"
	"inspection/internal/delivery/api/router/handler"
	"inspection/internal/domain/entity"
	"inspection/internal/domain/service"
	"inspection/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	SessionHandler      *handler.SessionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	auth           *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		auth:           params.AuthMiddleware,
		rateLimit:      params.RateLimitMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Tiers are declared per route. The general tier runs before authentication;
// the critical tier runs after it so that it is keyed by account.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, r.rateLimit.Tier(service.RateTierLogin))
		authGroup.POST("/logout", r.authHandler.Logout, r.rateLimit.Tier(service.RateTierGeneral))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/session", r.sessionHandler.Current,
		r.rateLimit.Tier(service.RateTierGeneral),
		r.auth.Authenticate,
	)

	// Admin routes
	adminGroup := apiV1.Group("/admin",
		r.auth.Authenticate,
		r.rateLimit.Tier(service.RateTierCritical),
		r.auth.RequireRole(entity.HasRole(entity.RoleAdmin)),
	)
	{
		adminGroup.GET("/session", r.sessionHandler.Current)
	}

	// Field routes
	fieldGroup := apiV1.Group("/field",
		r.auth.Authenticate,
		r.rateLimit.Tier(service.RateTierCritical),
		r.auth.RequireRole(entity.HasAnyRole(entity.RoleInspector, entity.RoleAdmin)),
	)
	{
		fieldGroup.GET("/session", r.sessionHandler.Current)
	}
}
