// Package router wires the HTTP routes to their handlers and
// middleware. Public directory endpoints sit behind the Redis
// response cache; everything sits behind the rate limiter; the
// authenticated groups add JWT and role checks.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ayivi/bus-ticket-reservation/internal/config"
	"github.com/ayivi/bus-ticket-reservation/internal/handler"
	"github.com/ayivi/bus-ticket-reservation/internal/middleware"
	"github.com/ayivi/bus-ticket-reservation/internal/model"
)

// Handlers collects the handler set the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Public  *handler.PublicHandler
	Client  *handler.ClientHandler
	Company *handler.CompanyHandler
	Admin   *handler.AdminHandler
}

// Register mounts every route on the Echo instance. rdb may be nil,
// in which case caching and rate limiting are disabled.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	// Signup and login need no session.
	auth := e.Group("/v1/auth")
	auth.POST("/register/client", h.Auth.RegisterClient)
	auth.POST("/register/company", h.Auth.RegisterCompany)
	auth.POST("/login", h.Auth.Login)

	// Public directory, cached: the data is small and changes rarely.
	pub := e.Group("/v1", middleware.ResponseCache(config.LoadCacheConfig(), rdb))
	pub.GET("/companies", h.Public.ListCompanies)
	pub.GET("/companies/:id/stations", h.Public.CompanyStations)
	pub.GET("/stations/:id", h.Public.GetStation)
	pub.GET("/search/routes", h.Public.SearchRoutes)

	// Any authenticated caller.
	me := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	me.GET("/me", h.Auth.Me)
	me.PUT("/profile", h.Client.UpdateProfile)

	// Traveler endpoints.
	client := e.Group("/v1", middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleClient))
	client.POST("/reservations", h.Client.Book)
	client.GET("/reservations", h.Client.MyReservations)
	client.GET("/reservations/:id", h.Client.GetReservation)

	// Company dashboard endpoints.
	company := e.Group("/v1/company", middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCompany))
	company.GET("/stations", h.Company.MyStations)
	company.POST("/stations", h.Company.SaveStation)
	company.DELETE("/stations/:id", h.Company.DeleteStation)
	company.GET("/manifest", h.Company.Manifest)

	// Registration review.
	admin := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin))
	admin.GET("/companies", h.Admin.ListCompanies)
	admin.PUT("/companies/:id/status", h.Admin.SetCompanyStatus)
}
