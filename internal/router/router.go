// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/loanword-api/internal/config"
	"github.com/iliyamo/loanword-api/internal/handler"
	"github.com/iliyamo/loanword-api/internal/middleware"
)

// Register sets up global middleware and all routes.  CORS is wide open to
// match the original dev deployment; the API carries no credentials.
func Register(e *echo.Echo, deck *handler.DeckHandler, diag *handler.DiagHandler, rdb *redis.Client) {
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	e.GET("/", handler.Root)
	e.GET("/v1/health", handler.Health)
	e.GET("/v1/envcheck", diag.EnvCheck)
	e.GET("/v1/dbtest", diag.DBTest)

	decks := e.Group("/v1/decks")
	decks.POST("/generate", deck.Generate)
	// GET variant for clients that cannot send a body; cacheable since the
	// full request is in the query string.
	decks.GET("/generate", deck.Generate, middleware.ResponseCache(config.LoadCacheConfig(), rdb))
}
