package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by load balancers and monitoring.
// It answers 200 regardless of catalog store health; a dead database must
// not make the whole service look down.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Root returns a small service banner so hitting the bare host is not a 404.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "loanword-api",
		"status":  "ok",
	})
}
