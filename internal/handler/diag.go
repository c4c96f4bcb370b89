package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/loanword-api/internal/database"
)

// DiagHandler serves the environment introspection endpoints.  It holds
// whatever came out of the startup database open: a live client, or the
// error that explains why there is none.  Either way the process keeps
// running and these endpoints report the state.
type DiagHandler struct {
	Client  *database.Client // nil when the store could not be opened
	InitErr error            // open error, nil when Client is set or no URL was given
	Masked  string           // masked connection URL, empty when unset
}

// EnvCheck reports whether a database URL is configured and its masked form.
func (h *DiagHandler) EnvCheck(c echo.Context) error {
	var masked any
	if h.Masked != "" {
		masked = h.Masked
	}
	return c.JSON(http.StatusOK, echo.Map{
		"DATABASE_URL_seen": h.Masked != "",
		"DATABASE_URL":      masked,
	})
}

// DBTest performs one round trip against the catalog database and reports
// either the server time or the initialization/query error.
func (h *DiagHandler) DBTest(c echo.Context) error {
	if h.Client == nil {
		detail := "database client not initialized"
		if h.InitErr != nil {
			detail = h.InitErr.Error()
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status": "error",
			"detail": detail,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	now, err := h.Client.Now(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status": "error",
			"detail": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"time":   now,
	})
}
