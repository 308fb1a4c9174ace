// Package handler contains the echo handlers of the manager API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness checks.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
