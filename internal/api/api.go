package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"resume-service/internal/service"
)

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// invalidID and invalidPayload report input the store could never accept.
// Like every non-not-found failure they answer 500 with the cause.
func invalidID(c echo.Context, err error) error {
	return c.JSON(500, map[string]string{"error": "invalid id: " + err.Error()})
}

func invalidPayload(c echo.Context, err error) error {
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg = fmt.Sprint(he.Message)
	}
	return c.JSON(500, map[string]string{"error": msg})
}

// failure maps a service error to 404 for a missing row and 500 otherwise.
func failure(c echo.Context, err error, resource string) error {
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(404, map[string]string{"error": resource + " not found"})
	}
	return c.JSON(500, map[string]string{"error": err.Error()})
}

func deleted(c echo.Context, resource string) error {
	return c.JSON(200, map[string]string{"message": resource + " deleted successfully"})
}

// Health reports that the API is up --> / and /health
func Health(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{
		"status":  "ok",
		"service": "resume-service",
		"message": "Resume API is up",
		"time":    time.Now().Format(time.RFC3339),
	})
}
