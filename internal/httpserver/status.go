package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mixmodas-api/internal/repo"
)

type StatusHTTP struct {
	Repo *repo.GormRepo
}

func (h *StatusHTTP) database() string {
	if h.Repo.Available() {
		return "connected"
	}
	return "disconnected"
}

func (h *StatusHTTP) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Mix Modas API online",
		"status":    "success",
		"database":  h.database(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *StatusHTTP) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "healthy",
		"database":  h.database(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
