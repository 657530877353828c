package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mixmodas-api/internal/logging"
	"mixmodas-api/internal/repo"
	"mixmodas-api/internal/service"
	"mixmodas-api/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		l.Warn("register_failed", "status", 400, "reason", "missing fields")
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and password are required")
	}

	if _, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, repo.ErrUnavailable) {
			l.Error("register_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		}
		// Duplicate emails land here too; the cause stays in the log only.
		l.Error("register_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "email already registered")
	}

	l.Info("register_success", "email", req.Email)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "user registered",
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if req.Email == "" || req.Password == "" {
		l.Warn("login_failed", "status", 400, "reason", "missing fields")
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := h.Svc.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_failed", "status", 401, "email", req.Email)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, repo.ErrUnavailable):
			l.Error("login_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	l.Info("login_success", "email", user.Email)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"email":   user.Email,
		"role":    user.Role,
	})
}
