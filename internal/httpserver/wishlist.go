package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mixmodas-api/internal/logging"
	"mixmodas-api/internal/repo"
	"mixmodas-api/internal/service"
	"mixmodas-api/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.list")

	items, err := h.Svc.List(ctx, c.QueryParam("email"))
	if err != nil {
		if errors.Is(err, repo.ErrUnavailable) {
			l.Error("list_wishlist_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		}
		l.Error("list_wishlist_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list wishlist")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *WishlistHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	var req transport.AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_wishlist_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	entry, err := h.Svc.Add(ctx, req.Email, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_wishlist_failed", "status", 400, "reason", "missing fields")
			return echo.NewHTTPError(http.StatusBadRequest, "email and product_id are required")
		case errors.Is(err, repo.ErrUnavailable):
			l.Error("add_wishlist_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		default:
			l.Error("add_wishlist_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "could not save wishlist entry")
		}
	}

	l.Info("add_wishlist_success", "entry_id", entry.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"entry":   entry,
	})
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.remove")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		l.Warn("remove_wishlist_failed", "status", 400, "reason", "id not a positive integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}

	if err := h.Svc.Remove(ctx, uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("remove_wishlist_failed", "status", 404, "entry_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "wishlist entry not found")
		case errors.Is(err, repo.ErrUnavailable):
			l.Error("remove_wishlist_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		default:
			l.Error("remove_wishlist_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "could not delete wishlist entry")
		}
	}

	l.Info("remove_wishlist_success", "entry_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "wishlist entry removed",
	})
}
