package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mixmodas-api/internal/logging"
	"mixmodas-api/internal/repo"
	"mixmodas-api/internal/service"
	"mixmodas-api/internal/transport"
	"mixmodas-api/internal/upload"
)

type ProductHTTP struct {
	Svc     *service.CatalogService
	Uploads *upload.Store
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.ListProducts(ctx, c.QueryParam("categoria"))
	if err != nil {
		if errors.Is(err, repo.ErrUnavailable) {
			l.Error("list_products_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		}
		l.Error("list_products_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list products")
	}

	return c.JSON(http.StatusOK, items)
}

// CreateProduct resolves the image reference first, then runs the common
// create path: an uploaded file part named "imagem" wins, otherwise the
// plain image field value is stored verbatim.
func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	imagePath := req.Image
	if fh, err := c.FormFile("imagem"); err == nil && fh != nil {
		path, uerr := h.Uploads.Save(fh)
		if uerr != nil {
			l.Error("create_product_failed", "status", 500, "reason", "upload failed", "error", uerr)
			return echo.NewHTTPError(http.StatusInternalServerError, "upload failed")
		}
		imagePath = path
	}

	prod, err := h.Svc.CreateProduct(ctx, req, imagePath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_product_failed", "status", 400, "reason", "missing name or price")
			return echo.NewHTTPError(http.StatusBadRequest, "name and a numeric price are required")
		case errors.Is(err, repo.ErrUnavailable):
			l.Error("create_product_failed", "status", 500, "reason", "store unavailable")
			return echo.NewHTTPError(http.StatusInternalServerError, "database unavailable")
		default:
			l.Error("create_product_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "could not save product")
		}
	}

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"product": prod,
	})
}
