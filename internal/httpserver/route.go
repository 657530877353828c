package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	StatusHandler   *StatusHTTP
	ProductHandler  *ProductHTTP
	AuthHandler     *AuthHTTP
	WishlistHandler *WishlistHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = JSONErrorHandler

	e.GET("/", d.StatusHandler.Root)

	api := e.Group("/api")
	api.GET("/health", d.StatusHandler.Health)

	api.GET("/produtos", d.ProductHandler.ListProducts)
	api.POST("/produtos", d.ProductHandler.CreateProduct)

	api.POST("/cadastro", d.AuthHandler.Register)
	api.POST("/login", d.AuthHandler.Login)

	wishlist := api.Group("/wishlist")
	wishlist.GET("", d.WishlistHandler.List)
	wishlist.POST("", d.WishlistHandler.Add)
	wishlist.DELETE("/:id", d.WishlistHandler.Remove)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "route not found")
	})
}

// JSONErrorHandler renders every error as {"error": <message>}. Non-HTTP
// errors collapse to a generic 500; the cause is already in the logs.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}
