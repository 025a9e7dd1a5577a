package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/storefront"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

// StorefrontHTTP serves the composed, localized page data for the public site.
type StorefrontHTTP struct {
	Views *storefront.Builder
}

func (h *StorefrontHTTP) Home(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "storefront.home")

	view, err := h.Views.Home(ctx, storefront.ParseLang(c.QueryParam("lang")), storefront.HomeFilter{
		CategoryID: c.QueryParam("categoryId"),
		Query:      c.QueryParam("q"),
	})
	if err != nil {
		return fail(l, "storefront_home", err, productNotFound)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *StorefrontHTTP) Product(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "storefront.product")

	view, err := h.Views.ProductDetail(ctx, storefront.ParseLang(c.QueryParam("lang")), c.Param("id"))
	if err != nil {
		return fail(l, "storefront_product", err, productNotFound)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *StorefrontHTTP) About(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "storefront.about")

	view, err := h.Views.About(ctx, storefront.ParseLang(c.QueryParam("lang")))
	if err != nil {
		return fail(l, "storefront_about", err, "")
	}
	return c.JSON(http.StatusOK, view)
}

func (h *StorefrontHTTP) Contact(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "storefront.contact")

	view, err := h.Views.Contact(ctx, storefront.ParseLang(c.QueryParam("lang")))
	if err != nil {
		return fail(l, "storefront_contact", err, "")
	}
	return c.JSON(http.StatusOK, view)
}
