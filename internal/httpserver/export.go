package httpserver

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/export"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const exportFilename = "products.xlsx"

func (h *CatalogHTTP) ExportProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.export")

	items, err := h.Svc.ListProducts(ctx, repo.ProductFilter{})
	if err != nil {
		return fail(l, "export_products", err, productNotFound)
	}

	var buf bytes.Buffer
	if err := export.WriteProducts(&buf, items); err != nil {
		return fail(l, "export_products", err, productNotFound)
	}

	l.Info("export_products_success", "count", len(items), "bytes", buf.Len())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
