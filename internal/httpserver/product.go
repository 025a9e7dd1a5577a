package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const productNotFound = "product not found"

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	var filter repo.ProductFilter
	if v := c.QueryParam("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			l.Warn("list_products_error", "status", 400, "reason", "active is not a bool", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "active must be true or false")
		}
		filter.Active = &active
	}
	if v := c.QueryParam("categoryId"); v != "" {
		filter.CategoryID = &v
	}

	items, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		return fail(l, "list_products", err, productNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	p, err := h.Svc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_product", err, productNotFound)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_product", err)
	}

	p, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return fail(l, "create_product", err, productNotFound)
	}

	l.Info("create_product_success", "product_id", p.ID)
	return c.JSON(http.StatusCreated, p)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_product", err)
	}

	p, err := h.Svc.UpdateProduct(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "update_product", err, productNotFound)
	}

	l.Info("update_product_success", "product_id", p.ID)
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id := c.Param("id")
	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return fail(l, "delete_product", err, productNotFound)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	pg := util.PageFromQuery(c.QueryParam("page"), c.QueryParam("size"))

	total, items, err := h.Svc.SearchProducts(ctx, c.QueryParam("q"), pg.Number, pg.Size)
	if err != nil {
		return fail(l, "search_products", err, productNotFound)
	}
	return c.JSON(http.StatusOK, transport.SearchResponse[models.Product]{
		Total:    total,
		Page:     pg.Number,
		Size:     pg.Size,
		Products: items,
	})
}
