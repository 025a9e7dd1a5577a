package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const categoryNotFound = "category not found"

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	items, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return fail(l, "list_categories", err, categoryNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get")

	item, err := h.Svc.GetCategory(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_category", err, categoryNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_category", err)
	}

	item, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		return fail(l, "create_category", err, categoryNotFound)
	}

	l.Info("create_category_success", "category_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	var req transport.PatchCategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_category", err)
	}

	item, err := h.Svc.UpdateCategory(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "update_category", err, categoryNotFound)
	}

	l.Info("update_category_success", "category_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id := c.Param("id")
	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		return fail(l, "delete_category", err, categoryNotFound)
	}

	l.Info("delete_category_success", "category_id", id)
	return c.NoContent(http.StatusNoContent)
}
