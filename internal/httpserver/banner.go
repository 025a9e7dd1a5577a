package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const bannerNotFound = "banner not found"

func (h *CatalogHTTP) ListBanners(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.list")

	items, err := h.Svc.ListBanners(ctx)
	if err != nil {
		return fail(l, "list_banners", err, bannerNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.get")

	item, err := h.Svc.GetBanner(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_banner", err, bannerNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) CreateBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.create")

	var req transport.CreateBannerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_banner", err)
	}

	item, err := h.Svc.CreateBanner(ctx, req)
	if err != nil {
		return fail(l, "create_banner", err, bannerNotFound)
	}

	l.Info("create_banner_success", "banner_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHTTP) UpdateBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.update")

	var req transport.PatchBannerRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_banner", err)
	}

	item, err := h.Svc.UpdateBanner(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "update_banner", err, bannerNotFound)
	}

	l.Info("update_banner_success", "banner_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) DeleteBanner(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "banner.delete")

	id := c.Param("id")
	if err := h.Svc.DeleteBanner(ctx, id); err != nil {
		return fail(l, "delete_banner", err, bannerNotFound)
	}

	l.Info("delete_banner_success", "banner_id", id)
	return c.NoContent(http.StatusNoContent)
}
