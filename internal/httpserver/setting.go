package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

func (h *CatalogHTTP) ListSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "setting.list")

	items, err := h.Svc.ListSettings(ctx)
	if err != nil {
		return fail(l, "list_settings", err, "setting not found")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetSetting(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "setting.get")

	item, err := h.Svc.GetSetting(ctx, c.Param("key"))
	if err != nil {
		return fail(l, "get_setting", err, "setting not found")
	}
	return c.JSON(http.StatusOK, item)
}

// UpsertSetting creates the key or replaces its value; both answer 201.
func (h *CatalogHTTP) UpsertSetting(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "setting.upsert")

	var req transport.UpsertSettingRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "upsert_setting", err)
	}

	item, err := h.Svc.UpsertSetting(ctx, req)
	if err != nil {
		return fail(l, "upsert_setting", err, "setting not found")
	}

	l.Info("upsert_setting_success", "key", item.Key)
	return c.JSON(http.StatusCreated, item)
}
