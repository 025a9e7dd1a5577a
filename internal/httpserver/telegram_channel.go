package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const telegramChannelNotFound = "telegram channel not found"

func (h *CatalogHTTP) ListTelegramChannels(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "telegram_channel.list")

	items, err := h.Svc.ListTelegramChannels(ctx)
	if err != nil {
		return fail(l, "list_telegram_channels", err, telegramChannelNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetTelegramChannel(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "telegram_channel.get")

	item, err := h.Svc.GetTelegramChannel(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_telegram_channel", err, telegramChannelNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) CreateTelegramChannel(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "telegram_channel.create")

	var req transport.CreateTelegramChannelRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_telegram_channel", err)
	}

	item, err := h.Svc.CreateTelegramChannel(ctx, req)
	if err != nil {
		return fail(l, "create_telegram_channel", err, telegramChannelNotFound)
	}

	l.Info("create_telegram_channel_success", "telegram_channel_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHTTP) UpdateTelegramChannel(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "telegram_channel.update")

	var req transport.PatchTelegramChannelRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_telegram_channel", err)
	}

	item, err := h.Svc.UpdateTelegramChannel(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "update_telegram_channel", err, telegramChannelNotFound)
	}

	l.Info("update_telegram_channel_success", "telegram_channel_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) DeleteTelegramChannel(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "telegram_channel.delete")

	id := c.Param("id")
	if err := h.Svc.DeleteTelegramChannel(ctx, id); err != nil {
		return fail(l, "delete_telegram_channel", err, telegramChannelNotFound)
	}

	l.Info("delete_telegram_channel_success", "telegram_channel_id", id)
	return c.NoContent(http.StatusNoContent)
}
