package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const paymentMethodNotFound = "payment method not found"

func (h *CatalogHTTP) ListPaymentMethods(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_method.list")

	items, err := h.Svc.ListPaymentMethods(ctx)
	if err != nil {
		return fail(l, "list_payment_methods", err, paymentMethodNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetPaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_method.get")

	item, err := h.Svc.GetPaymentMethod(ctx, c.Param("id"))
	if err != nil {
		return fail(l, "get_payment_method", err, paymentMethodNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) CreatePaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_method.create")

	var req transport.CreatePaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "create_payment_method", err)
	}

	item, err := h.Svc.CreatePaymentMethod(ctx, req)
	if err != nil {
		return fail(l, "create_payment_method", err, paymentMethodNotFound)
	}

	l.Info("create_payment_method_success", "payment_method_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHTTP) UpdatePaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_method.update")

	var req transport.PatchPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "update_payment_method", err)
	}

	item, err := h.Svc.UpdatePaymentMethod(ctx, c.Param("id"), req)
	if err != nil {
		return fail(l, "update_payment_method", err, paymentMethodNotFound)
	}

	l.Info("update_payment_method_success", "payment_method_id", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) DeletePaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_method.delete")

	id := c.Param("id")
	if err := h.Svc.DeletePaymentMethod(ctx, id); err != nil {
		return fail(l, "delete_payment_method", err, paymentMethodNotFound)
	}

	l.Info("delete_payment_method_success", "payment_method_id", id)
	return c.NoContent(http.StatusNoContent)
}
