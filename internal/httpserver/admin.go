package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/Skotchmaster/storefront/pkg/middleware/metrics"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

type AdminHTTP struct {
	Auth    *service.AdminAuth
	Guard   *middleware.SessionGuard
	Metrics *metrics.Metrics
	Secure  bool
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "admin_login", err)
	}

	token, exp, err := h.Auth.Login(ctx, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			h.Metrics.ObserveLogin(false)
			l.Warn("admin_login_error", "status", 401, "reason", "invalid password")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid password")
		case errors.Is(err, service.ErrAdminNotConfigured):
			l.Error("admin_login_error", "status", 500, "reason", "admin password not configured")
			return echo.NewHTTPError(http.StatusInternalServerError, "admin password not configured")
		default:
			l.Error("admin_login_error", "status", 500, "reason", "cannot issue session", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, internalError)
		}
	}

	h.Metrics.ObserveLogin(true)
	c.SetCookie(tokens.CreateCookie(tokens.SessionCookie, token, "/", exp, h.Secure))

	l.Info("admin_login_success")
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true})
}

// Logout revokes the presented session server-side and clears the cookie.
func (h *AdminHTTP) Logout(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "admin.logout")

	if cookie, err := c.Cookie(tokens.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.Auth.Revoke(cookie.Value); err != nil {
			l.Warn("admin_logout_error", "reason", "session not revocable", "error", err)
		} else {
			l.Info("admin_logout_success")
		}
	}
	c.SetCookie(tokens.DeleteCookie(tokens.SessionCookie, "/", h.Secure))
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true})
}

func (h *AdminHTTP) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.SessionResponse{IsAdmin: h.Guard.IsAdmin(c)})
}
