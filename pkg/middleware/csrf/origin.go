package csrf

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/pkg/logging"
)

// SameOrigin rejects state-changing requests whose Origin (or Referer) names
// a different site than the request host or one of allowed. Requests that
// carry neither header come from non-browser clients and pass.
func SameOrigin(allowed ...string) echo.MiddlewareFunc {
	extra := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		if u, err := url.Parse(a); err == nil && u.Host != "" {
			extra[strings.ToLower(u.Scheme+"://"+u.Host)] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" {
				origin = req.Header.Get("Referer")
			}
			if origin == "" {
				return next(c)
			}

			u, err := url.Parse(origin)
			if err != nil || u.Host == "" {
				return deny(c, origin)
			}
			if strings.EqualFold(u.Scheme, schemeOf(req)) && strings.EqualFold(u.Host, req.Host) {
				return next(c)
			}
			if _, ok := extra[strings.ToLower(u.Scheme+"://"+u.Host)]; ok {
				return next(c)
			}
			return deny(c, origin)
		}
	}
}

func deny(c echo.Context, origin string) error {
	logging.FromContext(c.Request().Context()).Warn("origin_rejected", "status", http.StatusForbidden, "origin", origin)
	return echo.NewHTTPError(http.StatusForbidden, "invalid origin")
}

func schemeOf(r *http.Request) string {
	if p := r.Header.Get(echo.HeaderXForwardedProto); p != "" {
		return p
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
