package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const internalError = "internal server error"

// ErrorHandler renders every error as {"error": ...}. Errors that are not
// *echo.HTTPError never leak their text to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var msg any = internalError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = he.Message
		if _, ok := msg.(transport.FieldErrors); !ok {
			if e, ok := msg.(error); ok {
				msg = e.Error()
			}
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]any{"error": msg})
	}
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", err)
	}
}

// fail logs err for op and maps it onto the HTTP error the client sees.
func fail(l *slog.Logger, op string, err error, notFound string) error {
	event := op + "_error"

	var fields transport.FieldErrors
	switch {
	case errors.As(err, &fields):
		l.Warn(event, "status", 400, "reason", "validation failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fields)
	case errors.Is(err, service.ErrValidation):
		reason := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
		l.Warn(event, "status", 400, "reason", reason, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, reason)
	case errors.Is(err, repo.ErrNotFound):
		l.Warn(event, "status", 404, "reason", notFound, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	default:
		l.Error(event, "status", 500, "reason", "unexpected error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, internalError)
	}
}

// invalidBody reports a value of the wrong JSON type as a field error and
// anything else that fails to bind as "invalid body".
func invalidBody(l *slog.Logger, op string, err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		fields := transport.FieldErrors{{
			Field:   ute.Field,
			Tag:     "type",
			Message: ute.Field + " must be " + ute.Type.String(),
		}}
		l.Warn(op+"_error", "status", 400, "reason", "wrong field type", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fields)
	}
	l.Warn(op+"_error", "status", 400, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}
