package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/translate"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const textsNotArray = "texts must be an array"

type TranslateHTTP struct {
	Table *translate.Table
}

type translateRequest struct {
	Texts json.RawMessage `json:"texts"`
}

func (h *TranslateHTTP) Translate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "translate")

	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(l, "translate", err)
	}

	var texts []string
	if len(req.Texts) == 0 || string(req.Texts) == "null" || json.Unmarshal(req.Texts, &texts) != nil {
		l.Warn("translate_error", "status", 400, "reason", textsNotArray)
		return echo.NewHTTPError(http.StatusBadRequest, textsNotArray)
	}

	return c.JSON(http.StatusOK, transport.TranslateResponse{Translations: h.Table.TranslateAll(texts)})
}
