package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/uploads"
	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/middleware/metrics"
)

// formOverhead is the slack allowed on top of the file ceiling for the
// multipart framing and other form fields.
const formOverhead = 1 << 20

// tooLarge names the configured ceiling, e.g. "Maximum size is 50MB.".
func tooLarge(maxBytes int64) string {
	var size string
	switch {
	case maxBytes >= 1<<20 && maxBytes%(1<<20) == 0:
		size = strconv.FormatInt(maxBytes>>20, 10) + "MB"
	case maxBytes >= 1<<10 && maxBytes%(1<<10) == 0:
		size = strconv.FormatInt(maxBytes>>10, 10) + "KB"
	default:
		size = strconv.FormatInt(maxBytes, 10) + " bytes"
	}
	return "File too large. Maximum size is " + size + "."
}

type UploadHTTP struct {
	Store   *uploads.Store
	Metrics *metrics.Metrics
}

func (h *UploadHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.create")

	limit := h.Store.MaxBytes + formOverhead
	req := c.Request()
	if req.ContentLength > limit {
		l.Warn("upload_error", "status", 413, "reason", "content length over limit", "content_length", req.ContentLength)
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, tooLarge(h.Store.MaxBytes))
	}
	req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)

	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			l.Warn("upload_error", "status", 413, "reason", "body over limit", "error", err)
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, tooLarge(h.Store.MaxBytes))
		}
		l.Warn("upload_error", "status", 400, "reason", "no file uploaded", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	res, err := h.Store.Save(ctx, fh)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrTypeNotAllowed):
			l.Warn("upload_error", "status", 400, "reason", "type not allowed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid file type. Only images and videos are allowed.")
		case errors.Is(err, uploads.ErrTooLarge):
			l.Warn("upload_error", "status", 413, "reason", "file over limit", "size", fh.Size)
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, tooLarge(h.Store.MaxBytes))
		case errors.Is(err, uploads.ErrNoFile):
			l.Warn("upload_error", "status", 400, "reason", "no file uploaded")
			return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
		default:
			l.Error("upload_error", "status", 500, "reason", "cannot store file", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, internalError)
		}
	}

	h.Metrics.ObserveUpload(res.Size)
	l.Info("upload_success", "filename", res.Filename, "size", res.Size, "mime_type", res.MimeType)
	return c.JSON(http.StatusOK, transport.UploadResponse{
		URL:          h.Store.URL(res.Filename),
		Filename:     res.Filename,
		OriginalName: res.OriginalName,
		Size:         res.Size,
		MimeType:     res.MimeType,
	})
}

func (h *UploadHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "upload.delete")

	name := c.Param("filename")
	if err := h.Store.Delete(name); err != nil {
		switch {
		case errors.Is(err, uploads.ErrInvalidFilename):
			l.Warn("delete_upload_error", "status", 400, "reason", "invalid filename", "filename", name)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid filename")
		case errors.Is(err, uploads.ErrNotFound):
			l.Warn("delete_upload_error", "status", 404, "reason", "file not found", "filename", name)
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		default:
			l.Error("delete_upload_error", "status", 500, "reason", "cannot delete file", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, internalError)
		}
	}

	l.Info("delete_upload_success", "filename", name)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true})
}
