package httpserver

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/uploads"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func (env *testEnv) upload(t *testing.T, filename, contentType string, data []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func files(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Name())
	}
	return out
}

func TestUpload_StoresAndServesFile(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t)

	data := append(append([]byte{}, pngMagic...), bytes.Repeat([]byte{1}, 64)...)
	rec := env.upload(t, "banner.PNG", "image/png", data, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[transport.UploadResponse](t, rec)
	assert.Regexp(t, `^[0-9a-f]{16}\.png$`, res.Filename)
	assert.Equal(t, "/uploads/"+res.Filename, res.URL)
	assert.Equal(t, "banner.PNG", res.OriginalName)
	assert.Equal(t, int64(len(data)), res.Size)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, []string{res.Filename}, files(t, env.Store.Dir))

	served := env.do(t, http.MethodGet, res.URL, nil)
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, data, served.Body.Bytes())
}

func TestUpload_RejectsDisallowedTypes(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t)

	rec := env.upload(t, "notes.txt", "text/plain", []byte("hello"), admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.upload(t, "fake.png", "image/png", []byte("#!/bin/sh\necho pwned\n"), admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, files(t, env.Store.Dir))
}

func TestUpload_TooLarge(t *testing.T) {
	env := newTestEnv(t, func(o *envOptions) { o.maxBytes = 32 })
	admin := env.login(t)

	data := append(append([]byte{}, pngMagic...), bytes.Repeat([]byte{1}, 64)...)
	rec := env.upload(t, "big.png", "image/png", data, admin)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "File too large. Maximum size is 32 bytes.", decode[errorBody](t, rec).Error)
	assert.Empty(t, files(t, env.Store.Dir))
}

func TestUpload_RejectsOversizedBodyUpFront(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", strings.NewReader(""))
	req.Header.Set(echo.HeaderContentType, "multipart/form-data; boundary=x")
	req.ContentLength = uploads.DefaultMaxBytes + 2<<20
	req.AddCookie(admin)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "File too large. Maximum size is 50MB.", decode[errorBody](t, rec).Error)
}

func TestTooLargeMessage(t *testing.T) {
	cases := map[int64]string{
		uploads.DefaultMaxBytes: "File too large. Maximum size is 50MB.",
		5 << 20:                 "File too large. Maximum size is 5MB.",
		512 << 10:               "File too large. Maximum size is 512KB.",
		1500:                    "File too large. Maximum size is 1500 bytes.",
	}
	for limit, want := range cases {
		assert.Equal(t, want, tooLarge(limit))
	}
}

func TestUpload_MissingFile(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/uploads", map[string]any{}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUpload(t *testing.T) {
	env := newTestEnv(t)
	admin := env.login(t)

	rec := env.upload(t, "a.png", "image/png", pngMagic, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	name := decode[transport.UploadResponse](t, rec).Filename

	rec = env.do(t, http.MethodDelete, "/api/uploads/"+name, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[transport.SuccessResponse](t, rec).Success)
	assert.Empty(t, files(t, env.Store.Dir))

	rec = env.do(t, http.MethodDelete, "/api/uploads/"+name, nil, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUpload_RejectsTraversal(t *testing.T) {
	env := newTestEnv(t)
	h := &UploadHTTP{Store: env.Store}

	outside := filepath.Join(filepath.Dir(env.Store.Dir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o600))

	for _, name := range []string{"../secret.txt", "..", `..\secret.txt`, "a/b.png", "x..png"} {
		c := env.E.NewContext(httptest.NewRequest(http.MethodDelete, "/api/uploads/x", nil), httptest.NewRecorder())
		c.SetParamNames("filename")
		c.SetParamValues(name)

		err := h.Delete(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, name)
		assert.Equal(t, http.StatusBadRequest, he.Code, name)
	}

	data, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}
