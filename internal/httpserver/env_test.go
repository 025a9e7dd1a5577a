package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/storefront"
	"github.com/Skotchmaster/storefront/internal/translate"
	"github.com/Skotchmaster/storefront/internal/uploads"
	pkgdb "github.com/Skotchmaster/storefront/pkg/db"
	"github.com/Skotchmaster/storefront/pkg/logging"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	loggingmw "github.com/Skotchmaster/storefront/pkg/middleware/logging"
	"github.com/Skotchmaster/storefront/pkg/middleware/metrics"
	"github.com/Skotchmaster/storefront/pkg/tokens"
)

const adminPassword = "open-sesame"

var testSecret = []byte("test-session-secret")

type testEnv struct {
	E       *echo.Echo
	Svc     *service.CatalogService
	Store   *uploads.Store
	Metrics *metrics.Metrics
}

type envOptions struct {
	passwordHash string
	password     string
	maxBytes     int64
	loginRate    int
}

func newTestEnv(t *testing.T, opts ...func(*envOptions)) *testEnv {
	t.Helper()

	o := envOptions{password: adminPassword, loginRate: 100}
	for _, fn := range opts {
		fn(&o)
	}

	db, err := pkgdb.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	t.Cleanup(func() { _ = pkgdb.Close(db) })

	r := &repo.GormRepo{DB: db}
	svc := service.NewCatalogService(r, nil, nil)

	auth, err := service.NewAdminAuth(o.passwordHash, o.password, testSecret, time.Hour)
	require.NoError(t, err)

	store, err := uploads.New(t.TempDir(), o.maxBytes)
	require.NoError(t, err)

	guard := middleware.NewSessionGuard(auth, false)
	m := metrics.New()

	e := echo.New()
	e.Use(loggingmw.RequestLogger(logging.NewWithWriter(io.Discard, "error")))
	e.Use(m.Middleware())

	Register(e, &Deps{
		CatalogHandler:    &CatalogHTTP{Svc: svc},
		AdminHandler:      &AdminHTTP{Auth: auth, Guard: guard, Metrics: m},
		UploadHandler:     &UploadHTTP{Store: store, Metrics: m},
		TranslateHandler:  &TranslateHTTP{Table: translate.Default()},
		StorefrontHandler: &StorefrontHTTP{Views: &storefront.Builder{Src: svc, Translate: translate.Default()}},
		Guard:             guard,
		Metrics:           m,
		Ready:             r.Ping,
		UploadDir:         store.Dir,
		LoginRatePerMin:   o.loginRate,
	})

	return &testEnv{E: e, Svc: svc, Store: store, Metrics: m}
}

// do sends body as JSON unless it is already a string.
func (env *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{"password": adminPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == tokens.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type errorBody struct {
	Error string `json:"error"`
}
