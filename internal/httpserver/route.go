package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/Skotchmaster/storefront/pkg/middleware/metrics"
)

const defaultLoginRatePerMin = 10

type Deps struct {
	CatalogHandler    *CatalogHTTP
	AdminHandler      *AdminHTTP
	UploadHandler     *UploadHTTP
	TranslateHandler  *TranslateHTTP
	StorefrontHandler *StorefrontHTTP

	Guard           *middleware.SessionGuard
	Metrics         *metrics.Metrics
	Ready           func(ctx context.Context) error
	UploadDir       string
	LoginRatePerMin int
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready")
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", d.Metrics.Handler())
	}
	if d.UploadDir != "" {
		e.Static("/uploads", d.UploadDir)
	}

	admin := d.Guard.RequireAdmin
	api := e.Group("/api")

	ch := d.CatalogHandler
	products := api.Group("/products")
	products.GET("/search", ch.SearchProducts)
	products.GET("", ch.ListProducts)
	products.GET("/:id", ch.GetProduct)
	products.POST("", ch.CreateProduct, admin)
	products.PATCH("/:id", ch.UpdateProduct, admin)
	products.DELETE("/:id", ch.DeleteProduct, admin)

	categories := api.Group("/categories")
	categories.GET("", ch.ListCategories)
	categories.GET("/:id", ch.GetCategory)
	categories.POST("", ch.CreateCategory, admin)
	categories.PATCH("/:id", ch.UpdateCategory, admin)
	categories.DELETE("/:id", ch.DeleteCategory, admin)

	banners := api.Group("/banners")
	banners.GET("", ch.ListBanners)
	banners.GET("/:id", ch.GetBanner)
	banners.POST("", ch.CreateBanner, admin)
	banners.PATCH("/:id", ch.UpdateBanner, admin)
	banners.DELETE("/:id", ch.DeleteBanner, admin)

	methods := api.Group("/payment-methods")
	methods.GET("", ch.ListPaymentMethods)
	methods.GET("/:id", ch.GetPaymentMethod)
	methods.POST("", ch.CreatePaymentMethod, admin)
	methods.PATCH("/:id", ch.UpdatePaymentMethod, admin)
	methods.DELETE("/:id", ch.DeletePaymentMethod, admin)

	channels := api.Group("/telegram-channels")
	channels.GET("", ch.ListTelegramChannels)
	channels.GET("/:id", ch.GetTelegramChannel)
	channels.POST("", ch.CreateTelegramChannel, admin)
	channels.PATCH("/:id", ch.UpdateTelegramChannel, admin)
	channels.DELETE("/:id", ch.DeleteTelegramChannel, admin)

	settings := api.Group("/settings")
	settings.GET("", ch.ListSettings)
	settings.GET("/:key", ch.GetSetting)
	settings.POST("", ch.UpsertSetting, admin)

	ah := d.AdminHandler
	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", ah.Login, loginLimiter(d.LoginRatePerMin))
	adminGroup.POST("/logout", ah.Logout)
	adminGroup.GET("/session", ah.Session)
	adminGroup.GET("/products/export", ch.ExportProducts, admin)

	if uh := d.UploadHandler; uh != nil {
		api.POST("/uploads", uh.Upload, admin)
		api.DELETE("/uploads/:filename", uh.Delete, admin)
	}

	if th := d.TranslateHandler; th != nil {
		api.POST("/translate", th.Translate)
	}

	if sh := d.StorefrontHandler; sh != nil {
		sf := api.Group("/storefront")
		sf.GET("/home", sh.Home)
		sf.GET("/products/:id", sh.Product)
		sf.GET("/about", sh.About)
		sf.GET("/contact", sh.Contact)
	}
}

// loginLimiter allows perMin attempts per client IP per minute.
func loginLimiter(perMin int) echo.MiddlewareFunc {
	if perMin <= 0 {
		perMin = defaultLoginRatePerMin
	}
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMin) / 60),
		Burst:     perMin,
		ExpiresIn: 3 * time.Minute,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "cannot identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
	})
}
