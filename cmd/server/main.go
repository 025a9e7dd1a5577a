package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/httpserver"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/search"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/storefront"
	"github.com/Skotchmaster/storefront/internal/translate"
	"github.com/Skotchmaster/storefront/internal/uploads"
	pkgdb "github.com/Skotchmaster/storefront/pkg/db"
	"github.com/Skotchmaster/storefront/pkg/logging"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/Skotchmaster/storefront/pkg/middleware/csrf"
	loggingmw "github.com/Skotchmaster/storefront/pkg/middleware/logging"
	"github.com/Skotchmaster/storefront/pkg/middleware/metrics"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not loaded: %v, using process environment", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "storefront")
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}
	publisher := buildPublisher(cfg, logger)
	searcher := buildSearcher(cfg, gormRepo, logger)

	svc := service.NewCatalogService(gormRepo, publisher, searcher)
	if _, ok := searcher.(*search.ESSearcher); ok {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			n, err := svc.ReindexProducts(logging.IntoContext(ctx, logger))
			if err != nil {
				logger.Error("reindex_error", "indexed", n, "error", err)
				return
			}
			logger.Info("reindex_done", "indexed", n)
		}()
	}

	auth, err := service.NewAdminAuth(cfg.AdminPasswordHash, cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("admin auth: %v", err)
	}
	if !auth.Configured() {
		logger.Warn("admin password not configured, admin login disabled")
	}

	store, err := uploads.New(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	table, err := translate.Load(cfg.TranslationsFile)
	if err != nil {
		log.Fatalf("translations: %v", err)
	}

	m := metrics.New()
	guard := middleware.NewSessionGuard(auth, cfg.CookieSecure)

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger, "/health", "/metrics", "/uploads"))
	e.Use(m.Middleware())
	e.Use(echomw.Secure())
	e.Use(echomw.CORS())
	e.Use(csrf.SameOrigin(cfg.AllowedOrigins...))

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler:    &httpserver.CatalogHTTP{Svc: svc},
		AdminHandler:      &httpserver.AdminHTTP{Auth: auth, Guard: guard, Metrics: m, Secure: cfg.CookieSecure},
		UploadHandler:     &httpserver.UploadHTTP{Store: store, Metrics: m},
		TranslateHandler:  &httpserver.TranslateHTTP{Table: table},
		StorefrontHandler: &httpserver.StorefrontHTTP{Views: &storefront.Builder{Src: svc, Translate: table}},
		Guard:             guard,
		Metrics:           m,
		Ready:             gormRepo.Ping,
		UploadDir:         store.Dir,
		LoginRatePerMin:   cfg.LoginRatePerMin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           e,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db close error", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("publisher close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// buildPublisher fans catalog events out to every configured sink.
func buildPublisher(cfg config.Config, logger *slog.Logger) events.Publisher {
	var sinks events.Multi
	if len(cfg.KafkaBrokers) > 0 {
		sinks = append(sinks, events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	if cfg.TelegramBotToken != "" && cfg.TelegramAnnounceChatID != 0 {
		tg, err := events.NewTelegramAnnouncer(cfg.TelegramBotToken, cfg.TelegramAnnounceChatID)
		if err != nil {
			logger.Error("telegram announcer disabled", "error", err)
		} else {
			sinks = append(sinks, tg)
			logger.Info("telegram announcements enabled", "chat_id", cfg.TelegramAnnounceChatID)
		}
	}
	if len(sinks) == 0 {
		return events.Nop{}
	}
	return sinks
}

func buildSearcher(cfg config.Config, r *repo.GormRepo, logger *slog.Logger) search.Searcher {
	if cfg.ElasticURL == "" {
		return &search.DBSearcher{Repo: r}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	es, err := search.NewESSearcher(ctx, search.ESConfig{
		URL:      cfg.ElasticURL,
		Username: cfg.ElasticUser,
		Password: cfg.ElasticPassword,
		Index:    cfg.ElasticIndex,
	})
	if err != nil {
		logger.Error("elasticsearch unavailable, falling back to database search", "error", err)
		return &search.DBSearcher{Repo: r}
	}
	return es
}
