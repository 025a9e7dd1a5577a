package config

import (
	"time"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/search"
	"github.com/Skotchmaster/storefront/internal/uploads"
	"github.com/Skotchmaster/storefront/pkg/config"
)

type Config struct {
	DatabaseURL string
	ServerPort  string
	LogLevel    string

	AdminPasswordHash string
	AdminPassword     string
	SessionSecret     []byte
	SessionTTL        time.Duration
	CookieSecure      bool
	LoginRatePerMin   int
	AllowedOrigins    []string

	UploadDir      string
	UploadMaxBytes int64

	TranslationsFile string

	KafkaBrokers []string
	KafkaTopic   string

	ElasticURL      string
	ElasticUser     string
	ElasticPassword string
	ElasticIndex    string

	TelegramBotToken       string
	TelegramAnnounceChatID int64
}

// Load reads the environment and exits when a required variable is missing.
func Load() Config {
	cfg := fromEnv()

	config.MustHave(
		config.Need("DATABASE_URL", cfg.DatabaseURL),
		config.NeedBytes("SESSION_SECRET", cfg.SessionSecret),
	)

	return cfg
}

func fromEnv() Config {
	return Config{
		DatabaseURL: config.EnvDefault("DATABASE_URL", ""),
		ServerPort:  config.EnvDefault("SERVER_PORT", "8080"),
		LogLevel:    config.EnvDefault("LOG_LEVEL", "info"),

		AdminPasswordHash: config.EnvDefault("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     config.EnvDefault("ADMIN_PASSWORD", ""),
		SessionSecret:     []byte(config.EnvDefault("SESSION_SECRET", "")),
		SessionTTL:        config.EnvDurationDefault("ADMIN_SESSION_TTL", 12*time.Hour),
		CookieSecure:      config.EnvBoolDefault("COOKIE_SECURE", true),
		LoginRatePerMin:   config.EnvIntDefault("LOGIN_RATE_PER_MINUTE", 10),
		AllowedOrigins:    config.CSV(config.EnvDefault("ALLOWED_ORIGINS", "")),

		UploadDir:      config.EnvDefault("UPLOAD_DIR", "uploads"),
		UploadMaxBytes: config.EnvInt64Default("UPLOAD_MAX_BYTES", uploads.DefaultMaxBytes),

		TranslationsFile: config.EnvDefault("TRANSLATIONS_FILE", ""),

		KafkaBrokers: config.CSV(config.EnvDefault("KAFKA_BROKERS", "")),
		KafkaTopic:   config.EnvDefault("KAFKA_TOPIC", events.DefaultTopic),

		ElasticURL:      config.EnvDefault("ELASTICSEARCH_URL", ""),
		ElasticUser:     config.EnvDefault("ELASTICSEARCH_USER", ""),
		ElasticPassword: config.EnvDefault("ELASTICSEARCH_PASSWORD", ""),
		ElasticIndex:    config.EnvDefault("ELASTICSEARCH_INDEX", search.DefaultIndex),

		TelegramBotToken:       config.EnvDefault("TELEGRAM_BOT_TOKEN", ""),
		TelegramAnnounceChatID: config.EnvInt64Default("TELEGRAM_ANNOUNCE_CHAT_ID", 0),
	}
}
