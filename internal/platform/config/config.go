package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config is the full service configuration.
type Config struct {
	Environment Environment
	Server      Server
	Database    Database
	Redis       Redis
	Kafka       Kafka
	Uploads     Uploads
	Auth        Auth
	Locale      Locale
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        slog.Level
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	TrustedProxies  []string
}

// Database configures the Postgres pool. An empty URL selects in-memory stores.
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Redis configures the response view cache. An empty URL disables caching.
type Redis struct {
	URL      string
	CacheTTL time.Duration
}

// Kafka configures the audit sink. No brokers means audit events stay in memory.
type Kafka struct {
	Brokers    []string
	AuditTopic string
	Acks       string
}

// Uploads configures S3 presigned uploads for study files.
type Uploads struct {
	Bucket            string
	Region            string
	Endpoint          string
	UseLocalstack     bool
	ExpirationMinutes int
	AccessKeyID       string
	SecretAccessKey   string
}

// Expiration returns how long presigned URLs stay valid.
func (u Uploads) Expiration() time.Duration {
	return time.Duration(u.ExpirationMinutes) * time.Minute
}

// Auth configures bearer token validation.
type Auth struct {
	JWTSigningKey string
	Issuer        string
}

// Locale holds negotiation defaults.
type Locale struct {
	Default   language.Tag
	Supported []language.Tag
	TimeZone  *time.Location
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("COBALT_ENVIRONMENT", "local")
	v.SetDefault("COBALT_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RESPONSE_CACHE_TTL", "1m")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_AUDIT_TOPIC", "cobalt.audit.phi")
	v.SetDefault("KAFKA_ACKS", "all")
	v.SetDefault("UPLOAD_BUCKET", "cobalt-local-uploads")
	v.SetDefault("UPLOAD_REGION", "us-east-1")
	v.SetDefault("UPLOAD_ENDPOINT", "")
	v.SetDefault("UPLOAD_USE_LOCALSTACK", false)
	v.SetDefault("UPLOAD_EXPIRATION_MINUTES", 15)
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("JWT_SIGNING_KEY", "dev-secret-key-change-in-production")
	v.SetDefault("JWT_ISSUER", "cobalt")
	v.SetDefault("DEFAULT_LOCALE", "en-US")
	v.SetDefault("SUPPORTED_LOCALES", "en-US,en-GB,es,fr,de")
	v.SetDefault("DEFAULT_TIME_ZONE", "America/New_York")
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)
	// A missing .env is normal outside local development.
	_ = v.ReadInConfig()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	env, err := ParseEnvironment(v.GetString("COBALT_ENVIRONMENT"))
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	defaultTag, err := language.Parse(v.GetString("DEFAULT_LOCALE"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LOCALE: %w", err)
	}
	var supported []language.Tag
	for _, raw := range splitList(v.GetString("SUPPORTED_LOCALES")) {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SUPPORTED_LOCALES entry %q: %w", raw, err)
		}
		supported = append(supported, tag)
	}
	tz, err := time.LoadLocation(v.GetString("DEFAULT_TIME_ZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TIME_ZONE: %w", err)
	}

	expiration := v.GetInt("UPLOAD_EXPIRATION_MINUTES")
	if expiration <= 0 {
		return nil, fmt.Errorf("UPLOAD_EXPIRATION_MINUTES must be positive, got %d", expiration)
	}

	return &Config{
		Environment: env,
		Server: Server{
			Addr:            v.GetString("COBALT_ADDR"),
			LogLevel:        level,
			RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			TrustedProxies:  splitList(v.GetString("TRUSTED_PROXIES")),
		},
		Database: Database{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: Redis{
			URL:      v.GetString("REDIS_URL"),
			CacheTTL: v.GetDuration("RESPONSE_CACHE_TTL"),
		},
		Kafka: Kafka{
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			AuditTopic: v.GetString("KAFKA_AUDIT_TOPIC"),
			Acks:       v.GetString("KAFKA_ACKS"),
		},
		Uploads: Uploads{
			Bucket:            v.GetString("UPLOAD_BUCKET"),
			Region:            v.GetString("UPLOAD_REGION"),
			Endpoint:          v.GetString("UPLOAD_ENDPOINT"),
			UseLocalstack:     v.GetBool("UPLOAD_USE_LOCALSTACK"),
			ExpirationMinutes: expiration,
			AccessKeyID:       v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:   v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Auth: Auth{
			JWTSigningKey: v.GetString("JWT_SIGNING_KEY"),
			Issuer:        v.GetString("JWT_ISSUER"),
		},
		Locale: Locale{
			Default:   defaultTag,
			Supported: supported,
			TimeZone:  tz,
		},
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
