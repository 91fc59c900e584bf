package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidEncryptionKey = errors.New("TOKEN_ENCRYPTION_KEY must be base64 of exactly 32 bytes")

// Config holds all application configuration
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`

	Database   DatabaseConfig
	Shopify    ShopifyConfig
	Services   ServicesConfig
	Google     GoogleConfig
	Redis      RedisConfig
	WorkerPool WorkerPoolConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST,required,notEmpty"`
	Username string `env:"DB_USERNAME,required,notEmpty"`
	Password string `env:"DB_PASSWORD,required,notEmpty"`
	Name     string `env:"DB_NAME,required,notEmpty"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// ShopifyConfig holds the embedded app credentials
type ShopifyConfig struct {
	APIKey     string `env:"SHOPIFY_API_KEY,required,notEmpty"`
	APISecret  string `env:"SHOPIFY_API_SECRET,required,notEmpty"`
	Scopes     string `env:"SHOPIFY_SCOPES" envDefault:"read_orders,write_metafields"`
	APIVersion string `env:"SHOPIFY_API_VERSION" envDefault:"2024-10"`
}

// ServicesConfig holds external service endpoints and shared secrets
type ServicesConfig struct {
	AppURL                 string `env:"APP_URL,required,notEmpty"`
	APISharedSecret        string `env:"API_SHARED_SECRET"`
	TokenEncryptionKey     string `env:"TOKEN_ENCRYPTION_KEY,required,notEmpty"`
	AttributionAPIURL      string `env:"ATTRIBUTION_API_URL" envDefault:"https://api.oce.video"`
	SmartleadAPIURL        string `env:"SMARTLEAD_API_URL" envDefault:"https://server.smartlead.ai/api/v1"`
	SmartleadWebhookSecret string `env:"SMARTLEAD_WEBHOOK_SECRET"`
	CloudflareAPIURL       string `env:"CLOUDFLARE_API_URL" envDefault:"https://api.cloudflare.com/client/v4"`
}

// GoogleConfig holds the OAuth app used for Gmail forwarding
type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}

// RedisConfig holds the OAuth state store connection
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// WorkerPoolConfig holds worker pool configuration for webhook processing
type WorkerPoolConfig struct {
	WebhookWorkers   int `env:"WEBHOOK_WORKERS" envDefault:"4"`
	WebhookQueueSize int `env:"WEBHOOK_QUEUE_SIZE" envDefault:"100"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int `env:"SERVER_PORT" envDefault:"8080"`
}

// Load reads and validates all environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.EncryptionKey(); err != nil {
		return nil, err
	}
	cfg.Services.AppURL = strings.TrimRight(cfg.Services.AppURL, "/")

	return cfg, nil
}

// IsProduction reports whether GO_ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EncryptionKey decodes TOKEN_ENCRYPTION_KEY
func (c *Config) EncryptionKey() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(c.Services.TokenEncryptionKey)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidEncryptionKey
	}
	return key, nil
}

// GmailForwardingEnabled returns true when the Google OAuth app is configured
func (c *Config) GmailForwardingEnabled() bool {
	return c.Google.ClientID != "" && c.Google.ClientSecret != ""
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Name, c.SSLMode)
}
