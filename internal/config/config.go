// Package config manages environment variables.
//
// It reads variables from the `.env` file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (observability, cache, fallback).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into process env
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	Env vars are read using the ESTATE_ prefix. Keys are lowercased, the prefix
	is removed and a double underscore marks one nesting level:

		ESTATE_SERVER__PORT            -> server.port
		ESTATE_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns

	Single underscores stay part of the key name, so snake_case koanf tags
	keep working.
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "ESTATE_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are used by go-playground/validator.
//
// Pointer blocks are optional. A nil Database means the relational backend is
// not configured, and the listing routes answer 503 instead of failing at boot.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      *DatabaseConfig      `koanf:"database"`
	Mongo         *MongoConfig         `koanf:"mongo"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Fallback      FallbackConfig       `koanf:"fallback"`
	Cache         CacheConfig          `koanf:"cache"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// MongoConfig points at the document store holding contact inquiries and
// display content (company info, hero slides).
type MongoConfig struct {
	URI      string `koanf:"uri" validate:"required"`
	Database string `koanf:"database" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port". Empty disables the listing cache and background jobs.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
}

// AuthConfig stores the Clerk secret used to guard management routes.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntegrationConfig holds third-party service credentials.
type IntegrationConfig struct {
	// ResendAPIKey enables contact notification emails. Empty disables them.
	ResendAPIKey string `koanf:"resend_api_key"`

	// NotifyEmail is the agency inbox receiving new contact inquiries.
	NotifyEmail string `koanf:"notify_email" validate:"omitempty,email"`

	// FromAddress is the verified sender identity.
	FromAddress string `koanf:"from_address"`
}

// FallbackConfig controls the local fallback store used when no backend is
// configured.
type FallbackConfig struct {
	// Path is the JSON file state is persisted to. Empty keeps state in memory
	// for the process lifetime.
	Path string `koanf:"path"`

	// DisableSeed starts the store empty instead of with demo listings.
	DisableSeed bool `koanf:"disable_seed"`
}

// CacheConfig tunes the Redis listing cache.
type CacheConfig struct {
	ListingTTL time.Duration `koanf:"listing_ttl"`
}

// DefaultListingTTL applies when cache.listing_ttl is not set.
const DefaultListingTTL = 2 * time.Minute

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
//
// Invalid configuration is fatal: the process exits with a console log line
// describing the first failure.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load initial env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal main config")
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// envKey maps ESTATE_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// applyDefaults fills optional blocks that were not provided.
func (c *Config) applyDefaults() {
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// logs and traces are tagged consistently.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if c.Cache.ListingTTL <= 0 {
		c.Cache.ListingTTL = DefaultListingTTL
	}

	if c.Integration.FromAddress == "" {
		c.Integration.FromAddress = "Estate Listings <onboarding@resend.dev>"
	}
}

// HasDatabase reports whether the relational backend is configured.
func (c *Config) HasDatabase() bool {
	return c.Database != nil
}

// HasDocumentStore reports whether the Mongo document store is configured.
func (c *Config) HasDocumentStore() bool {
	return c.Mongo != nil && c.Mongo.URI != ""
}

// HasRedis reports whether a Redis address was provided.
func (c *Config) HasRedis() bool {
	return c.Redis.Address != ""
}
