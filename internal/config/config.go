// Package config loads catalog service configuration from an optional
// YAML file with environment variable overrides. A .env file is loaded
// first, so local development does not need exported variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the catalog service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	PortAttempts    int           `yaml:"port_attempts"`
	Debug           bool          `yaml:"debug"`
	DefaultPageSize int           `yaml:"default_page_size"`
	MaxPageSize     int           `yaml:"max_page_size"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
}

// MongoConfig holds document store connection configuration.
type MongoConfig struct {
	URI                    string        `yaml:"uri"`
	Database               string        `yaml:"database"`
	Collection             string        `yaml:"collection"`
	ConnectTimeout         time.Duration `yaml:"connect_timeout"`
	SocketTimeout          time.Duration `yaml:"socket_timeout"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout"`
	MinPoolSize            uint64        `yaml:"min_pool_size"`
	MaxPoolSize            uint64        `yaml:"max_pool_size"`
}

// CacheConfig holds the optional Redis page cache configuration.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	TTL      time.Duration `yaml:"ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// Load reads the YAML config file at path (missing file means defaults),
// applies defaults, then environment overrides, then validates. Variables
// from a .env file in the working directory are loaded first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, unmarshalErr)
		}
	case os.IsNotExist(err):
		// No file: defaults plus env are enough.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.setDefaults()
	cfg.applyEnvOverrides()

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return cfg, nil
}

// Path returns the config path from CONFIG_PATH or the default.
func Path(defaultPath string) string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultPath
}

func (c *Config) setDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "catalog"
	}
	if c.Service.Version == "" {
		c.Service.Version = "1.0.0"
	}
	if c.Service.Port == 0 {
		c.Service.Port = 3001
	}
	if c.Service.PortAttempts == 0 {
		c.Service.PortAttempts = 3
	}
	if c.Service.DefaultPageSize == 0 {
		c.Service.DefaultPageSize = 5
	}
	if c.Service.MaxPageSize == 0 {
		c.Service.MaxPageSize = 100
	}
	if c.Service.QueryTimeout == 0 {
		c.Service.QueryTimeout = 10 * time.Second
	}

	if c.Mongo.URI == "" {
		c.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "wearlytic"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "products"
	}
	if c.Mongo.ConnectTimeout == 0 {
		c.Mongo.ConnectTimeout = 10 * time.Second
	}
	if c.Mongo.SocketTimeout == 0 {
		c.Mongo.SocketTimeout = 45 * time.Second
	}
	if c.Mongo.ServerSelectionTimeout == 0 {
		c.Mongo.ServerSelectionTimeout = 5 * time.Second
	}
	if c.Mongo.MinPoolSize == 0 {
		c.Mongo.MinPoolSize = 10
	}
	if c.Mongo.MaxPoolSize == 0 {
		c.Mongo.MaxPoolSize = 50
	}

	if c.Cache.Addr == "" {
		c.Cache.Addr = "localhost:6379"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Minute
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Content-Type"}
	}
	if c.CORS.MaxAge == 0 {
		c.CORS.MaxAge = 300
	}
}

// applyEnvOverrides maps environment variables onto config fields. Env
// always wins over the file.
func (c *Config) applyEnvOverrides() {
	setString(&c.Mongo.URI, "MONGODB_URI")
	setString(&c.Mongo.Database, "MONGODB_DATABASE")
	setString(&c.Mongo.Collection, "MONGODB_COLLECTION")

	// PORT matches the original deployment environment; CATALOG_PORT wins.
	setInt(&c.Service.Port, "PORT")
	setInt(&c.Service.Port, "CATALOG_PORT")
	setInt(&c.Service.PortAttempts, "CATALOG_PORT_ATTEMPTS")
	setBool(&c.Service.Debug, "CATALOG_DEBUG")
	setInt(&c.Service.DefaultPageSize, "CATALOG_DEFAULT_PAGE_SIZE")
	setInt(&c.Service.MaxPageSize, "CATALOG_MAX_PAGE_SIZE")

	setBool(&c.Cache.Enabled, "CACHE_ENABLED")
	setString(&c.Cache.Addr, "REDIS_ADDR")
	setString(&c.Cache.Password, "REDIS_PASSWORD")
	setDuration(&c.Cache.TTL, "CACHE_TTL")

	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	setStrings(&c.CORS.AllowedOrigins, "CORS_ORIGINS")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return fmt.Errorf("service.port: invalid port %d", c.Service.Port)
	}
	if c.Service.PortAttempts < 1 {
		return fmt.Errorf("service.port_attempts: must be at least 1")
	}
	if c.Service.MaxPageSize < 1 {
		return fmt.Errorf("service.max_page_size: must be greater than 0")
	}
	if c.Service.DefaultPageSize < 1 || c.Service.DefaultPageSize > c.Service.MaxPageSize {
		return fmt.Errorf("service.default_page_size: must be between 1 and %d", c.Service.MaxPageSize)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri: is required")
	}
	if c.Mongo.Database == "" || c.Mongo.Collection == "" {
		return fmt.Errorf("mongo: database and collection are required")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(strings.TrimSpace(v))
		*dst = v == "true" || v == "1" || v == "yes"
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setStrings(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		*dst = parts
	}
}
