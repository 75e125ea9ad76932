// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret is the signing secret used when JWT_SECRET is not set. It is
// refused in production.
const DevJWTSecret = "gudang-dev-secret"

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config groups the application settings.
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	RabbitMQ  RabbitMQConfig
	Admin     AdminConfig
	Inventory InventoryConfig
}

// AppConfig holds general settings.
type AppConfig struct {
	Env      string // development, staging, production
	Port     string // listen address, e.g. ":8080"
	LogLevel string
}

// IsProduction reports whether the service runs in production.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DBConfig selects the storage backend.
type DBConfig struct {
	Driver string
	DSN    string
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// RabbitMQConfig configures the broker. An empty URL disables it.
type RabbitMQConfig struct {
	URL string
}

// Enabled reports whether a broker is configured.
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// AdminConfig is the operator account seeded at startup.
type AdminConfig struct {
	Username string
	Password string
	Email    string
}

// InventoryConfig tunes the inventory rules.
type InventoryConfig struct {
	LowStockThreshold int
	FNSKUAttempts     int
	SeedDemoData      bool
}

// Load reads .env when present, then the environment. Environment variables
// win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load() // a missing .env is fine

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      strings.ToLower(v.GetString("APP_ENV")),
			Port:     v.GetString("APP_PORT"),
			LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		DB: DBConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetDuration("JWT_EXPIRATION"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: v.GetString("RABBITMQ_URL"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
			Email:    v.GetString("ADMIN_EMAIL"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
			FNSKUAttempts:     v.GetInt("FNSKU_ATTEMPTS"),
			SeedDemoData:      v.GetBool("SEED_DEMO_DATA"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("JWT_SECRET", DevJWTSecret)
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "password")
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.SetDefault("FNSKU_ATTEMPTS", 5)
	v.SetDefault("SEED_DEMO_DATA", true)
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.DB.DSN == "" {
			c.DB.DSN = "gudang.db"
		}
	case DriverPostgres:
		if c.DB.DSN == "" {
			return errors.New("DATABASE_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DB.Driver)
	}
	if c.App.IsProduction() && c.JWT.Secret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWT.Expiration)
	}
	if c.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative, got %d", c.Inventory.LowStockThreshold)
	}
	if c.Inventory.FNSKUAttempts <= 0 {
		return fmt.Errorf("FNSKU_ATTEMPTS must be positive, got %d", c.Inventory.FNSKUAttempts)
	}
	return nil
}
