package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/murad/unidir/internal/numbering"
)

// SchemeConfig holds the numbering settings for one entity family.
type SchemeConfig struct {
	Min       int    `yaml:"min" env:"-"`
	Max       int    `yaml:"max" env:"-"`
	Width     int    `yaml:"width" env:"-"`
	Prefix    string `yaml:"prefix" env:"-"`
	Suffix    string `yaml:"suffix" env:"-"`
	Separator string `yaml:"separator" env:"-"`
}

// Scheme converts the config section into a numbering.Scheme.
func (c SchemeConfig) Scheme() numbering.Scheme {
	return numbering.Scheme{
		Min:       c.Min,
		Max:       c.Max,
		Width:     c.Width,
		Prefix:    c.Prefix,
		Suffix:    c.Suffix,
		Separator: c.Separator,
	}
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Redis struct {
		URL          string `yaml:"url" env:"REDIS_URL"`
		PoolSize     int    `yaml:"pool_size" env:"REDIS_POOL_SIZE"`
		MinIdleConns int    `yaml:"min_idle_conns" env:"REDIS_MIN_IDLE_CONNS"`
		CacheTTL     string `yaml:"cache_ttl" env:"REDIS_CACHE_TTL"`
	} `yaml:"redis"`

	Auth AuthConfig `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Worker struct {
		CacheRefreshSpec  string `yaml:"cache_refresh_spec" env:"WORKER_CACHE_REFRESH_SPEC"`
		CapacityCheckSpec string `yaml:"capacity_check_spec" env:"WORKER_CAPACITY_CHECK_SPEC"`
	} `yaml:"worker"`

	Numbering struct {
		College    SchemeConfig `yaml:"college"`
		Department SchemeConfig `yaml:"department"`
		Program    SchemeConfig `yaml:"program"`
	} `yaml:"numbering"`
}

// AuthConfig holds JWT settings and the administrative credential
type AuthConfig struct {
	JWTSecret             string `yaml:"jwt_secret" env:"JWT_SECRET"`
	AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
	Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	AdminUser             string `yaml:"admin_user" env:"ADMIN_USER"`
	AdminPasswordHash     string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone can carry a deployment
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "unidir"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Redis.URL = "redis://localhost:6379/0"
	config.Redis.PoolSize = 10
	config.Redis.MinIdleConns = 2
	config.Redis.CacheTTL = "10m"

	config.Auth.AccessTokenExpiration = "1h"
	config.Auth.Issuer = "unidir.app"
	config.Auth.AdminUser = "admin"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Worker.CacheRefreshSpec = "0 */10 * * * *"
	config.Worker.CapacityCheckSpec = "0 0 * * * *"

	config.Numbering.College = SchemeConfig{Min: 1, Max: 99, Width: 2, Separator: "-"}
	config.Numbering.Department = SchemeConfig{Min: 1, Max: 99, Width: 2, Separator: "-"}
	config.Numbering.Program = SchemeConfig{Min: 1, Max: 999, Width: 3, Separator: "-"}
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.Auth.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Redis.CacheTTL); err != nil {
		return fmt.Errorf("invalid redis cache TTL format: %w", err)
	}

	for name, sc := range map[string]SchemeConfig{
		"college":    config.Numbering.College,
		"department": config.Numbering.Department,
		"program":    config.Numbering.Program,
	} {
		if sc.Min < 1 || sc.Max < sc.Min {
			return fmt.Errorf("invalid %s numbering range [%d, %d]", name, sc.Min, sc.Max)
		}
		if sc.Width < 1 {
			return fmt.Errorf("invalid %s numbering width %d", name, sc.Width)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// CacheTTL returns the parsed redis cache TTL.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Redis.CacheTTL)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}
