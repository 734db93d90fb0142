package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	domainerr "github.com/amirhossein-jamali/docbase-migrator/internal/domain/error"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable the migrator reads
const EnvPrefix = "DB_MIGRATE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables onto config keys
var envOverrides = map[string]string{
	"DB_MIGRATE_DB_DRIVER":               "database.driver",
	"DB_MIGRATE_DB_HOST":                 "database.host",
	"DB_MIGRATE_DB_PORT":                 "database.port",
	"DB_MIGRATE_DB_USERNAME":             "database.username",
	"DB_MIGRATE_DB_PASSWORD":             "database.password",
	"DB_MIGRATE_DB_NAME":                 "database.database",
	"DB_MIGRATE_DB_SSL_MODE":             "database.sslMode",
	"DB_MIGRATE_DB_PATH":                 "database.path",
	"DB_MIGRATE_DB_LOG_LEVEL":            "database.logLevel",
	"DB_MIGRATE_LOGGER_LEVEL":            "logger.level",
	"DB_MIGRATE_LOGGER_FORMAT":           "logger.format",
	"DB_MIGRATE_SERVER_HOST":             "server.host",
	"DB_MIGRATE_SERVER_PORT":             "server.port",
	"DB_MIGRATE_DB_QUERY_TIMEOUT":        "database.queryTimeout",
	"DB_MIGRATE_DB_RETRY_ATTEMPTS":       "database.retryAttempts",
	"DB_MIGRATE_DB_RETRY_DELAY":          "database.retryDelay",
	"DB_MIGRATE_MIGRATION_TIMEOUT":       "migration.timeout",
	"DB_MIGRATE_DB_MAX_OPEN_CONNS":       "database.maxOpenConns",
	"DB_MIGRATE_DB_CONN_MAX_LIFETIME":    "database.connMaxLifetime",
	"DB_MIGRATE_DB_SLOW_THRESHOLD_MS":    "database.slowThreshold",
	"DB_MIGRATE_DB_MAX_IDLE_CONNS":       "database.maxIdleConns",
	"DB_MIGRATE_LOGGER_OUTPUT":           "logger.output",
	"DB_MIGRATE_SERVER_SHUTDOWN_TIMEOUT": "server.shutdownTimeout",
}

var intKeys = map[string]bool{
	"server.port":              true,
	"database.queryTimeout":    true,
	"database.retryAttempts":   true,
	"database.retryDelay":      true,
	"migration.timeout":        true,
	"database.maxOpenConns":    true,
	"database.maxIdleConns":    true,
	"database.connMaxLifetime": true,
	"database.slowThreshold":   true,
	"server.shutdownTimeout":   true,
}

// LoadConfig loads configuration for the environment named by DB_MIGRATE_ENV
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load reads configuration. When configFile is empty, configs/<env>.yaml is
// looked up in ConfigPaths and may be absent; environment variables always win.
func Load(configFile string) (*Config, error) {
	// A missing .env file is normal in containers
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(env)
		v.SetConfigType("yaml")
		for _, path := range ConfigPaths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: error reading config file: %w", domainerr.ErrInvalidConfig, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := processEnvOverrides(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config into struct: %w", domainerr.ErrInvalidConfig, err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks settings that do not belong to the database adapter
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logger format must be json or console, got %q", domainerr.ErrInvalidConfig, c.Logger.Format)
	}
	if c.Migration.Timeout < 0 {
		return fmt.Errorf("%w: migration timeout must be non-negative", domainerr.ErrInvalidConfig)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: invalid server port: %d", domainerr.ErrInvalidConfig, c.Server.Port)
	}
	return nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8081)
	v.SetDefault("server.readTimeout", 10)     // seconds
	v.SetDefault("server.writeTimeout", 10)    // seconds
	v.SetDefault("server.shutdownTimeout", 10) // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "docbase.db")
	v.SetDefault("database.maxOpenConns", 4)
	v.SetDefault("database.maxIdleConns", 2)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.queryTimeout", 30)    // seconds
	v.SetDefault("database.slowThreshold", 500)  // milliseconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.callerInfo", false)

	v.SetDefault("migration.timeout", 300) // seconds
}

// getEnvironment determines the environment from DB_MIGRATE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the short DB_MIGRATE_DB_* style variables
func processEnvOverrides(v *viper.Viper) error {
	for name, key := range envOverrides {
		raw, ok := os.LookupEnv(name)
		if !ok || raw == "" {
			continue
		}
		if !intKeys[key] {
			v.Set(key, raw)
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domainerr.ErrInvalidConfig, name, raw)
		}
		v.Set(key, n)
	}
	return nil
}

// processDurations converts raw integer settings into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Migration.Timeout = time.Duration(config.Migration.Timeout) * time.Second
}
