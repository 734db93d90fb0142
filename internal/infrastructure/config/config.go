package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all configuration for the migrator
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Migration   MigrationConfig `mapstructure:"migration"`
}

// ServerConfig contains settings of the read-only status endpoint
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`     // seconds
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`    // seconds
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"` // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite file
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// MigrationConfig contains batch settings
type MigrationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"` // seconds, 0 disables
}

// ListenAddr returns host:port of the status endpoint
func (s ServerConfig) ListenAddr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
