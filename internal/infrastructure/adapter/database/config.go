package database

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// DefaultConfig returns a Config with default values for the given driver.
// Credentials are never defaulted.
func DefaultConfig(driver string) *Config {
	c := &Config{
		Driver:          driver,
		SSLMode:         "disable",
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		QueryTimeout:    30 * time.Second,
		SlowThreshold:   500 * time.Millisecond,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      2 * time.Second,
	}
	switch driver {
	case DriverPostgres:
		c.Port = 5432
	case DriverMySQL:
		c.Port = 3306
	case DriverSQLite:
		c.Path = "docbase.db"
		// one writer at a time; a second connection would only wait on the file lock
		c.MaxOpenConns = 1
		c.MaxIdleConns = 1
	}
	return c
}

// Validate checks if the configuration is valid for its driver
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("sqlite database path is required")
		}
	case DriverPostgres, DriverMySQL:
		if err := c.validateServer(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validateServer() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	if c.Driver == DriverPostgres {
		validSSLModes := map[string]bool{
			"disable":     true,
			"allow":       true,
			"prefer":      true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}
	return nil
}

// DSN returns the driver specific connection string
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.Username
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Database
		mc.ParseTime = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	case DriverSQLite:
		// _txlock=immediate takes the write lock at BEGIN so two runners serialize
		// on the claim row instead of failing at commit
		return c.Path + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	default:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	}
}

// Target describes the database for log lines without exposing credentials
func (c *Config) Target() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("%s/%s", net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), c.Database)
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}
