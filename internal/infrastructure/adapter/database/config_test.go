package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPostgres() *Config {
	c := DefaultConfig(DriverPostgres)
	c.Host = "localhost"
	c.Username = "docbase"
	c.Password = "secret"
	c.Database = "docbase"
	return c
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"missing host", func(c *Config) { c.Host = "" }, "host is required"},
		{"missing user", func(c *Config) { c.Username = "" }, "username is required"},
		{"missing database", func(c *Config) { c.Database = "" }, "name is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode"},
		{"unknown driver", func(c *Config) { c.Driver = "oracle" }, "unsupported database driver"},
		{"no retries", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts"},
		{"zero query timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"sqlite without path", func(c *Config) { c.Driver = DriverSQLite; c.Path = "" }, "path is required"},
		{"sqlite ignores server fields", func(c *Config) { c.Driver = DriverSQLite; c.Path = "x.db"; c.Host = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validPostgres()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	pg := validPostgres()
	assert.Equal(t, "host=localhost port=5432 user=docbase password=secret dbname=docbase sslmode=disable", pg.DSN())
	assert.Equal(t, "localhost:5432/docbase", pg.Target())

	my := validPostgres()
	my.Driver = DriverMySQL
	my.Port = 3306
	dsn := my.DSN()
	assert.Contains(t, dsn, "docbase:secret@tcp(localhost:3306)/docbase")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	lite := DefaultConfig(DriverSQLite)
	assert.Equal(t, "docbase.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", lite.DSN())
	assert.Equal(t, "docbase.db", lite.Target())
	assert.Equal(t, 1, lite.MaxOpenConns)
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	app := &config.Config{
		Database: config.DatabaseConfig{
			Driver:        "MySQL",
			Host:          "db",
			Port:          "3307",
			Username:      "root",
			Database:      "docbase",
			QueryTimeout:  time.Minute,
			RetryAttempts: 5,
			RetryDelay:    time.Second,
			LogLevel:      "error",
		},
	}

	c := CreateConfigFromAppConfig(app)
	assert.Equal(t, DriverMySQL, c.Driver)
	assert.Equal(t, 3307, c.Port)
	assert.Equal(t, time.Minute, c.QueryTimeout)
	assert.Equal(t, 5, c.RetryAttempts)
	assert.Equal(t, time.Second, c.RetryDelay)
	assert.Equal(t, "error", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("0"))
	assert.Equal(t, 0, ParsePort("99999"))
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("database.driver", "SQLite")
	v.Set("database.path", "/tmp/docbase.db")
	v.Set("database.queryTimeout", "15s")
	v.Set("database.retryAttempts", 5)
	v.Set("database.logLevel", "info")

	c, err := LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, c.Driver)
	assert.Equal(t, "/tmp/docbase.db", c.Path)
	assert.Equal(t, 15*time.Second, c.QueryTimeout)
	assert.Equal(t, 5, c.RetryAttempts)
	assert.Equal(t, 1, c.MaxOpenConns)

	v = viper.New()
	v.Set("database.driver", "postgres")
	_, err = LoadFromViper(v)
	assert.Error(t, err, "postgres without host is rejected")
}
