package database

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/config"
	"github.com/spf13/viper"
)

// LoadFromViper builds a database configuration from the database.* keys of v.
// Duration keys are read as duration strings such as "30s".
func LoadFromViper(v *viper.Viper) (*Config, error) {
	driver := strings.ToLower(v.GetString("database.driver"))
	if driver == "" {
		driver = DriverPostgres
	}
	dbConf := DefaultConfig(driver)

	dbConf.Host = v.GetString("database.host")
	if p := ParsePort(v.GetString("database.port")); p != 0 {
		dbConf.Port = p
	}
	dbConf.Username = v.GetString("database.username")
	dbConf.Password = v.GetString("database.password")
	dbConf.Database = v.GetString("database.database")

	if v.IsSet("database.sslMode") {
		dbConf.SSLMode = v.GetString("database.sslMode")
	}
	if v.IsSet("database.path") {
		dbConf.Path = v.GetString("database.path")
	}
	if v.IsSet("database.maxOpenConns") {
		dbConf.MaxOpenConns = v.GetInt("database.maxOpenConns")
	}
	if v.IsSet("database.maxIdleConns") {
		dbConf.MaxIdleConns = v.GetInt("database.maxIdleConns")
	}
	if v.IsSet("database.connMaxLifetime") {
		dbConf.ConnMaxLifetime = v.GetDuration("database.connMaxLifetime")
	}
	if v.IsSet("database.queryTimeout") {
		dbConf.QueryTimeout = v.GetDuration("database.queryTimeout")
	}
	if v.IsSet("database.retryAttempts") {
		dbConf.RetryAttempts = v.GetInt("database.retryAttempts")
	}
	if v.IsSet("database.retryDelay") {
		dbConf.RetryDelay = v.GetDuration("database.retryDelay")
	}
	if v.IsSet("database.logLevel") {
		dbConf.LogLevel = v.GetString("database.logLevel")
	}

	if err := dbConf.Validate(); err != nil {
		return nil, err
	}
	return dbConf, nil
}

// CreateConfigFromAppConfig adapts the application configuration to database configuration
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	src := conf.Database
	dbConf := DefaultConfig(strings.ToLower(src.Driver))

	dbConf.Host = src.Host
	if p := ParsePort(src.Port); p != 0 {
		dbConf.Port = p
	}
	dbConf.Username = src.Username
	dbConf.Password = src.Password
	dbConf.Database = src.Database

	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.Path != "" {
		dbConf.Path = src.Path
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.SlowThreshold > 0 {
		dbConf.SlowThreshold = src.SlowThreshold
	}
	if src.RetryAttempts > 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if src.LogLevel != "" {
		dbConf.LogLevel = src.LogLevel
	}

	return dbConf
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // Return 0 to signal not set instead of defaulting
	}
	return p
}
