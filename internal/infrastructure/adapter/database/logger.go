package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a custom GORM logger that uses our core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string, slowThreshold time.Duration) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

func parseGormLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), l.baseFields(ctx))
	}
}

// Trace logs SQL statements
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	var elapsed time.Duration
	if l.timeProvider != nil {
		elapsed = l.timeProvider.Since(begin).Std()
	} else {
		elapsed = time.Since(begin)
	}

	sql, rows := fc()

	fields := l.baseFields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = sql

	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if tableName := extractTableName(sql); tableName != "" {
		fields["table"] = tableName
	}
	if err != nil {
		fields["error"] = err.Error()
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if runID := coreport.RunIDFrom(ctx); runID != "" {
		fields["run_id"] = runID
	}
	return fields
}

var queryTypes = []string{"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP", "COMMENT"}

// extractQueryType determines the statement verb
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, t := range queryTypes {
		if strings.HasPrefix(sqlUpper, t) {
			return t
		}
	}
	return ""
}

// extractTableName finds the table a statement touches. Quoting is stripped.
// It only understands the statement shapes the migrator itself issues.
func extractTableName(sql string) string {
	fields := strings.Fields(sql)
	for i := 0; i < len(fields)-1; i++ {
		switch strings.ToUpper(fields[i]) {
		case "FROM", "INTO", "UPDATE", "TABLE":
			next := i + 1
			if next+2 < len(fields) &&
				strings.EqualFold(fields[next], "IF") &&
				(strings.EqualFold(fields[next+1], "EXISTS") || strings.EqualFold(fields[next+1], "NOT")) {
				next += 2
				if strings.EqualFold(fields[next], "EXISTS") {
					next++
				}
			}
			if next >= len(fields) {
				return ""
			}
			return trimIdentifier(fields[next])
		}
	}
	return ""
}

func trimIdentifier(s string) string {
	if i := strings.IndexAny(s, "(,;"); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, "\"`[]")
}
