package logger

import (
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the zap logger
type Options struct {
	Level      string
	Format     string // json or console
	Output     string // stdout, stderr or a file path
	CallerInfo bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a zap-based logger from options
func NewZapLogger(opts Options) (*ZapLogger, error) {
	level, err := core.ParseLogLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if opts.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))

	output := opts.Output
	if output == "" {
		output = "stderr"
	}
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  cfg.Level,
	}, nil
}

// NewDefaultLogger creates a console logger at info level
func NewDefaultLogger() core.Logger {
	l, err := NewZapLogger(Options{Level: "info", Format: "console"})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l
}

// NewZapLoggerFromCore wraps an existing zap core. Tests use it with zaptest/observer.
func NewZapLoggerFromCore(c zapcore.Core, level core.LogLevel) *ZapLogger {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	filtered, err := zapcore.NewIncreaseLevelCore(c, atomic)
	if err != nil {
		filtered = c
	}
	return &ZapLogger{logger: zap.New(filtered), level: atomic}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zapcore.DebugLevel:
		return core.LogLevelDebug
	case zapcore.WarnLevel:
		return core.LogLevelWarn
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zapcore.DebugLevel
	case core.LogLevelWarn:
		return zapcore.WarnLevel
	case core.LogLevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// mapToZapFields converts a map of fields to zap fields in key order
func mapToZapFields(fields map[string]any) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
