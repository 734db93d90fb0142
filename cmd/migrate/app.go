package main

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/docbase-migrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/usecase/runner"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/config"
	"github.com/amirhossein-jamali/docbase-migrator/internal/migrations"
)

// app holds the wired components shared by all commands
type app struct {
	cfg          *config.Config
	logger       *logger.ZapLogger
	timeProvider coreport.TimeProvider
	manager      *database.Manager
	runner       *runner.Runner
}

// newApp loads configuration, connects to the database and builds the runner
func newApp(ctx context.Context, opts *globalOptions) (*app, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if opts.quiet {
		appLogger.SetLevel(coreport.LogLevelError)
	}

	registry, err := migrations.Registry()
	if err != nil {
		return nil, err
	}

	tp := timeprovider.NewRealTimeProvider()
	manager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := manager.Connect(ctx); err != nil {
		_ = appLogger.Flush()
		return nil, err
	}

	r := runner.NewRunner(
		registry,
		manager.CreateUnitOfWork(),
		appLogger,
		tp,
		runner.WithTimeout(coreport.Duration(cfg.Migration.Timeout)),
	)

	appLogger.Debug("Migrator initialized", map[string]any{
		"environment": cfg.Environment,
		"units":       registry.Len(),
		"latest":      registry.Latest(),
	})

	return &app{
		cfg:          cfg,
		logger:       appLogger,
		timeProvider: tp,
		manager:      manager,
		runner:       r,
	}, nil
}

// Close releases the connection and flushes buffered log entries
func (a *app) Close() {
	if err := a.manager.Close(); err != nil {
		a.logger.Warn("Failed to close database connection", map[string]any{"error": err.Error()})
	}
	_ = a.logger.Flush()
}
