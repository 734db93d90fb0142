package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/amirhossein-jamali/docbase-migrator/internal/domain/entity"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/docbase-migrator/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configFile string
	quiet      bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the docbase database schema",
		Long:          `migrate applies, reverts and reports the versioned schema history of the docbase database on PostgreSQL, MySQL or SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default: configs/<DB_MIGRATE_ENV>.yaml)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(
		newUpCmd(opts, out),
		newDownCmd(opts, out),
		newStatusCmd(opts, out),
		newServeCmd(opts),
	)
	return root
}

func newUpCmd(opts *globalOptions, out io.Writer) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations up to --to (default: latest)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				report, err := a.runner.MigrateUp(ctx, target)
				printReport(out, report)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&target, "to", "", "last migration to apply")
	return cmd
}

func newDownCmd(opts *globalOptions, out io.Writer) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations applied after --to (default: all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				report, err := a.runner.MigrateDown(ctx, target)
				printReport(out, report)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&target, "to", "", "migration to keep; every later one is reverted")
	return cmd
}

func newStatusCmd(opts *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List registered migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tSTATE\tAPPLIED AT")
				for status, err := range a.runner.Status(ctx) {
					if err != nil {
						return err
					}
					appliedAt := "-"
					if status.AppliedAt != nil {
						appliedAt = status.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", status.Name, status.State, appliedAt)
				}
				return tw.Flush()
			})
		},
	}
}

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only migration status over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withApp(ctx, opts, func(ctx context.Context, a *app) error {
				if addr == "" {
					addr = a.cfg.Server.ListenAddr()
				}
				return serve(ctx, a, addr)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.host:server.port)")
	return cmd
}

func serve(ctx context.Context, a *app, addr string) error {
	if a.cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	migrationHandler := handler.NewMigrationHandler(a.runner, a.manager.HealthChecker(), a.logger)
	router := routes.NewRouter(migrationHandler, a.logger, a.timeProvider)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting status server", map[string]any{
			"addr": addr,
			"env":  a.cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("status server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down status server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Status server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	a.logger.Info("Status server exited gracefully", nil)
	return nil
}

func withApp(ctx context.Context, opts *globalOptions, fn func(context.Context, *app) error) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func printReport(out io.Writer, report *entity.MigrationReport) {
	if report == nil {
		return
	}

	verb := "applied"
	if report.Direction == entity.DirectionDown {
		verb = "reverted"
	}
	for _, name := range report.Applied {
		fmt.Fprintf(out, "%s %s\n", verb, name)
	}
	for _, name := range report.Skipped {
		fmt.Fprintf(out, "skipped %s (handled by another process)\n", name)
	}
	if !report.Changed() && len(report.Skipped) == 0 {
		fmt.Fprintln(out, "nothing to do")
	}
}
