// Package main runs the artisan marketplace service.
//
// Usage:
//
//	marketplace serve
//	marketplace migrate up|down|version
//
// Configuration is read from APP_ENV, APP_SERVICE_NAME, APP_SERVICE_VERSION
// and the YAML file resolved from CONFIG_FILE (./configs/config.{env}.yaml by default).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/app"
	"github.com/Sokol111/ecommerce-marketplace/migrations"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var version = "dev"

const migrateTimeout = 5 * time.Minute

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "marketplace",
		Short:        "Artisan marketplace service",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Pending index migrations are applied on start unless
mongo.migrations.enabled is false.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx.New(app.Options()).Run()
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage MongoDB index migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd.Context(), func(m mongo.Migrator, log *zap.Logger) error {
					return m.Up()
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd.Context(), func(m mongo.Migrator, log *zap.Logger) error {
					return m.Down()
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd.Context(), func(m mongo.Migrator, log *zap.Logger) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					log.Info("migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
					return nil
				})
			},
		},
	)

	return cmd
}

// withMigrator starts a minimal application with config, logger and Mongo,
// runs fn and stops it again.
func withMigrator(ctx context.Context, fn func(mongo.Migrator, *zap.Logger) error) error {
	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	var (
		migrator mongo.Migrator
		log      *zap.Logger
	)
	a := fx.New(
		core.NewCoreModule(),
		mongo.NewMongoModule(mongo.WithMigrations(migrations.Source()), mongo.WithoutAutoMigration()),
		fx.Populate(&migrator, &log),
	)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	runErr := fn(migrator, log)

	if err := a.Stop(ctx); err != nil && runErr == nil {
		return fmt.Errorf("failed to stop: %w", err)
	}
	return runErr
}
