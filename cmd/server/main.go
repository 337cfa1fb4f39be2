// MovieWeb - Favorite Movie Collections per User
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieweb

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/tomtom215/movieweb/docs" // Import generated swagger docs
	"github.com/tomtom215/movieweb/internal/api"
	"github.com/tomtom215/movieweb/internal/config"
	"github.com/tomtom215/movieweb/internal/database"
	"github.com/tomtom215/movieweb/internal/logging"
	"github.com/tomtom215/movieweb/internal/supervisor"
	"github.com/tomtom215/movieweb/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the movieweb command tree. Running the root command
// without a subcommand serves.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "movieweb",
		Short:        "MovieWeb - favorite movie collections per user",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configPath == "" {
				return nil
			}
			if _, err := os.Stat(configPath); err != nil {
				return fmt.Errorf("config file: %w", err)
			}
			return os.Setenv(config.ConfigPathEnvVar, configPath)
		},
		RunE: runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (sets "+config.ConfigPathEnvVar+")")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	})

	return root
}

// loadConfig loads configuration and initializes the global logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	return cfg, nil
}

// openDatabase connects and applies migrations. The caller closes the DB.
func openDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		closeDatabase(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func closeDatabase(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Migration failed")
		return err
	}
	defer closeDatabase(db)

	logging.Info().Str("driver", db.Driver()).Msg("Migrations applied")
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	api.Version = version
	logging.Info().
		Str("version", version).
		Str("db_driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Msg("Starting MovieWeb with supervisor tree")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize database")
		return err
	}
	defer closeDatabase(db)
	logging.Info().Msg("Database initialized successfully")

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	handler := api.NewHandler(db, cfg, api.NewFlashStore(&cfg.Security))
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddDataService(services.NewDBStatsService(db, services.DefaultDBStatsInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}
