package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"promptvault-backend/config"
	"promptvault-backend/internal/api"
	"promptvault-backend/internal/database"
	"promptvault-backend/internal/services"
	"promptvault-backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr       string
	migrateRollback bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate, seed and start the HTTP server",
	Long: `Start the HTTP server.

Before serving, the schema is migrated and the catalog is seeded if it is
empty. The server shuts down gracefully on Ctrl+C or SIGTERM.

Examples:
  promptvault serve                 # listen on HTTP_ADDR (default :8080)
  promptvault serve --addr :3000    # listen on a custom address`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer database.Close()

		if err := database.ConnectRedis(cfg); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}

		if err := services.Initialize(ctx); err != nil {
			return err
		}

		addr := cfg.HTTPAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: api.NewRouter(cfg),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("Server listening", zap.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer database.Close()

		db := database.DB.WithContext(cmd.Context())
		if migrateRollback {
			if err := database.RollbackLast(db); err != nil {
				return fmt.Errorf("rollback: %w", err)
			}
			logger.Log.Info("Rolled back last migration")
			return nil
		}

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Log.Info("Migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and seed the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer database.Close()

		ctx := cmd.Context()
		if err := database.Migrate(database.DB.WithContext(ctx)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		seeded, err := services.SeedIfEmpty(ctx)
		if err != nil {
			return err
		}
		result, err := services.AppendSupplementalSeed(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d prompts, %s\n", seeded, result.Message)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "promptvault %s\n", version)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
	migrateCmd.Flags().BoolVar(&migrateRollback, "rollback", false, "roll back the most recent migration")
}

// bootstrap loads configuration, initializes the logger and connects the database.
func bootstrap() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	if _, err := database.Connect(cfg.DBDriver, cfg.DSN()); err != nil {
		logger.Log.Error("Failed to connect database", zap.String("driver", cfg.DBDriver), zap.Error(err))
		return nil, err
	}

	return cfg, nil
}
