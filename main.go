package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// @title promptvault-backend API
// @version 1.0
// @description Catalog of reusable prompts: listing, search, favorites and seeding.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "promptvault",
	Short: "Catalog service for reusable prompts",
	Long: `promptvault serves a catalog of reusable text prompts over HTTP.

Prompts are grouped by category, carry tags and a rating, and can be marked
as favorites. The schema is migrated and the catalog seeded once at startup.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, versionCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
