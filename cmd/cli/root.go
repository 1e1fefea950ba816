// Package cli implements the dinner command-line interface.
package cli

import (
	"Dinner-For-Five/cmd/config"
	migration "Dinner-For-Five/cmd/database/migrate"
	"Dinner-For-Five/internal/utils"
	"context"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
}

var flags rootFlags

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dinner",
		Short: "Dinner for 5 recipe service",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore loads the config and opens the configured backend, migrating
// relational schemas when migrate is set.
func openStore(ctx context.Context, migrate bool) (*utils.Config, *config.Store, error) {
	cfg, err := utils.LoadConfig(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if migrate && store.DB != nil {
		if err := migration.Migrate(store.DB); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
	}
	return cfg, store, nil
}

func closeStore(store *config.Store) {
	if err := store.Close(); err != nil {
		log.Warnf("closing store: %v", err)
	}
}
