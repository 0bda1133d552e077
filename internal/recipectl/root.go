// Package recipectl implements the recipeshare operations CLI: schema
// migrations, sample-data bootstrap and account creation against the
// configured store.
package recipectl

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/dmitrijs2005/recipeshare/internal/server/config"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

// openStore is a test seam for repomanager.New.
var openStore = repomanager.New

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config *config.Config
}

// NewRootCommand creates the root command. Flags default to the
// environment-derived configuration, except the storage kind which
// defaults to postgres.
func NewRootCommand() *cobra.Command {
	cfg := config.LoadEnvConfig()
	if cfg.StorageKind == common.StorageMemory {
		cfg.StorageKind = common.StoragePostgres
	}
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:           "recipectl",
		Short:         "recipeshare operations tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cfg.StorageKind, "storage", "s", cfg.StorageKind, "storage kind (memory|postgres)")
	cmd.PersistentFlags().StringVarP(&cfg.DatabaseDSN, "dsn", "d", cfg.DatabaseDSN, "database DSN")
	cmd.PersistentFlags().StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewUserAddCommand(opts))
	cmd.AddCommand(NewUploadImageCommand(opts))

	return cmd
}

func (o *RootOptions) logger(cmd *cobra.Command) logging.Logger {
	return logging.NewJSONLogger(cmd.ErrOrStderr(), o.Config.LogLevel)
}

// requirePersistent rejects the in-memory store for commands whose writes
// would be lost when the process exits.
func (o *RootOptions) requirePersistent(command string) error {
	if o.Config.StorageKind == common.StorageMemory {
		return fmt.Errorf("%w: %s needs a persistent store, not %q", common.ErrorValidation, command, common.StorageMemory)
	}
	return nil
}

// withStore opens the configured store, runs fn and closes the store.
func (o *RootOptions) withStore(ctx context.Context, fn func(repomanager.RepositoryManager) error) (err error) {
	repos, err := openStore(ctx, o.Config)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
	}()
	return fn(repos)
}
