package recipectl

import (
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withStore(cmd.Context(), func(repos repomanager.RepositoryManager) error {
				if err := repos.RunMigrations(cmd.Context()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", repos.Kind())
				return nil
			})
		},
	}
}
