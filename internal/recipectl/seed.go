package recipectl

import (
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeshare/internal/server/seed"
	"github.com/spf13/cobra"
)

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rootOpts.requirePersistent("seed"); err != nil {
				return err
			}
			return rootOpts.withStore(cmd.Context(), func(repos repomanager.RepositoryManager) error {
				res, err := seed.Run(cmd.Context(), repos, rootOpts.logger(cmd))
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				out := cmd.OutOrStdout()
				if res.Skipped {
					fmt.Fprintln(out, "store already holds data, nothing to do")
					return nil
				}
				fmt.Fprintf(out, "seeded %d ingredients, %d recipes, %d posts (author id=%d)\n",
					res.Ingredients, res.Recipes, res.BoardPosts, res.AuthorID)
				return nil
			})
		},
	}
}
