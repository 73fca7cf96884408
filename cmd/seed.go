package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print one seed",
	Long: `Print one seed from the entropy authority, or derived locally when no
authority is given or it cannot be reached, For example:
  trand seed
  trand seed --authority=http://127.0.0.1:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFetcher()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
		defer cancel()
		seed, origin := trand.Seed(ctx, f)

		logger.Debug().Str("origin", origin.String()).Msg("seed")
		_, err = fmt.Fprintln(cmd.OutOrStdout(), seed)
		return err
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
