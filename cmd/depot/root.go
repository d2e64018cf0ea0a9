package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg Config, logger zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "depot",
		Short:        "Inspect and exercise a depot entity store",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		newScenarioCmd(),
		newQueryCmd(cfg, logger),
		newViewCmd(cfg),
		newProfileCmd(cfg),
	)
	return rootCmd
}
