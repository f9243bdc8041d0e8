package cli

import (
	"os"

	"github.com/spf13/cobra"

	"refinance-agent/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "refinance-agent",
		Short:        "Refinance offer recommendations for external loans",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			config.LoadDotEnv()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), config.Load())
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSuggestCmd())
	return cmd
}
