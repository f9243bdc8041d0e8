package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"refinance-agent/logger"
	"refinance-agent/metrics"
	"refinance-agent/repository"
	"refinance-agent/service"
)

// newSuggestCmd evaluates a fixture dataset offline and prints the result.
func newSuggestCmd() *cobra.Command {
	var fixturesPath string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print refinance suggestions for a fixture dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.Init(logger.Config{Level: "warn", Format: "text"}, os.Stderr)

			source, err := repository.LoadFixtureSource(fixturesPath)
			if err != nil {
				return err
			}

			result, err := service.NewSuggestionService(source, metrics.New()).Suggest(cmd.Context(), "")
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "YAML dataset with loans and products (default: built-in demo data)")
	return cmd
}
