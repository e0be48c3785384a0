package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackwatch/internal/config"
	"github.com/blackwell-systems/trackwatch/internal/inventory"
	"github.com/blackwell-systems/trackwatch/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <product-id>",
	Short: "Analyze the condition of a single track fitting",
	Long: `Analyze fetches the maintenance record for the given product ID from
the inventory service, scores its condition, and prints a report with risk
factors and maintenance recommendations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// newGenerator builds a report generator from the loaded configuration,
// applying the --api-url override.
func newGenerator(cfg *config.Config) *report.Generator {
	baseURL := cfg.APIBaseURL
	if flagAPIURL != "" {
		baseURL = flagAPIURL
	}
	client := inventory.NewClient(baseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	return report.NewWith(client, cfg.Scoring)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	gen := newGenerator(cfg)

	rep, err := gen.Generate(cmd.Context(), args[0])
	if err != nil {
		// Fetch, parse, and validation failures are reported results,
		// not crashes.
		renderAnalysisError(err, flagJSON)
		return nil
	}

	if flagJSON {
		return renderReportJSON(rep)
	}
	renderReport(rep)
	return nil
}
