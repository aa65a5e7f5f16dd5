package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndlayout/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] pipeline.toml...",
	Short: "Evaluate pipeline files",
	Long: `Run applies the transform steps of each TOML pipeline file to its
source layout and prints the resulting layouts. Files are evaluated
concurrently; output follows the order of the arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	runCmd.Flags().IntP("jobs", "j", 0, "files evaluated at once (0 = number of CPUs)")
}

func runRun(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	results, err := pipeline.RunFiles(cmd.Context(), args, pipeline.Options{
		Logger:      logger,
		Concurrency: jobs,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		var payload []summaryPayload
		for _, r := range results {
			for _, s := range r.Layouts {
				payload = append(payload, newSummaryPayload(r.Source, s))
			}
		}
		return renderJSON(out, payload)
	}
	for _, r := range results {
		for i, s := range r.Layouts {
			renderSummaryPretty(out, fmt.Sprintf("%s [%d]", r.Source, i), s)
		}
	}
	return nil
}
