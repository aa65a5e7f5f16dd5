package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/ndlayout/internal/pipeline"
)

var inspectFlags layoutFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect --shape 2,3,4 [--strides 12,4,1] [--offset 0]",
	Short: "Describe a layout",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	inspectFlags.register(inspectCmd)
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	l, err := inspectFlags.build(cmd)
	if err != nil {
		return err
	}

	s := pipeline.Summarize(l)
	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), newSummaryPayload("", s))
	}
	renderSummaryPretty(cmd.OutOrStdout(), l.String(), s)
	return nil
}
