package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/ndlayout/internal/printer"
)

var printFlags layoutFlags

var printCmd = &cobra.Command{
	Use:   "print --shape 2,3 [flags]",
	Short: "Print the layout as an array of buffer positions",
	Long: `Print lays the layout over a buffer whose elements hold their own
position and prints the resulting array. Each printed value is therefore
the memory position that element maps to.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printFlags.register(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	l, err := printFlags.build(cmd)
	if err != nil {
		return err
	}
	var data []int
	if l.NumElements() > 0 {
		data = make([]int, max(l.DataRange().End+1, 0))
		for i := range data {
			data[i] = i
		}
	}
	return printer.Write(cmd.OutOrStdout(), l, data)
}
