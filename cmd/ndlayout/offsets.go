package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndlayout/internal/parallel"
)

var offsetsFlags layoutFlags

var offsetsCmd = &cobra.Command{
	Use:   "offsets --shape 2,3 [flags]",
	Short: "List the position of every element in linear order",
	Args:  cobra.NoArgs,
	RunE:  runOffsets,
}

func init() {
	offsetsFlags.register(offsetsCmd)
	offsetsCmd.Flags().String("order", "big", "linear index order (big|little)")
	offsetsCmd.Flags().Bool("sequential", false, "compute on a single goroutine")
}

func runOffsets(cmd *cobra.Command, _ []string) error {
	l, err := offsetsFlags.build(cmd)
	if err != nil {
		return err
	}
	order, _ := cmd.Flags().GetString("order")
	endian, err := parseEndian(order)
	if err != nil {
		return err
	}
	cfg := parallel.DefaultConfig()
	if seq, _ := cmd.Flags().GetBool("sequential"); seq {
		cfg = parallel.Sequential()
	}

	offsets, err := l.Offsets(cmd.Context(), endian, cfg)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	for i, off := range offsets {
		fmt.Fprintf(w, "%d\t%d\n", i, off)
	}
	return w.Flush()
}
