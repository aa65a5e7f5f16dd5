package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndlayout/internal/codec"
	"github.com/born-ml/ndlayout/internal/layout"
	"github.com/born-ml/ndlayout/internal/pipeline"
)

var encodeFlags layoutFlags

var encodeCmd = &cobra.Command{
	Use:   "encode --shape 2,3 [flags]",
	Short: "Encode a layout as hex MessagePack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		l, err := encodeFlags.build(cmd)
		if err != nil {
			return err
		}
		data, err := codec.Marshal(l)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode a hex MessagePack layout (read from stdin when no argument is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) == 1 {
			text = args[0]
		} else {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(raw)
		}
		data, err := hex.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("decode: invalid hex: %w", err)
		}
		l, err := codec.Unmarshal[layout.Inline8](data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		renderSummaryPretty(cmd.OutOrStdout(), l.String(), pipeline.Summarize(l))
		return nil
	},
}

func init() {
	encodeFlags.register(encodeCmd)
}
