package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndlayout/internal/layout"
)

// Layout is the layout type the CLI works with.
type Layout = layout.Layout[layout.Inline8]

// layoutFlags describes a layout on the command line.
type layoutFlags struct {
	shape       []int
	strides     []int
	offset      int
	contiguous  string
	elementSize int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.shape, "shape", nil, "extent of each axis, e.g. 2,3,4")
	cmd.Flags().IntSliceVar(&f.strides, "strides", nil, "step of each axis (default: contiguous)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "position of the first element")
	cmd.Flags().StringVar(&f.contiguous, "contiguous", "big", "stride order when --strides is absent (big|little)")
	cmd.Flags().IntVar(&f.elementSize, "element-size", 1, "element size for contiguous strides")
}

func (f *layoutFlags) build(cmd *cobra.Command) (*Layout, error) {
	explicit := cmd.Flags().Changed("strides")
	endian, err := parseEndian(f.contiguous)
	if err != nil && !explicit {
		return nil, err
	}

	var l *Layout
	err = layout.Try(func() {
		if explicit {
			l = layout.New[layout.Inline8](f.shape, f.strides, f.offset)
			return
		}
		l = layout.NewContiguous[layout.Inline8](f.shape, endian, f.elementSize)
		if f.offset != 0 {
			l = layout.New[layout.Inline8](l.Shape(), l.Strides(), f.offset)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}

func parseEndian(s string) (layout.Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be":
		return layout.BigEndian, nil
	case "little", "le":
		return layout.LittleEndian, nil
	default:
		return 0, fmt.Errorf("invalid endian %q (expected big|little)", s)
	}
}
