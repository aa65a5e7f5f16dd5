// Package pipeline evaluates chains of layout transforms described in TOML.
//
// A pipeline document has a [layout] table with the source layout and a list
// of [[step]] tables applied in order:
//
//	[layout]
//	shape = [2, 3, 4]
//	contiguous = "big"
//	element_size = 4
//
//	[[step]]
//	op = "slice"
//	axis = 1
//	start = 2
//	step = -1
//
//	[[step]]
//	op = "merge"
//	start = 0
//	len = 2
//	on_fail = "keep"
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/born-ml/ndlayout/internal/layout"
)

// Layout is the layout type pipelines operate on.
type Layout = layout.Layout[layout.Inline8]

// ErrInvalid is returned for documents that are well-formed TOML but do not
// describe a valid pipeline.
var ErrInvalid = errors.New("invalid pipeline")

// Step operation names.
const (
	OpIndex     = "index"
	OpSlice     = "slice"
	OpBroadcast = "broadcast"
	OpTranspose = "transpose"
	OpSplit     = "split"
	OpMerge     = "merge"
	OpTile      = "tile"
)

var ops = []string{OpIndex, OpSlice, OpBroadcast, OpTranspose, OpSplit, OpMerge, OpTile}

// Source describes the initial layout.
type Source struct {
	Shape       []int  `toml:"shape"`
	Strides     []int  `toml:"strides"`
	Offset      int    `toml:"offset"`
	Contiguous  string `toml:"contiguous"`   // "big" or "little"; replaces strides
	ElementSize int    `toml:"element_size"` // Defaults to 1
}

// Step is one transform. Only the fields of its op are read.
type Step struct {
	Op     string `toml:"op"`
	Axis   int    `toml:"axis"`
	Index  int    `toml:"index"`
	Start  int    `toml:"start"`
	Step   *int   `toml:"step"` // Slice step, defaults to 1
	Len    *int   `toml:"len"`  // Slice length (defaults to the rest of the axis) or merge range length
	Times  int    `toml:"times"`
	Perm   []int  `toml:"perm"`
	Parts  []int  `toml:"parts"`
	Tiles  []int  `toml:"tiles"`
	Endian string `toml:"endian"`  // "big", "little" or, for merge only, "free"
	OnFail string `toml:"on_fail"` // Merge only: "error" or "keep"
}

// Pipeline is a parsed pipeline document.
type Pipeline struct {
	Name   string `toml:"name"`
	Layout Source `toml:"layout"`
	Steps  []Step `toml:"step"`
}

// Load reads and validates the pipeline document at path.
func Load(path string) (*Pipeline, error) {
	var p Pipeline
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := p.validate(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// Parse decodes and validates a pipeline document.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	meta, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := p.validate(meta); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Pipeline) validate(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if !meta.IsDefined("layout") {
		return fmt.Errorf("%w: missing [layout]", ErrInvalid)
	}
	if !meta.IsDefined("layout", "shape") {
		return fmt.Errorf("%w: missing [layout].shape", ErrInvalid)
	}

	src := &p.Layout
	switch src.Contiguous {
	case "":
		if len(src.Strides) != len(src.Shape) {
			return fmt.Errorf("%w: [layout] has %d dimensions and %d strides", ErrInvalid, len(src.Shape), len(src.Strides))
		}
	case "big", "little":
		if src.Strides != nil {
			return fmt.Errorf("%w: [layout].strides conflicts with contiguous", ErrInvalid)
		}
		if !meta.IsDefined("layout", "element_size") {
			src.ElementSize = 1
		}
	default:
		return fmt.Errorf("%w: [layout].contiguous must be \"big\" or \"little\", got %q", ErrInvalid, src.Contiguous)
	}
	for i, d := range src.Shape {
		if d < 0 {
			return fmt.Errorf("%w: [layout].shape[%d] is negative", ErrInvalid, i)
		}
	}

	for i := range p.Steps {
		if err := p.Steps[i].validate(); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalid, i+1, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	if !slices.Contains(ops, s.Op) {
		return fmt.Errorf("unknown op %q (want one of %s)", s.Op, strings.Join(ops, ", "))
	}
	switch s.Op {
	case OpSlice:
		if s.Step == nil {
			one := 1
			s.Step = &one
		}
		if s.Len == nil {
			all := math.MaxInt
			s.Len = &all
		}
	case OpMerge:
		if s.Len == nil {
			return fmt.Errorf("merge: missing len")
		}
		if s.Endian != "free" {
			if _, err := parseEndian(s.Endian); err != nil {
				return fmt.Errorf("merge: %w", err)
			}
		}
		switch s.OnFail {
		case "", "error", "keep":
		default:
			return fmt.Errorf("merge: on_fail must be \"error\" or \"keep\", got %q", s.OnFail)
		}
	case OpTile:
		if _, err := parseEndian(s.Endian); err != nil {
			return fmt.Errorf("tile: %w", err)
		}
	}
	return nil
}

// parseEndian maps "big" (the default) and "little" to an Endian.
func parseEndian(s string) (layout.Endian, error) {
	switch s {
	case "", "big":
		return layout.BigEndian, nil
	case "little":
		return layout.LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown endian %q", s)
	}
}
