package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/ndlayout/internal/layout"
)

// Options configures pipeline evaluation.
type Options struct {
	Logger      *zap.Logger // Defaults to a no-op logger
	Concurrency int         // Files evaluated at once by RunFiles; <= 0 means GOMAXPROCS
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Summary describes one resulting layout.
type Summary struct {
	Shape       []int
	Strides     []int
	Offset      int
	NumElements int
	DataRange   layout.Range
	Inline      bool
}

// Summarize captures the observable properties of l.
func Summarize(l *Layout) Summary {
	return Summary{
		Shape:       slices.Clone(l.Shape()),
		Strides:     slices.Clone(l.Strides()),
		Offset:      l.Offset(),
		NumElements: l.NumElements(),
		DataRange:   l.DataRange(),
		Inline:      l.IsInline(),
	}
}

// Result is the outcome of one pipeline file.
type Result struct {
	Source  string
	Layouts []Summary
}

// NewSource builds the initial layout of p.
func (p *Pipeline) NewSource() (*Layout, error) {
	var l *Layout
	err := layout.Try(func() {
		src := p.Layout
		switch src.Contiguous {
		case "":
			l = layout.New[layout.Inline8](src.Shape, src.Strides, src.Offset)
		default:
			endian, _ := parseEndian(src.Contiguous)
			l = layout.NewContiguous[layout.Inline8](src.Shape, endian, src.ElementSize)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return l, nil
}

// Run applies the steps of p to its source layout. A split step replaces
// each current layout by its parts, so later steps see all of them.
func Run(p *Pipeline, opts Options) ([]*Layout, error) {
	log := opts.logger()
	l, err := p.NewSource()
	if err != nil {
		return nil, err
	}

	current := []*Layout{l}
	for i, s := range p.Steps {
		next := make([]*Layout, 0, len(current))
		for _, l := range current {
			out, err := apply(l, s, log)
			if err != nil {
				return nil, fmt.Errorf("step %d (%s): %w", i+1, s.Op, err)
			}
			next = append(next, out...)
		}
		current = next
		log.Debug("step applied",
			zap.Int("step", i+1),
			zap.String("op", s.Op),
			zap.Int("layouts", len(current)))
	}
	return current, nil
}

// apply runs one step on l, turning contract violations into errors.
func apply(l *Layout, s Step, log *zap.Logger) ([]*Layout, error) {
	var (
		out     []*Layout
		stepErr error
	)
	if err := layout.Try(func() { out, stepErr = applyStep(l, s, log) }); err != nil {
		return nil, err
	}
	return out, stepErr
}

func applyStep(l *Layout, s Step, log *zap.Logger) ([]*Layout, error) {
	switch s.Op {
	case OpIndex:
		return []*Layout{l.Index(s.Axis, s.Index)}, nil
	case OpSlice:
		return []*Layout{l.Slice(s.Axis, s.Start, *s.Step, *s.Len)}, nil
	case OpBroadcast:
		return []*Layout{l.Broadcast(s.Axis, s.Times)}, nil
	case OpTranspose:
		return []*Layout{l.Transpose(s.Perm...)}, nil
	case OpSplit:
		return slices.Collect(l.Split(s.Axis, s.Parts...).All()), nil
	case OpMerge:
		arg := layout.MergeArg{Start: s.Start, Len: *s.Len}
		if s.Endian == "free" {
			arg.Free = true
		} else {
			arg.Endian, _ = parseEndian(s.Endian)
		}
		merged, ok := l.MergeMany(arg)
		if ok {
			return []*Layout{merged}, nil
		}
		if s.OnFail != "keep" {
			return nil, fmt.Errorf("axes [%d, %d) of %v: %w", s.Start, s.Start+*s.Len, l, layout.ErrNotContiguous)
		}
		log.Debug("merge skipped", zap.Stringer("layout", l), zap.Int("start", s.Start), zap.Int("len", *s.Len))
		return []*Layout{l}, nil
	case OpTile:
		endian, _ := parseEndian(s.Endian)
		return []*Layout{l.TileMany(layout.TileArg{Axis: s.Axis, Endian: endian, Tiles: s.Tiles})}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", s.Op)
	}
}

// RunFiles loads and runs the pipelines at paths concurrently. Results are in
// the order of paths; the first failure cancels files not yet started.
func RunFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	log := opts.logger()
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := Load(path)
			if err != nil {
				return err
			}
			layouts, err := Run(p, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			res := Result{Source: path, Layouts: make([]Summary, len(layouts))}
			for j, l := range layouts {
				res.Layouts[j] = Summarize(l)
			}
			results[i] = res
			log.Info("pipeline evaluated", zap.String("path", path), zap.Int("layouts", len(layouts)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
