// Package codec encodes layouts as MessagePack documents.
package codec

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/born-ml/ndlayout/internal/layout"
)

// Current schema version - increment when wireLayout changes.
const schemaVersion uint16 = 1

// Decoding errors.
var (
	ErrMalformed          = errors.New("malformed layout document")
	ErrUnsupportedVersion = errors.New("unsupported layout schema version")
)

type wireLayout struct {
	Version uint16   `msgpack:"v"`
	Offset  int64    `msgpack:"offset"`
	Shape   []uint64 `msgpack:"shape"`
	Strides []int64  `msgpack:"strides"`
}

// Marshal encodes l.
func Marshal[S layout.Inline](l *layout.Layout[S]) ([]byte, error) {
	w := wireLayout{
		Version: schemaVersion,
		Offset:  int64(l.Offset()),
		Shape:   make([]uint64, l.NDim()),
		Strides: make([]int64, l.NDim()),
	}
	for i, d := range l.Shape() {
		v, err := safecast.Conv[uint64](d)
		if err != nil {
			return nil, fmt.Errorf("shape[%d]: %w", i, err)
		}
		w.Shape[i] = v
	}
	for i, s := range l.Strides() {
		w.Strides[i] = int64(s)
	}
	return msgpack.Marshal(&w)
}

// Unmarshal decodes a layout produced by Marshal. The inline capacity S of
// the result does not need to match the one it was encoded from.
func Unmarshal[S layout.Inline](data []byte) (*layout.Layout[S], error) {
	var w wireLayout
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if w.Version != schemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, w.Version)
	}
	if len(w.Shape) != len(w.Strides) {
		return nil, fmt.Errorf("%w: %d dimensions, %d strides", ErrMalformed, len(w.Shape), len(w.Strides))
	}

	offset, err := safecast.Conv[int](w.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: offset: %w", ErrMalformed, err)
	}
	shape := make([]int, len(w.Shape))
	strides := make([]int, len(w.Strides))
	for i := range w.Shape {
		if shape[i], err = safecast.Conv[int](w.Shape[i]); err != nil {
			return nil, fmt.Errorf("%w: shape[%d]: %w", ErrMalformed, i, err)
		}
		if strides[i], err = safecast.Conv[int](w.Strides[i]); err != nil {
			return nil, fmt.Errorf("%w: strides[%d]: %w", ErrMalformed, i, err)
		}
	}
	return layout.New[S](shape, strides, offset), nil
}
