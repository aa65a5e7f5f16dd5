package layout

import (
	"errors"
	"fmt"
)

// Contract violations. They are raised as panics wrapped in *ContractError
// and signal programmer error.
var (
	ErrRankMismatch     = errors.New("shape and strides must have the same length")
	ErrNegativeDim      = errors.New("dimension must not be negative")
	ErrAxisOutOfRange   = errors.New("axis out of range")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrAxisOrder        = errors.New("axis arguments must be in ascending order")
	ErrDuplicateAxis    = errors.New("permutation axes must be unique")
	ErrNotBroadcastable = errors.New("axis must have dimension 1 or stride 0")
	ErrTileMismatch     = errors.New("tile product does not match dimension")
	ErrSplitMismatch    = errors.New("split parts do not sum to dimension")
	ErrMergeRange       = errors.New("merge range out of bounds or overlapping")
	ErrUnknownEndian    = errors.New("unknown endian")
)

// ErrNotContiguous reports a merge whose axes cannot be fused.
// Merge itself returns ok=false; callers that need an error use this one.
var ErrNotContiguous = errors.New("axes are not contiguous")

// ContractError describes a violated precondition of a layout operation.
type ContractError struct {
	Op     string // Operation name (e.g. "index", "tile")
	Err    error  // One of the Err* sentinels
	Detail string // Offending arguments
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("layout: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("layout: %s: %v: %s", e.Op, e.Err, e.Detail)
}

// Unwrap returns the sentinel error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

func violate(op string, err error, format string, args ...any) {
	panic(&ContractError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)})
}

// Try runs fn and converts a contract violation raised inside it into an error.
// Other panics are propagated unchanged.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	fn()
	return nil
}

func checkEndian(op string, e Endian) {
	if e != BigEndian && e != LittleEndian {
		violate(op, ErrUnknownEndian, "endian=%d", int(e))
	}
}

func checkAxis(op string, ndim, axis int) {
	if axis < 0 || axis >= ndim {
		violate(op, ErrAxisOutOfRange, "axis %d, ndim %d", axis, ndim)
	}
}

// checkAscending validates axis as the k-th of a strictly ascending list.
func checkAscending(op string, k, prev, axis int) {
	if k > 0 && axis <= prev {
		violate(op, ErrAxisOrder, "axis %d follows axis %d", axis, prev)
	}
}
