package layout

// Endian is the order in which dimensions are stored in a layout.
type Endian int

// Supported dimension orders.
const (
	// BigEndian places larger-range (outer, slower-varying) dimensions first.
	BigEndian Endian = iota
	// LittleEndian places smaller-range (inner, faster-varying) dimensions first.
	LittleEndian
)

// String returns a human-readable endian name.
func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "Unknown"
	}
}

// fillContiguous writes packed strides for shape into strides.
// The running product starts at elementSize; BigEndian walks the axes
// from the last one so the last axis gets the smallest stride.
func fillContiguous(strides, shape []int, endian Endian, elementSize int) {
	mul := elementSize
	push := func(i int) {
		strides[i] = mul
		mul *= shape[i]
	}
	switch endian {
	case BigEndian:
		for i := len(shape) - 1; i >= 0; i-- {
			push(i)
		}
	case LittleEndian:
		for i := range shape {
			push(i)
		}
	}
}

// product returns the product of xs. An empty slice (scalar shape) yields 1.
func product(xs []int) int {
	p := 1
	for _, x := range xs {
		p *= x
	}
	return p
}
