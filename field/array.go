package field

// Numeric constrains the element types the arithmetic kernels operate on.
// Go has no runtime-polymorphic numeric array the way the corpus's NumPy
// arrays are dtype-oblivious; this package monomorphizes over the two
// element types the operator surface actually promises (spec.md §3) via
// generics instead of an interface{} + type-switch hot loop, matching the
// teacher's "avoid function-pointer indirection in the inner loop" design
// note (spec.md §9).
type Numeric interface {
	~int64 | ~float64
}

// Array is a dense, flat-backed field. Shape describes every axis in
// row-major order; the last axis is always the node axis (length N once the
// array is in 1-D node view). Leading axes are opaque "batch" dimensions the
// engine broadcasts over without interpretation.
type Array[T any] struct {
	Data  []T
	Shape []int
}

// NewArray1D wraps data as a single-batch, 1-D node-view array.
func NewArray1D[T any](data []T) Array[T] {
	return Array[T]{Data: data, Shape: []int{len(data)}}
}

// N returns the length of the trailing (node) axis.
func (a Array[T]) N() int {
	if len(a.Shape) == 0 {
		return 0
	}
	return a.Shape[len(a.Shape)-1]
}

// BatchSize returns the product of every axis but the last.
func (a Array[T]) BatchSize() int {
	size := 1
	for _, d := range a.Shape[:len(a.Shape)-1] {
		size *= d
	}
	return size
}

// Clone returns a deep copy; the sweep engine uses this when inPlace=false.
func (a Array[T]) Clone() Array[T] {
	out := make([]T, len(a.Data))
	copy(out, a.Data)
	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	return Array[T]{Data: out, Shape: shape}
}

// Zeros allocates a fresh array with the same shape as a, zero-valued.
func (a Array[T]) Zeros() Array[T] {
	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	return Array[T]{Data: make([]T, len(a.Data)), Shape: shape}
}

// Fill sets every element to v.
func (a Array[T]) Fill(v T) {
	for i := range a.Data {
		a.Data[i] = v
	}
}

// Row returns the slice of Data for batch index b (0-based, < BatchSize()),
// a contiguous run of N() elements.
func (a Array[T]) Row(b int) []T {
	n := a.N()
	return a.Data[b*n : (b+1)*n]
}
