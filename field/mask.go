package field

import "fmt"

// FromMasked extracts the 1-D node view of a 2-D (optionally batched) field:
// data's trailing two axes must match maskShape exactly. The result's Data
// is ordered by ascending node id (row-major masked order), matching the
// network's node numbering by construction (network.Build renumbers in
// exactly that order).
//
// If data is already a 1-D (optionally batched) node view -- trailing axis
// length equals n -- it is returned unchanged; this lets every public
// operator accept either representation transparently (spec.md §4.7).
func FromMasked[T any](data []T, shape []int, mask []bool, maskShape [2]int, n int) (Array[T], error) {
	isDomainView := len(shape) >= 2 && shape[len(shape)-2] == maskShape[0] && shape[len(shape)-1] == maskShape[1]
	if !isDomainView {
		if len(shape) >= 1 && shape[len(shape)-1] == n {
			return Array[T]{Data: data, Shape: shape}, nil
		}
		return Array[T]{}, fmt.Errorf("%w: trailing shape %v matches neither node count %d nor domain shape %v", ErrShapeMismatch, trailing2(shape), n, maskShape)
	}

	domainSize := maskShape[0] * maskShape[1]
	batchShape := shape[:len(shape)-2]
	batchSize := product(batchShape)

	out := make([]T, batchSize*n)
	for b := 0; b < batchSize; b++ {
		src := data[b*domainSize : (b+1)*domainSize]
		dst := out[b*n : (b+1)*n]
		j := 0
		for k, keep := range mask {
			if keep {
				dst[j] = src[k]
				j++
			}
		}
	}

	outShape := make([]int, 0, len(batchShape)+1)
	outShape = append(outShape, batchShape...)
	outShape = append(outShape, n)
	return Array[T]{Data: out, Shape: outShape}, nil
}

// ToMasked re-inflates a 1-D node-view array back into the 2-D (optionally
// batched) domain shape, filling every non-masked position with mv.
func ToMasked[T any](nodeView Array[T], mask []bool, maskShape [2]int, mv T) []T {
	domainSize := maskShape[0] * maskShape[1]
	batchSize := nodeView.BatchSize()
	n := nodeView.N()

	out := make([]T, batchSize*domainSize)
	for b := 0; b < batchSize; b++ {
		src := nodeView.Row(b)
		dst := out[b*domainSize : (b+1)*domainSize]
		j := 0
		for k, keep := range mask {
			if keep {
				dst[k] = src[j]
				j++
			} else {
				dst[k] = mv
			}
		}
	}
	_ = n
	return out
}

func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

func trailing2(shape []int) []int {
	if len(shape) < 2 {
		return shape
	}
	return shape[len(shape)-2:]
}
