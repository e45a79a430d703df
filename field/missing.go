package field

import "math"

// IsMissing implements the mv-matching rule shared by every kernel
// (spec.md §3): NaN mv matches by NaN predicate, ±Inf mv matches by
// same-signed infinity, otherwise by equality.
func IsMissing[T Numeric](x, mv T) bool {
	fx, fmv := float64(x), float64(mv)
	if math.IsNaN(fmv) {
		return math.IsNaN(fx)
	}
	if math.IsInf(fmv, 0) {
		sign := 1
		if fmv < 0 {
			sign = -1
		}
		return math.IsInf(fx, sign)
	}
	return x == mv
}

// AnyMissing reports whether any element of data matches mv.
func AnyMissing[T Numeric](data []T, mv T) bool {
	for _, x := range data {
		if IsMissing(x, mv) {
			return true
		}
	}
	return false
}

// CheckMissing implements spec.md §7's UnexpectedMissing policy: if mv-valued
// entries are present and acceptMissing is false, returns ErrUnexpectedMissing.
// Otherwise it reports whether missing values are present (so callers can
// skip the missing-aware slow path entirely when they are not).
func CheckMissing[T Numeric](data []T, mv T, acceptMissing bool) (present bool, err error) {
	present = AnyMissing(data, mv)
	if present && !acceptMissing {
		return true, ErrUnexpectedMissing
	}
	return present, nil
}

// ToNaN returns a copy of data with every mv-matching entry replaced by NaN,
// the simplification adopted across the kernel library (spec.md §4.6): run
// the arithmetic kernel branch-free on NaN, then convert back with FromNaN.
// A no-op (same slice) when mv is already NaN.
func ToNaN(data []float64, mv float64) []float64 {
	if math.IsNaN(mv) {
		return data
	}
	out := make([]float64, len(data))
	for i, x := range data {
		if IsMissing(x, mv) {
			out[i] = math.NaN()
		} else {
			out[i] = x
		}
	}
	return out
}

// FromNaN returns a copy of data with every NaN entry replaced by mv. A
// no-op (same slice) when mv is already NaN.
func FromNaN(data []float64, mv float64) []float64 {
	if math.IsNaN(mv) {
		return data
	}
	out := make([]float64, len(data))
	for i, x := range data {
		if math.IsNaN(x) {
			out[i] = mv
		} else {
			out[i] = x
		}
	}
	return out
}
