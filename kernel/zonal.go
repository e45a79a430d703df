package kernel

import (
	"math"

	"github.com/hydrograph/hydrograph/field"
)

// ZonalReduce implements calculate_metric_for_labels (spec.md §4.6): a
// single pass bucketing field[i] (optionally weighted by weights[i]) by
// labels[i] and reducing each bucket with op. Grounded on
// original_source/.../label.py:calculate_metric_for_labels, including its
// restriction to NaN mv -- a non-NaN sentinel is ErrUnsupportedMissingValue,
// since the upstream draft never implemented the general case either
// (spec.md §4.7).
func ZonalReduce(values []float64, labels []int64, weights []float64, op Op, mv float64) (map[int64]float64, error) {
	if len(labels) != len(values) {
		return nil, field.ErrShapeMismatch
	}
	if weights != nil && len(weights) != len(values) {
		return nil, field.ErrShapeMismatch
	}
	if !math.IsNaN(mv) {
		return nil, field.ErrUnsupportedMissingValue
	}
	switch op {
	case OpSum, OpProduct, OpMax, OpMin, OpMean, OpVar, OpStdev:
	default:
		return nil, namedErr(field.ErrUnknownMetric, opName(op))
	}

	sums := make(map[int64]float64)
	sqSums := make(map[int64]float64)
	weightSums := make(map[int64]float64)

	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		l := labels[i]
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if _, ok := sums[l]; !ok {
			sums[l] = Identity(op)
		}
		switch op {
		case OpMean:
			sums[l] += v * w
			weightSums[l] += w
		case OpVar, OpStdev:
			sums[l] += v * w
			sqSums[l] += v * v * w
			weightSums[l] += w
		default:
			sums[l] = Apply(op, sums[l], v*w)
		}
	}

	out := make(map[int64]float64, len(sums))
	for l, s := range sums {
		switch op {
		case OpMean:
			out[l] = s / weightSums[l]
		case OpVar:
			mean := s / weightSums[l]
			out[l] = sqSums[l]/weightSums[l] - mean*mean
		case OpStdev:
			mean := s / weightSums[l]
			out[l] = math.Sqrt(sqSums[l]/weightSums[l] - mean*mean)
		default:
			out[l] = s
		}
	}
	return out, nil
}
