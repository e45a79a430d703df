// Package hydro is the public operator facade of the river-network field
// engine: each exported function adapts a caller-supplied domain or
// node-view array via package field, drives the grouped-sweep engine in
// package sweep, and delegates the per-element arithmetic to package kernel.
// None of the supporting packages (network, toposort, group, sweep, kernel,
// field, raster, netio) import this one -- hydro composes them, and only the
// cmd/hydrograph demo CLI imports hydro.
package hydro

import (
	"math"

	"github.com/hydrograph/hydrograph/field"
	"github.com/hydrograph/hydrograph/kernel"
	"github.com/hydrograph/hydrograph/network"
	"github.com/hydrograph/hydrograph/sweep"
)

// adapt extracts the 1-D node view of data (domain or already-node-view),
// matching every operator's shared entry step (spec.md §4.7).
func adapt[T any](net *network.Network, data []T, shape []int) (field.Array[T], error) {
	return field.FromMasked(data, shape, net.Mask, net.MaskShape, net.N)
}

// reinflate re-inflates a node-view result back to data's original
// representation: unchanged if the caller passed a node view in, or
// expanded back to the 2-D domain (filling masked-out cells with mv) if the
// caller passed a domain array in.
func reinflate[T any](net *network.Network, nodeView field.Array[T], originalShape []int, mv T) []T {
	if net.Mask == nil || len(originalShape) < 2 ||
		originalShape[len(originalShape)-2] != net.MaskShape[0] ||
		originalShape[len(originalShape)-1] != net.MaskShape[1] {
		return nodeView.Data
	}
	return field.ToMasked(nodeView, net.Mask, net.MaskShape, mv)
}

// FlowDownstream implements flow_downstream: accumulates field[i] into
// field[downstream[i]] along every flow path, op one of sum/product/max/min.
func FlowDownstream[T field.Numeric](net *network.Network, data []T, shape []int, op kernel.Op, mv T, acceptMissing bool, opts ...sweep.Option) ([]T, error) {
	in, err := adapt(net, data, shape)
	if err != nil {
		return nil, err
	}
	out, err := kernel.Accumulate(net, in, op, mv, acceptMissing, opts...)
	if err != nil {
		return nil, err
	}
	return reinflate(net, out, shape, mv), nil
}

// MoveDownstream implements move_downstream: out[d] := op(out[d], field[i])
// for every node i with a successor; multiple sources sharing a target are
// combined with op.
func MoveDownstream[T field.Numeric](net *network.Network, data []T, shape []int, op kernel.Op, mv T, opts ...sweep.Option) ([]T, error) {
	in, err := adapt(net, data, shape)
	if err != nil {
		return nil, err
	}
	out := kernel.MoveDownstream(net, in, op, opts...)
	return reinflate(net, out, shape, mv), nil
}

// MoveUpstream implements move_upstream: out[i] := field[downstream[i]].
func MoveUpstream[T field.Numeric](net *network.Network, data []T, shape []int, mv T) ([]T, error) {
	in, err := adapt(net, data, shape)
	if err != nil {
		return nil, err
	}
	out := kernel.MoveUpstream(net, in)
	return reinflate(net, out, shape, mv), nil
}

// FindCatchments implements find_catchments: labels every node by the
// (already-labelled) sink it drains into, overwriting any pre-set interior
// label.
func FindCatchments[T field.Numeric](net *network.Network, labels []T, shape []int, mv T, opts ...sweep.Option) ([]T, error) {
	in, err := adapt(net, labels, shape)
	if err != nil {
		return nil, err
	}
	out := kernel.CatchmentFill(net, in, mv, true, opts...)
	return reinflate(net, out, shape, mv), nil
}

// FindSubcatchments implements find_subcatchments: labels every node still
// at mv by the nearest labelled point downstream, preserving any node the
// caller pre-labelled (e.g. a gauge station).
func FindSubcatchments[T field.Numeric](net *network.Network, labels []T, shape []int, mv T, opts ...sweep.Option) ([]T, error) {
	in, err := adapt(net, labels, shape)
	if err != nil {
		return nil, err
	}
	out := kernel.CatchmentFill(net, in, mv, false, opts...)
	return reinflate(net, out, shape, mv), nil
}

// ComputeDistance implements compute_distance (length.min/length.max):
// shortest (or longest, per cfg.Op) flow-path distance from any node in
// starts to every other node, per-node weights defaulting to 1.
func ComputeDistance(net *network.Network, starts []int32, cfg kernel.LengthConfig, mv float64, opts ...sweep.Option) ([]float64, error) {
	out, err := kernel.Length(net, starts, cfg, mv, opts...)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ComputeStreamorder implements compute_streamorder: the Strahler stream
// order of every node.
func ComputeStreamorder(net *network.Network) []int32 {
	return kernel.Streamorder(net)
}

// CalculateMetricForLabels implements calculate_metric_for_labels: buckets
// values by labels and reduces each bucket with op, mv must be NaN.
func CalculateMetricForLabels(values []float64, labels []int64, weights []float64, op kernel.Op, mv float64) (map[int64]float64, error) {
	return kernel.ZonalReduce(values, labels, weights, op, mv)
}

// CalculateUpstreamMetric implements calculate_upstream_metric: a metric
// (sum/product/max/min/mean/var/stdev) over the full upstream drainage area
// of every node, optionally weighted. mean/var/stdev are not directly
// stream-foldable, so they are computed from two or three weighted-sum
// accumulation passes exactly as original_source/upstream.py does: a
// weighted-sum pass and a weight-sum pass for mean, plus a weighted
// sum-of-squares pass for var/stdev (variance = E[x^2] - E[x]^2).
func CalculateUpstreamMetric(net *network.Network, values []float64, shape []int, weights []float64, op kernel.Op, mv float64, acceptMissing bool, opts ...sweep.Option) ([]float64, error) {
	in, err := adapt(net, values, shape)
	if err != nil {
		return nil, err
	}

	switch op {
	case kernel.OpSum, kernel.OpProduct, kernel.OpMax, kernel.OpMin:
		weighted := in.Clone()
		if weights != nil {
			w, err := adapt(net, weights, shape)
			if err != nil {
				return nil, err
			}
			for i := range weighted.Data {
				weighted.Data[i] *= w.Data[i]
			}
		}
		out, err := kernel.Accumulate(net, weighted, op, mv, acceptMissing, opts...)
		if err != nil {
			return nil, err
		}
		return reinflate(net, out, shape, mv), nil

	case kernel.OpMean, kernel.OpVar, kernel.OpStdev:
		n := in.N()
		w := make([]float64, n)
		for i := range w {
			w[i] = 1
		}
		if weights != nil {
			wArr, err := adapt(net, weights, shape)
			if err != nil {
				return nil, err
			}
			copy(w, wArr.Data)
		}
		weightsField := field.NewArray1D(w)

		weighted := in.Clone()
		for i := range weighted.Data {
			weighted.Data[i] *= w[i]
		}

		sumPart, err := kernel.Accumulate(net, weighted, kernel.OpSum, mv, acceptMissing, opts...)
		if err != nil {
			return nil, err
		}
		countPart, err := kernel.Accumulate(net, weightsField, kernel.OpSum, mv, true, opts...)
		if err != nil {
			return nil, err
		}

		mean := make([]float64, n)
		for i := range mean {
			mean[i] = sumPart.Data[i] / countPart.Data[i]
		}

		if op == kernel.OpMean {
			return reinflate(net, field.NewArray1D(mean), shape, mv), nil
		}

		sq := make([]float64, n)
		for i := range sq {
			sq[i] = w[i] * in.Data[i] * in.Data[i]
		}
		sqField := field.NewArray1D(sq)
		sumSq, err := kernel.Accumulate(net, sqField, kernel.OpSum, mv, acceptMissing, opts...)
		if err != nil {
			return nil, err
		}
		result := make([]float64, n)
		for i := range result {
			v := sumSq.Data[i]/countPart.Data[i] - mean[i]*mean[i]
			if op == kernel.OpStdev {
				v = math.Sqrt(v)
			}
			result[i] = v
		}
		return reinflate(net, field.NewArray1D(result), shape, mv), nil

	default:
		return nil, kernel.ErrUnknownOp
	}
}

// CalculateCatchmentMetric implements calculate_catchment_metric
// (supplemental, original_source/catchment_metric.py): labels every node by
// its containing catchment rooted at stationPoints, then reduces values
// within each label via CalculateMetricForLabels.
func CalculateCatchmentMetric(net *network.Network, values []float64, shape []int, stationPoints []int64, weights []float64, op kernel.Op, mv float64, opts ...sweep.Option) (map[int64]float64, error) {
	return calculateZoneMetric(net, values, shape, stationPoints, weights, op, mv, true, opts...)
}

// CalculateSubcatchmentMetric is CalculateCatchmentMetric's
// non-overwriting counterpart, labelling via find_subcatchments instead of
// find_catchments -- i.e. a station point keeps its own label and claims
// the nodes that reach it first, rather than every station and its upstream
// nodes being relabelled to the furthest labelled station downstream.
func CalculateSubcatchmentMetric(net *network.Network, values []float64, shape []int, stationPoints []int64, weights []float64, op kernel.Op, mv float64, opts ...sweep.Option) (map[int64]float64, error) {
	return calculateZoneMetric(net, values, shape, stationPoints, weights, op, mv, false, opts...)
}

func calculateZoneMetric(net *network.Network, values []float64, shape []int, stationPoints []int64, weights []float64, op kernel.Op, mv float64, overwrite bool, opts ...sweep.Option) (map[int64]float64, error) {
	const unlabelled int64 = -1 // sentinel for CatchmentFill's label array, distinct from any valid node id
	labels := make([]int64, net.N)
	for i := range labels {
		labels[i] = unlabelled
	}
	for _, s := range stationPoints {
		labels[s] = s
	}
	labelIn := field.NewArray1D(labels)
	labelOut := kernel.CatchmentFill(net, labelIn, unlabelled, overwrite, opts...)

	in, err := adapt(net, values, shape)
	if err != nil {
		return nil, err
	}
	return kernel.ZonalReduce(in.Data, labelOut.Data, weights, op, math.NaN())
}
