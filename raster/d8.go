package raster

// DecodeD8 decodes a D8 numpad-direction raster (row-major, shape
// height x width) into the (upstreamIdx, downstreamIdx, missingMask)
// contract network.Build expects. Direction codes 1..9 follow the numpad
// convention (5 is a sink, "stay in place"); 255 marks a missing cell.
// Grounded on original_source/hydro/readers.py:from_d8 -- the offset tables
// below are copied verbatim from its x_offsets/y_offsets arrays, indexed by
// direction code rather than by an intermediate mask_upstream selection,
// since Go has no boolean-fancy-indexing equivalent worth building for a
// one-shot decode.
//
// y is northward-positive, inverted relative to array row order: the
// numpad's (dx,dy) offset for direction code is negated on the y axis
// before it is applied to a row index, since row 0 is the top (north) of
// the raster and increasing row moves south (original_source's
// y_offsets = -np.array([...])[directions]).
func DecodeD8(data []byte, height, width int) (upstreamIdx, downstreamIdx []int32, missingMask []bool, err error) {
	if len(data) != height*width {
		return nil, nil, nil, ErrShapeMismatch
	}
	xOffsets := [10]int{0, -1, 0, +1, -1, 0, +1, -1, 0, +1}
	yOffsets := [10]int{0, +1, +1, +1, 0, 0, 0, -1, -1, -1}

	missingMask = make([]bool, len(data))
	for k, code := range data {
		missingMask[k] = code != 255
	}

	for k, code := range data {
		if code == 255 || code == 5 {
			continue // missing, or a sink: never an upstream source
		}
		if code < 1 || code > 9 {
			return nil, nil, nil, ErrBadEncoding
		}
		row := k / width
		col := k % width
		newCol := mod(col+xOffsets[code], width)
		newRow := row + yOffsets[code]

		// x wraps (global longitude grids); y is clamped -- a downstream
		// pointer landing outside the domain has nowhere valid to drain,
		// so the source is promoted to a sink (spec.md §4.1).
		if newRow < 0 || newRow >= height {
			continue
		}
		target := newRow*width + newCol

		// A direction that lands on a missing cell has nowhere valid to
		// drain: promote the source to a sink rather than propagate into
		// a cell network.Build would reject (edge-case policy).
		if !missingMask[target] {
			continue
		}
		upstreamIdx = append(upstreamIdx, int32(k))
		downstreamIdx = append(downstreamIdx, int32(target))
	}
	return upstreamIdx, downstreamIdx, missingMask, nil
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
