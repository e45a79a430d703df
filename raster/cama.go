package raster

// DecodeCaMaDownXY decodes a CaMa-Flood "downxy" pair of relative-offset
// rasters (row-major, shape height x width) into the network.Build
// contract. Grounded on original_source/hydro/readers.py:from_cama, with one
// deliberate change from the Python original: x wraps modulo width (global
// longitude grids), but y is clamped rather than wrapped -- an
// out-of-range row has no physical meaning for a latitude band, so the
// source cell is promoted to a sink instead, following the same
// missing-target policy as DecodeD8.
func DecodeCaMaDownXY(dx, dy []int32, height, width int) (upstreamIdx, downstreamIdx []int32, missingMask []bool, err error) {
	if len(dx) != len(dy) {
		return nil, nil, nil, ErrShapeMismatch
	}
	if len(dx) != height*width {
		return nil, nil, nil, ErrShapeMismatch
	}

	missingMask = make([]bool, len(dx))
	for k := range dx {
		missingMask[k] = dx[k] != -9999
	}

	for k := range dx {
		x := dx[k]
		y := dy[k]
		if x == -9999 {
			continue // missing
		}
		if x == -999 || x == -1000 {
			continue // sink: never an upstream source
		}
		row := k / width
		col := k % width
		newCol := mod(col+int(x), width)
		newRow := row + int(y)
		if newRow < 0 || newRow >= height {
			continue // out of latitude range: treat source as a sink
		}
		target := newRow*width + newCol
		if !missingMask[target] {
			continue
		}
		upstreamIdx = append(upstreamIdx, int32(k))
		downstreamIdx = append(downstreamIdx, int32(target))
	}
	return upstreamIdx, downstreamIdx, missingMask, nil
}

// DecodeCaMaNextXY decodes a CaMa-Flood "nextxy" pair of absolute, 1-based
// target-coordinate rasters into the network.Build contract. -9999 marks a
// missing cell; -9 or -10 marks a sink.
func DecodeCaMaNextXY(nextX, nextY []int32, height, width int) (upstreamIdx, downstreamIdx []int32, missingMask []bool, err error) {
	if len(nextX) != len(nextY) {
		return nil, nil, nil, ErrShapeMismatch
	}
	if len(nextX) != height*width {
		return nil, nil, nil, ErrShapeMismatch
	}

	missingMask = make([]bool, len(nextX))
	for k := range nextX {
		missingMask[k] = nextX[k] != -9999
	}

	for k := range nextX {
		x := nextX[k]
		y := nextY[k]
		if x == -9999 {
			continue
		}
		if x == -9 || x == -10 {
			continue // sink
		}
		newCol := int(x) - 1
		newRow := int(y) - 1
		if newCol < 0 || newCol >= width || newRow < 0 || newRow >= height {
			return nil, nil, nil, ErrBadEncoding
		}
		target := newRow*width + newCol
		if !missingMask[target] {
			continue
		}
		upstreamIdx = append(upstreamIdx, int32(k))
		downstreamIdx = append(downstreamIdx, int32(target))
	}
	return upstreamIdx, downstreamIdx, missingMask, nil
}
