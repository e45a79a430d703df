package raster

// DecodePrecomputed accepts an already-decoded (upstream, downstream, mask)
// triple -- the shape a caller restoring a cached network (see package
// netio) or reading a format this package has no decoder for would already
// have -- and simply validates and passes it through unchanged, so it can be
// handed to network.Build exactly like the output of DecodeD8/DecodeCaMaDownXY
// /DecodeCaMaNextXY. Grounded on original_source/hydro/caching.py, which
// reloads a serialized network without ever re-running raster decoding.
func DecodePrecomputed(upstreamIdx, downstreamIdx []int32, missingMask []bool) (u, d []int32, mask []bool, err error) {
	if len(upstreamIdx) != len(downstreamIdx) {
		return nil, nil, nil, ErrShapeMismatch
	}
	return upstreamIdx, downstreamIdx, missingMask, nil
}
