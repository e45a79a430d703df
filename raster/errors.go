// Package raster decodes drainage-direction rasters (D8, CaMa-Flood downxy
// and nextxy encodings) into the flat upstream/downstream index pairs that
// network.Build consumes.
package raster

import "errors"

// ErrBadEncoding is returned for a direction code or index pair that does
// not belong to the encoding being decoded.
var ErrBadEncoding = errors.New("raster: bad encoding")

// ErrShapeMismatch is returned when paired input arrays (e.g. dx/dy, or
// upstream/downstream index lists for DecodePrecomputed) disagree in length.
var ErrShapeMismatch = errors.New("raster: shape mismatch")
