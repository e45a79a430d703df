// Package field bridges the 1-D node view the sweep engine operates on and
// the 2-D (plus optional leading batch axes) domain view callers hold,
// applying the network's boolean mask to extract/re-inflate, and carrying
// the missing-value (mv) discipline shared by every kernel.
package field

import "errors"

// ErrShapeMismatch indicates field.Shape[-2:] disagrees with the network's
// mask shape.
var ErrShapeMismatch = errors.New("field: shape mismatch")

// ErrUnexpectedMissing indicates mv-matching entries were found in a field
// passed with AcceptMissing=false.
var ErrUnexpectedMissing = errors.New("field: unexpected missing values")

// ErrUnknownMetric indicates a reduction name outside the supported set.
var ErrUnknownMetric = errors.New("field: unknown metric")

// ErrUnsupportedMissingValue indicates a non-NaN sentinel was requested for
// a reduction whose missing-value algebra is not implemented.
var ErrUnsupportedMissingValue = errors.New("field: unsupported missing value")
