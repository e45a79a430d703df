// Package netio serializes a built network.Network to a compact binary blob
// and restores it, so the expensive raster-decode + topological-labelling
// pipeline only has to run once per drainage map. Grounded on
// original_source/hydro/caching.py, the Python original's pickle-based
// network cache, reworked as a versioned binary format with the corpus's
// compression and checksum idiom (see pkg/compression and fs/hrw.go-style
// xxhash usage in the example repos).
package netio

import "errors"

// ErrVersionMismatch is returned when a blob's format version tag does not
// match the version this build of netio writes and reads.
var ErrVersionMismatch = errors.New("netio: format version mismatch")

// ErrChecksumMismatch is returned when a loaded blob's xxhash digest does
// not match the checksum stored in its header, indicating truncation or
// corruption.
var ErrChecksumMismatch = errors.New("netio: checksum mismatch")
