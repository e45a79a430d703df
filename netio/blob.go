package netio

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	perrors "github.com/pkg/errors"

	"github.com/hydrograph/hydrograph/network"
)

// formatVersion is bumped whenever the on-disk payload layout changes
// incompatibly; Load refuses to read a blob whose header carries a
// different value.
const formatVersion uint32 = 1

const magic uint32 = 0x48595244 // "HYRD"

// header is the fixed-size prefix written ahead of the zstd-compressed
// payload. Checksum covers the *uncompressed* payload bytes, so a change in
// compression parameters across builds never invalidates old blobs.
type header struct {
	Magic     uint32
	Version   uint32
	N         uint32
	SinkLevel int32
	Height    int32
	Width     int32
	Checksum  uint64
}

const headerSize = 4*6 + 8 // six uint32/int32 fields plus one uint64

// Save encodes net into a versioned, zstd-compressed, xxhash-checksummed
// blob. Layout per §4.8: a fixed header followed by Downstream, Sources,
// Sinks, Level (all int32) and a packed-bit Mask, each length-prefixed so
// Load can recover exact slice boundaries without re-deriving them.
func Save(w io.Writer, net *network.Network) error {
	var payload bytes.Buffer
	writeInt32Slice(&payload, net.Downstream)
	writeInt32Slice(&payload, net.Sources)
	writeInt32Slice(&payload, net.Sinks)
	writeInt32Slice(&payload, net.Level)
	writeBoolSlice(&payload, net.Mask)

	sum := xxhash.Sum64(payload.Bytes())

	hdr := header{
		Magic:     magic,
		Version:   formatVersion,
		N:         uint32(net.N),
		SinkLevel: net.SinkLevel,
		Height:    int32(net.MaskShape[0]),
		Width:     int32(net.MaskShape[1]),
		Checksum:  sum,
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return perrors.Wrap(err, "netio: write header")
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return perrors.Wrap(err, "netio: new zstd writer")
	}
	if _, err := enc.Write(payload.Bytes()); err != nil {
		enc.Close()
		return perrors.Wrap(err, "netio: compress payload")
	}
	return perrors.Wrap(enc.Close(), "netio: flush zstd writer")
}

// Load decodes a blob written by Save into a *network.Network, validating
// the format version and payload checksum before handing anything to
// network.Restore.
func Load(r io.Reader) (*network.Network, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, perrors.Wrap(err, "netio: read header")
	}
	if hdr.Magic != magic {
		return nil, perrors.Wrap(ErrVersionMismatch, "netio: bad magic")
	}
	if hdr.Version != formatVersion {
		return nil, perrors.Wrapf(ErrVersionMismatch, "blob version %d, reader expects %d", hdr.Version, formatVersion)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: new zstd reader")
	}
	defer dec.Close()

	payload, err := io.ReadAll(dec)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: decompress payload")
	}

	if xxhash.Sum64(payload) != hdr.Checksum {
		return nil, ErrChecksumMismatch
	}

	buf := bytes.NewReader(payload)
	downstream, err := readInt32Slice(buf)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: read downstream")
	}
	sources, err := readInt32Slice(buf)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: read sources")
	}
	sinks, err := readInt32Slice(buf)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: read sinks")
	}
	level, err := readInt32Slice(buf)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: read level")
	}
	mask, err := readBoolSlice(buf)
	if err != nil {
		return nil, perrors.Wrap(err, "netio: read mask")
	}

	maskShape := [2]int{int(hdr.Height), int(hdr.Width)}
	net := network.Restore(int(hdr.N), downstream, sinks, sources, level, hdr.SinkLevel, maskShape, mask)
	return net, nil
}

func writeInt32Slice(buf *bytes.Buffer, s []int32) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	binary.Write(buf, binary.LittleEndian, s)
}

func readInt32Slice(r io.Reader) ([]int32, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]int32, n)
	if n == 0 {
		return s, nil
	}
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}

// writeBoolSlice packs one bit per element (8 nodes per byte), since Mask
// is typically as large as the full raster domain and a bool-per-byte
// encoding would double the blob size for no benefit.
func writeBoolSlice(buf *bytes.Buffer, s []bool) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	packed := make([]byte, (len(s)+7)/8)
	for i, b := range s {
		if b {
			packed[i/8] |= 1 << uint(i%8)
		}
	}
	buf.Write(packed)
}

func readBoolSlice(r io.Reader) ([]bool, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	packed := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, packed); err != nil {
		return nil, err
	}
	s := make([]bool, n)
	for i := range s {
		s[i] = packed[i/8]&(1<<uint(i%8)) != 0
	}
	return s, nil
}
