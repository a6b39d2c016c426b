package format

import (
	"fmt"

	"github.com/okanderson/memkit/internal/buf"
	"github.com/okanderson/memkit/pkg/types"
)

// EncodeHoleList encodes holes into the strategy wire format: a
// little-endian uint16 count followed by one (offset, length) uint16 pair
// per hole. The caller supplies holes in ascending offset order and the
// encoding preserves it. Offsets and lengths above 65535 cannot occur in
// a region bounded by types.MaxRegionWords, so they are rejected rather
// than silently wrapped.
func EncodeHoleList(holes []types.Extent) ([]byte, error) {
	if len(holes) > int(^uint16(0)) {
		return nil, fmt.Errorf("hole list: %d entries: %w", len(holes), ErrRange)
	}
	out := make([]byte, CountSize+len(holes)*HoleEntrySize)
	PutU16(out, 0, uint16(len(holes)))
	for i, h := range holes {
		if h.Off < 0 || h.Off > int(^uint16(0)) || h.Len < 0 || h.Len > int(^uint16(0)) {
			return nil, fmt.Errorf("hole list entry %d (%d, %d): %w", i, h.Off, h.Len, ErrRange)
		}
		base := CountSize + i*HoleEntrySize
		PutU16(out, base, uint16(h.Off))
		PutU16(out, base+2, uint16(h.Len))
	}
	return out, nil
}

// HoleCount returns the number of entries declared by an encoded hole list.
func HoleCount(b []byte) (int, error) {
	if len(b) < CountSize {
		return 0, fmt.Errorf("hole list: %w", ErrTruncated)
	}
	return int(buf.U16LE(b)), nil
}

// HoleAt returns entry i of an encoded hole list without decoding the
// rest. Strategies use this to walk the list allocation-free.
func HoleAt(b []byte, i int) (types.Extent, error) {
	base := CountSize + i*HoleEntrySize
	if i < 0 || len(b) < base+HoleEntrySize {
		return types.Extent{}, fmt.Errorf("hole list entry %d: %w", i, ErrTruncated)
	}
	return types.Extent{
		Off: int(buf.U16LE(b[base:])),
		Len: int(buf.U16LE(b[base+2:])),
	}, nil
}

// DecodeHoleList decodes a full encoded hole list into extents.
func DecodeHoleList(b []byte) ([]types.Extent, error) {
	n, err := HoleCount(b)
	if err != nil {
		return nil, err
	}
	if len(b) < CountSize+n*HoleEntrySize {
		return nil, fmt.Errorf("hole list: %w", ErrTruncated)
	}
	out := make([]types.Extent, n)
	for i := range out {
		out[i], err = HoleAt(b, i)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
