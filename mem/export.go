package mem

import (
	"fmt"

	"github.com/okanderson/memkit/internal/format"
)

// HoleList encodes the current hole set in the strategy wire format: a
// little-endian uint16 count followed by (offset, length) uint16 pairs in
// ascending offset order. The returned buffer is an independent copy; the
// engine never retains or mutates it.
func (m *Manager) HoleList() ([]byte, error) {
	if m.region == nil {
		return nil, ErrUninitialized
	}
	b, err := format.EncodeHoleList(m.holes)
	if err != nil {
		return nil, fmt.Errorf("mem: encode hole list: %w", err)
	}
	return b, nil
}

// Bitmap encodes the word occupancy flags in the bitmap wire format: a
// little-endian uint16 byte count, then eight words per byte with bit 7
// carrying the lowest word index of each group. The returned buffer is an
// independent copy.
func (m *Manager) Bitmap() ([]byte, error) {
	if m.region == nil {
		return nil, ErrUninitialized
	}
	b, err := format.EncodeBitmap(m.bits)
	if err != nil {
		return nil, fmt.Errorf("mem: encode bitmap: %w", err)
	}
	return b, nil
}
