package format

import "fmt"

// EncodeBitmap packs per-word occupancy flags into the bitmap wire
// format: a little-endian uint16 payload byte count followed by the flags
// at one bit per word, eight words per byte. Packing is reversed within
// each byte: bit 7 carries the lowest word index of the group and bit 0
// the highest. Flags beyond a multiple of eight are padded with zeros.
func EncodeBitmap(bits []bool) ([]byte, error) {
	groups := (len(bits) + WordsPerBitmapByte - 1) / WordsPerBitmapByte
	if groups > int(^uint16(0)) {
		return nil, fmt.Errorf("bitmap: %d words: %w", len(bits), ErrRange)
	}
	out := make([]byte, BitmapLenSize+groups)
	PutU16(out, 0, uint16(groups))
	for w, set := range bits {
		if !set {
			continue
		}
		shift := WordsPerBitmapByte - 1 - w%WordsPerBitmapByte
		out[BitmapLenSize+w/WordsPerBitmapByte] |= 1 << shift
	}
	return out, nil
}

// DecodeBitmap expands an encoded bitmap back into per-word flags. The
// result length is always a multiple of WordsPerBitmapByte; padding bits
// come back as false.
func DecodeBitmap(b []byte) ([]bool, error) {
	if len(b) < BitmapLenSize {
		return nil, fmt.Errorf("bitmap: %w", ErrTruncated)
	}
	groups := int(ReadU16(b, 0))
	if len(b) < BitmapLenSize+groups {
		return nil, fmt.Errorf("bitmap: %w", ErrTruncated)
	}
	bits := make([]bool, groups*WordsPerBitmapByte)
	for g := 0; g < groups; g++ {
		by := b[BitmapLenSize+g]
		for k := 0; k < WordsPerBitmapByte; k++ {
			if by&(1<<(WordsPerBitmapByte-1-k)) != 0 {
				bits[g*WordsPerBitmapByte+k] = true
			}
		}
	}
	return bits, nil
}
