// Package format houses the wire formats the allocator exposes: the
// encoded hole list handed to placement strategies and the packed word
// occupancy bitmap. Encoders always produce fresh buffers so callers can
// hold the result without aliasing engine state.
package format

const (
	// CountSize is the width in bytes of the little-endian hole count that
	// prefixes an encoded hole list.
	CountSize = 2

	// HoleEntrySize is the width in bytes of one encoded hole: a
	// little-endian uint16 word offset followed by a uint16 word length.
	HoleEntrySize = 4

	// BitmapLenSize is the width in bytes of the little-endian byte count
	// that prefixes an encoded bitmap.
	BitmapLenSize = 2

	// WordsPerBitmapByte is how many word-occupancy flags pack into one
	// bitmap byte.
	WordsPerBitmapByte = 8
)
