package types

const (
	// MaxRegionWords is the largest region a manager will instantiate.
	// Offsets and lengths travel as 16-bit values in the hole-list wire
	// format, so a region can never exceed 65535 words; Initialize clamps
	// larger requests to this value.
	MaxRegionWords = 65535

	// BitmapGroupWords is the number of word-occupancy flags packed into
	// one byte of the exported bitmap. The in-memory bitmap is padded to a
	// multiple of this so the export never emits a partial byte.
	BitmapGroupWords = 8

	// MaxHoleListBytes is the largest buffer HoleList can produce: the
	// 2-byte count prefix plus one 4-byte entry per hole. A region of N
	// words can fragment into at most (N+1)/2 holes.
	MaxHoleListBytes = 2 + 4*((MaxRegionWords+1)/2)
)
