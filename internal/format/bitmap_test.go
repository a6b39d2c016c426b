package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBitmap_ReversedPacking(t *testing.T) {
	// Words 0 and 2 of the first group set: bit 7 carries word 0, bit 5
	// carries word 2, so the byte is 0b1010_0000.
	bits := make([]bool, 8)
	bits[0] = true
	bits[2] = true

	b, err := EncodeBitmap(bits)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0xA0}, b)
}

func TestEncodeBitmap_PadsPartialGroup(t *testing.T) {
	// Ten words need two payload bytes; word 9 lands in bit 6 of byte 1.
	bits := make([]bool, 10)
	bits[9] = true

	b, err := EncodeBitmap(bits)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0x00, 0x40}, b)
}

func TestEncodeBitmap_Empty(t *testing.T) {
	b, err := EncodeBitmap(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, b)
}

func TestBitmapRoundTrip(t *testing.T) {
	bits := make([]bool, 24)
	for _, w := range []int{0, 7, 8, 13, 23} {
		bits[w] = true
	}

	b, err := EncodeBitmap(bits)
	require.NoError(t, err)

	got, err := DecodeBitmap(b)
	require.NoError(t, err)
	assert.Equal(t, bits, got)
}

func TestDecodeBitmap_Truncated(t *testing.T) {
	_, err := DecodeBitmap([]byte{5})
	assert.ErrorIs(t, err, ErrTruncated)

	// Prefix declares two payload bytes but only one follows.
	_, err = DecodeBitmap([]byte{2, 0, 0xFF})
	assert.ErrorIs(t, err, ErrTruncated)
}
