package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanderson/memkit/mem/alloc"
	"github.com/okanderson/memkit/pkg/types"
)

// fragment carves a 1-byte-word region into [a 4][b 4][c 4][hole 8] and
// returns the three partition addresses.
func fragment(t *testing.T, m *Manager) (a, b, c types.Addr) {
	t.Helper()
	var err error
	a, err = m.Allocate(4)
	require.NoError(t, err)
	b, err = m.Allocate(4)
	require.NoError(t, err)
	c, err = m.Allocate(4)
	require.NoError(t, err)
	return a, b, c
}

func TestFree_MergesWithPrecedingHole(t *testing.T) {
	m := newManager(t, 1, 20)
	a, b, _ := fragment(t, m)

	require.NoError(t, m.Free(a))
	require.NoError(t, m.Free(b))

	assert.Equal(t, []types.Extent{{Off: 0, Len: 8}, {Off: 12, Len: 8}}, m.Holes())
	assertInvariants(t, m)
}

func TestFree_MergesWithFollowingHole(t *testing.T) {
	m := newManager(t, 1, 20)
	_, b, c := fragment(t, m)

	require.NoError(t, m.Free(b))
	require.NoError(t, m.Free(c), "freed run joins the trailing hole")

	assert.Equal(t, []types.Extent{{Off: 4, Len: 4}, {Off: 8, Len: 12}}, m.Holes())
	assertInvariants(t, m)
}

func TestFree_MergesBothSides(t *testing.T) {
	m := newManager(t, 1, 20)
	a, b, c := fragment(t, m)

	require.NoError(t, m.Free(a))
	require.NoError(t, m.Free(c))
	require.Equal(t, []types.Extent{{Off: 0, Len: 4}, {Off: 8, Len: 12}}, m.Holes())

	require.NoError(t, m.Free(b))
	assert.Equal(t, []types.Extent{{Off: 0, Len: 20}}, m.Holes(), "middle free bridges both neighbors")
	assert.Empty(t, m.Partitions())
	assertInvariants(t, m)
}

func TestFree_NoAdjacentHole(t *testing.T) {
	m := newManager(t, 1, 20)
	_, b, _ := fragment(t, m)

	require.NoError(t, m.Free(b))

	assert.Equal(t, []types.Extent{{Off: 4, Len: 4}, {Off: 12, Len: 8}}, m.Holes())
	assert.Equal(t, []types.Extent{{Off: 0, Len: 4}, {Off: 8, Len: 4}}, m.Partitions())
	assertInvariants(t, m)
}

func TestFree_UnknownAddress(t *testing.T) {
	m := newManager(t, 4, 10)

	addr, err := m.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, types.Addr(0), addr)

	holes, parts := m.Holes(), m.Partitions()

	for name, bad := range map[string]types.Addr{
		"unaligned":        2,
		"inside partition": 4,
		"inside hole":      12,
		"negative":         -4,
		"past region":      types.Addr(m.Limit()),
	} {
		err := m.Free(bad)
		assert.ErrorIs(t, err, ErrUnknownAddress, name)
	}

	assert.Equal(t, holes, m.Holes(), "failed frees change nothing")
	assert.Equal(t, parts, m.Partitions())
	assertInvariants(t, m)
}

func TestFree_DoubleFree(t *testing.T) {
	m := newManager(t, 8, 10)

	addr, err := m.Allocate(16)
	require.NoError(t, err)
	require.NoError(t, m.Free(addr))

	err = m.Free(addr)
	assert.ErrorIs(t, err, ErrUnknownAddress)
	assert.Equal(t, []types.Extent{{Off: 0, Len: 10}}, m.Holes())
	assertInvariants(t, m)
}

func TestFree_Uninitialized(t *testing.T) {
	m, err := New(8, alloc.BestFit{})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Free(0), ErrUninitialized)
}

func TestFree_ClearsBitmap(t *testing.T) {
	m := newManager(t, 1, 16)

	addr, err := m.Allocate(5)
	require.NoError(t, err)

	bits := m.BitmapBits()
	for w := 0; w < 5; w++ {
		assert.True(t, bits[w], "word %d allocated", w)
	}

	require.NoError(t, m.Free(addr))
	for w, set := range m.BitmapBits() {
		assert.False(t, set, "word %d freed", w)
	}
	assertInvariants(t, m)
}
