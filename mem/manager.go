package mem

import (
	"fmt"
	"sort"

	"github.com/okanderson/memkit/internal/format"
	"github.com/okanderson/memkit/internal/membuf"
	"github.com/okanderson/memkit/mem/alloc"
	"github.com/okanderson/memkit/pkg/types"
)

// Manager owns a fixed-size word-addressable region and tracks which word
// runs are free (holes) and which are allocated (partitions). Holes and
// partitions together always tile the region exactly, adjacent holes are
// always merged, and the occupancy bitmap mirrors the partition set.
//
// A Manager is not safe for concurrent use. Callers sharing one instance
// must serialize access externally; the engine provides no locking.
type Manager struct {
	wordSize int
	strategy alloc.Strategy

	region  []byte       // words * wordSize bytes; nil until Initialize
	release func() error // returns region storage to the platform
	words   int          // region size in words

	holes []types.Extent // free runs, ascending Off, never adjacent
	parts []types.Extent // allocated runs, ascending Off
	bits  []bool         // one flag per word, padded to a multiple of 8

	stats counters
}

// New creates a manager with the given word size (the alignment unit, in
// bytes) and initial placement strategy. The region itself is created by
// Initialize.
func New(wordSize int, s alloc.Strategy) (*Manager, error) {
	if wordSize <= 0 {
		return nil, ErrWordSize
	}
	if s == nil {
		return nil, ErrNilStrategy
	}
	return &Manager{wordSize: wordSize, strategy: s}, nil
}

// Initialize replaces any prior region with a fresh one of sizeInWords
// words, clamped to types.MaxRegionWords, containing a single hole that
// spans the whole region. Repeated calls are equivalent to a single call
// with the latest argument: any previous region is shut down first.
func (m *Manager) Initialize(sizeInWords int) error {
	m.Shutdown()

	if sizeInWords <= 0 {
		return ErrInvalidSize
	}
	if sizeInWords > types.MaxRegionWords {
		sizeInWords = types.MaxRegionWords
	}

	region, release, err := membuf.Acquire(sizeInWords * m.wordSize)
	if err != nil {
		return fmt.Errorf("mem: acquire region: %w", err)
	}

	m.region = region
	m.release = release
	m.words = sizeInWords
	m.holes = []types.Extent{{Off: 0, Len: sizeInWords}}
	m.parts = nil
	m.bits = make([]bool, paddedWords(sizeInWords))
	return nil
}

// Shutdown releases the region buffer and clears all bookkeeping. Safe to
// call repeatedly and on a manager that was never initialized.
func (m *Manager) Shutdown() {
	if m.release != nil {
		_ = m.release()
	}
	m.region = nil
	m.release = nil
	m.words = 0
	m.holes = nil
	m.parts = nil
	m.bits = nil
}

// Allocate reserves sizeInBytes bytes, rounded up to whole words, from
// the hole chosen by the active placement strategy. It returns the byte
// offset of the new partition inside the region buffer. On any failure
// no state changes.
func (m *Manager) Allocate(sizeInBytes int) (types.Addr, error) {
	m.stats.AllocCalls++

	if m.region == nil {
		m.stats.AllocFailed++
		return 0, ErrUninitialized
	}
	if sizeInBytes <= 0 || sizeInBytes > m.words*m.wordSize {
		m.stats.AllocFailed++
		return 0, fmt.Errorf("mem: allocate %d bytes: %w", sizeInBytes, ErrInvalidSize)
	}

	words := (sizeInBytes + m.wordSize - 1) / m.wordSize

	list, err := format.EncodeHoleList(m.holes)
	if err != nil {
		m.stats.AllocFailed++
		return 0, fmt.Errorf("mem: encode hole list: %w", err)
	}
	off, ok := m.strategy.Pick(words, list)
	if !ok {
		m.stats.AllocFailed++
		return 0, ErrNoFit
	}

	// A strategy is trusted to pick from the list it was given, but a
	// buggy custom Func must not corrupt the region.
	i := m.holeAt(off)
	if i < 0 || m.holes[i].Len < words {
		m.stats.AllocFailed++
		return 0, fmt.Errorf("mem: strategy picked unusable hole at word %d: %w", off, ErrNoFit)
	}

	if m.holes[i].Len == words {
		m.holes = append(m.holes[:i], m.holes[i+1:]...)
	} else {
		// Shrink the hole from its front.
		m.holes[i].Off += words
		m.holes[i].Len -= words
	}

	m.insertPart(types.Extent{Off: off, Len: words})
	m.fill(off, words, true)

	return types.Addr(off * m.wordSize), nil
}

// Free returns the partition starting at addr to the hole set, merging
// with an immediately preceding and an immediately following hole so no
// two adjacent holes remain. An address that does not match a tracked
// partition start is reported via ErrUnknownAddress and mutates nothing.
func (m *Manager) Free(addr types.Addr) error {
	m.stats.FreeCalls++

	if m.region == nil {
		m.stats.FreeFailed++
		return ErrUninitialized
	}
	off := int(addr)
	if off < 0 || off >= len(m.region) || off%m.wordSize != 0 {
		m.stats.FreeFailed++
		return fmt.Errorf("mem: free address %d: %w", off, ErrUnknownAddress)
	}

	wordOff := off / m.wordSize
	i := m.partAt(wordOff)
	if i < 0 {
		m.stats.FreeFailed++
		return fmt.Errorf("mem: free address %d: %w", off, ErrUnknownAddress)
	}

	freed := m.parts[i]
	m.parts = append(m.parts[:i], m.parts[i+1:]...)

	cand := freed
	if j := m.holeEndingAt(cand.Off); j >= 0 {
		cand.Off = m.holes[j].Off
		cand.Len += m.holes[j].Len
		m.holes = append(m.holes[:j], m.holes[j+1:]...)
	}
	if j := m.holeAt(cand.End()); j >= 0 {
		cand.Len += m.holes[j].Len
		m.holes = append(m.holes[:j], m.holes[j+1:]...)
	}
	m.insertHole(cand)
	m.fill(freed.Off, freed.Len, false)
	return nil
}

// SetStrategy replaces the placement strategy used by subsequent Allocate
// calls. Existing partitions are unaffected. A nil strategy is ignored.
func (m *Manager) SetStrategy(s alloc.Strategy) {
	if s != nil {
		m.strategy = s
	}
}

// Initialized reports whether the manager currently owns a region.
func (m *Manager) Initialized() bool { return m.region != nil }

// WordSize returns the alignment unit in bytes.
func (m *Manager) WordSize() int { return m.wordSize }

// Words returns the region size in words, 0 when uninitialized.
func (m *Manager) Words() int { return m.words }

// Limit returns the region size in bytes, 0 when uninitialized.
func (m *Manager) Limit() int { return len(m.region) }

// Bytes returns the region buffer itself (the start of memory). The
// engine never inspects buffer contents, so callers may write to the
// bytes of partitions they hold; the slice becomes invalid on Shutdown
// or Initialize.
func (m *Manager) Bytes() []byte { return m.region }

// Holes returns a copy of the free runs in ascending offset order.
func (m *Manager) Holes() []types.Extent {
	return append([]types.Extent(nil), m.holes...)
}

// Partitions returns a copy of the allocated runs in ascending offset order.
func (m *Manager) Partitions() []types.Extent {
	return append([]types.Extent(nil), m.parts...)
}

// BitmapBits returns a copy of the per-word occupancy flags, padded to a
// multiple of types.BitmapGroupWords.
func (m *Manager) BitmapBits() []bool {
	return append([]bool(nil), m.bits...)
}

// holeAt returns the index of the hole starting at word off, or -1.
func (m *Manager) holeAt(off int) int {
	i := sort.Search(len(m.holes), func(k int) bool { return m.holes[k].Off >= off })
	if i < len(m.holes) && m.holes[i].Off == off {
		return i
	}
	return -1
}

// holeEndingAt returns the index of the hole whose run ends exactly at
// word off, or -1. Holes never overlap, so only the nearest hole below
// off can qualify.
func (m *Manager) holeEndingAt(off int) int {
	i := sort.Search(len(m.holes), func(k int) bool { return m.holes[k].Off >= off })
	if i > 0 && m.holes[i-1].End() == off {
		return i - 1
	}
	return -1
}

// partAt returns the index of the partition starting at word off, or -1.
func (m *Manager) partAt(off int) int {
	i := sort.Search(len(m.parts), func(k int) bool { return m.parts[k].Off >= off })
	if i < len(m.parts) && m.parts[i].Off == off {
		return i
	}
	return -1
}

func (m *Manager) insertHole(h types.Extent) {
	i := sort.Search(len(m.holes), func(k int) bool { return m.holes[k].Off >= h.Off })
	m.holes = append(m.holes, types.Extent{})
	copy(m.holes[i+1:], m.holes[i:])
	m.holes[i] = h
}

func (m *Manager) insertPart(p types.Extent) {
	i := sort.Search(len(m.parts), func(k int) bool { return m.parts[k].Off >= p.Off })
	m.parts = append(m.parts, types.Extent{})
	copy(m.parts[i+1:], m.parts[i:])
	m.parts[i] = p
}

func (m *Manager) fill(off, n int, used bool) {
	for w := off; w < off+n; w++ {
		m.bits[w] = used
	}
}

// paddedWords rounds n up to a whole number of bitmap groups.
func paddedWords(n int) int {
	g := types.BitmapGroupWords
	return (n + g - 1) / g * g
}
