// Package verify provides validation helpers for allocator state. These
// are used in tests to ensure every operation preserves the region
// invariants, and by the CLI to audit a scenario after it runs.
package verify

import (
	"fmt"
	"sort"

	"github.com/okanderson/memkit/pkg/types"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Coverage checks that holes and partitions together tile [0, words)
// exactly: every word belongs to exactly one run, runs never overlap, and
// no run appears in both sets.
func Coverage(words int, holes, parts []types.Extent) error {
	type run struct {
		ext  types.Extent
		hole bool
	}
	runs := make([]run, 0, len(holes)+len(parts))
	for _, h := range holes {
		runs = append(runs, run{ext: h, hole: true})
	}
	for _, p := range parts {
		runs = append(runs, run{ext: p})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ext.Off < runs[j].ext.Off })

	next := 0
	for _, r := range runs {
		kind := "partition"
		if r.hole {
			kind = "hole"
		}
		if r.ext.Len <= 0 {
			return &ValidationError{
				Type:    "Coverage",
				Message: fmt.Sprintf("%s at word %d has non-positive length %d", kind, r.ext.Off, r.ext.Len),
				Details: map[string]interface{}{"off": r.ext.Off, "len": r.ext.Len},
			}
		}
		if r.ext.Off != next {
			msg := fmt.Sprintf("%s at word %d leaves gap after word %d", kind, r.ext.Off, next)
			if r.ext.Off < next {
				msg = fmt.Sprintf("%s at word %d overlaps run ending at word %d", kind, r.ext.Off, next)
			}
			return &ValidationError{
				Type:    "Coverage",
				Message: msg,
				Details: map[string]interface{}{"off": r.ext.Off, "expected": next},
			}
		}
		next = r.ext.End()
	}
	if next != words {
		return &ValidationError{
			Type:    "Coverage",
			Message: fmt.Sprintf("runs end at word %d, region has %d words", next, words),
			Details: map[string]interface{}{"end": next, "words": words},
		}
	}
	return nil
}

// Coalesced checks that no two holes touch: for any pair, one hole's end
// never equals another's start. Holes are expected in ascending offset
// order.
func Coalesced(holes []types.Extent) error {
	for i := 1; i < len(holes); i++ {
		if holes[i-1].End() >= holes[i].Off {
			return &ValidationError{
				Type: "Coalesced",
				Message: fmt.Sprintf("holes (%d, %d) and (%d, %d) are adjacent or overlap",
					holes[i-1].Off, holes[i-1].Len, holes[i].Off, holes[i].Len),
				Details: map[string]interface{}{"first": holes[i-1], "second": holes[i]},
			}
		}
	}
	return nil
}

// Sorted checks that extents appear in strictly ascending offset order.
func Sorted(kind string, exts []types.Extent) error {
	for i := 1; i < len(exts); i++ {
		if exts[i-1].Off >= exts[i].Off {
			return &ValidationError{
				Type:    "Sorted",
				Message: fmt.Sprintf("%s list out of order at index %d", kind, i),
				Details: map[string]interface{}{"index": i, "prev": exts[i-1], "curr": exts[i]},
			}
		}
	}
	return nil
}

// BitmapConsistent checks that bit w is set iff word w falls inside some
// partition. Bits past the region (bitmap padding) must be clear.
func BitmapConsistent(bits []bool, parts []types.Extent) error {
	want := make([]bool, len(bits))
	for _, p := range parts {
		for w := p.Off; w < p.End(); w++ {
			if w < 0 || w >= len(want) {
				return &ValidationError{
					Type:    "Bitmap",
					Message: fmt.Sprintf("partition (%d, %d) falls outside the bitmap", p.Off, p.Len),
					Details: map[string]interface{}{"off": p.Off, "len": p.Len, "bits": len(bits)},
				}
			}
			want[w] = true
		}
	}
	for w := range bits {
		if bits[w] != want[w] {
			return &ValidationError{
				Type:    "Bitmap",
				Message: fmt.Sprintf("bit for word %d is %v, partitions say %v", w, bits[w], want[w]),
				Details: map[string]interface{}{"word": w},
			}
		}
	}
	return nil
}

// AllInvariants runs every check against one allocator snapshot.
func AllInvariants(words int, holes, parts []types.Extent, bits []bool) error {
	if err := Sorted("hole", holes); err != nil {
		return err
	}
	if err := Sorted("partition", parts); err != nil {
		return err
	}
	if err := Coverage(words, holes, parts); err != nil {
		return err
	}
	if err := Coalesced(holes); err != nil {
		return err
	}
	return BitmapConsistent(bits, parts)
}
