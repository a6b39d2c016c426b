// Package alloc provides the placement strategies the allocator engine
// consults to choose a hole for each request.
//
// A Strategy receives the request size in words together with the hole
// list in its encoded wire form (see internal/format) and answers with
// the word offset of the chosen hole. Strategies are pure: they must not
// mutate or retain the encoded list, and calling one has no effect on
// engine state.
package alloc

// Strategy selects the hole that should satisfy an allocation request.
//
// Pick returns the word offset of the chosen hole and ok = false when no
// hole in the list is large enough. The engine encodes holes in ascending
// offset order, so "first eligible encountered" ties break toward the
// lowest offset.
type Strategy interface {
	Pick(sizeInWords int, list []byte) (off int, ok bool)
}

// Func adapts a bare function to the Strategy interface so a placement
// rule can be supplied as a function value.
type Func func(sizeInWords int, list []byte) (int, bool)

// Pick implements Strategy.
func (f Func) Pick(sizeInWords int, list []byte) (int, bool) {
	return f(sizeInWords, list)
}
