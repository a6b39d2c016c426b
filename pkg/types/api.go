package types

// Extent describes a contiguous run of words inside a region. The same
// shape is used for free holes and allocated partitions; which of the two
// an Extent represents is decided by the collection holding it.
type Extent struct {
	// Off is the starting word index of the run.
	Off int `json:"off"`
	// Len is the run length in words.
	Len int `json:"len"`
}

// End returns the first word index past the run.
func (e Extent) End() int { return e.Off + e.Len }

// Addr is a byte offset into the region buffer identifying the start of
// an allocated partition. An Addr is only meaningful between the Allocate
// call that produced it and the matching Free.
type Addr int
