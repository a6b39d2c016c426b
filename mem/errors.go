package mem

import "errors"

var (
	// ErrWordSize indicates a non-positive word size at construction.
	ErrWordSize = errors.New("mem: word size must be positive")

	// ErrNilStrategy indicates a nil placement strategy at construction.
	ErrNilStrategy = errors.New("mem: placement strategy must not be nil")

	// ErrInvalidSize indicates an allocation or initialization size that is
	// non-positive or larger than the whole region.
	ErrInvalidSize = errors.New("mem: invalid size")

	// ErrNoFit indicates no hole could satisfy the requested word count.
	ErrNoFit = errors.New("mem: no hole fits request")

	// ErrUninitialized indicates an operation that requires an initialized region.
	ErrUninitialized = errors.New("mem: region not initialized")

	// ErrUnknownAddress indicates a Free call whose address does not match
	// any tracked partition start. The call mutates nothing; double-frees
	// surface here instead of crashing.
	ErrUnknownAddress = errors.New("mem: address does not match a partition")
)
