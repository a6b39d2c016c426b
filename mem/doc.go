// Package mem implements a word-addressable memory allocator over a
// fixed-size in-process byte buffer, built for studying allocation, free
// and coalescing behavior under pluggable placement strategies.
//
// # Overview
//
// A Manager owns one region of up to 65535 words, where the word size in
// bytes is fixed at construction. Free space is tracked as holes and
// allocated space as partitions, both (offset, length) runs in word
// units. The two sets tile the region exactly at all times, and a
// per-word occupancy bitmap mirrors the partition set.
//
// # Lifecycle
//
//	m, err := mem.New(8, alloc.BestFit{})
//	if err != nil {
//	    return err
//	}
//	defer m.Shutdown()
//
//	if err := m.Initialize(1024); err != nil {
//	    return err
//	}
//
//	addr, err := m.Allocate(100) // rounded up to 13 words
//	if err != nil {
//	    return err
//	}
//	// write into m.Bytes()[addr:] ...
//	if err := m.Free(addr); err != nil {
//	    return err
//	}
//
// Initialize discards any prior region and seeds a single hole spanning
// the new one; Shutdown releases the buffer and clears all bookkeeping.
//
// # Placement strategies
//
// Each Allocate encodes the hole list into its wire form and hands it to
// the active Strategy (see mem/alloc), which answers with the offset of
// the hole to consume. Strategies are swappable at runtime through
// SetStrategy without disturbing existing partitions.
//
// # Exports
//
// HoleList and Bitmap return the allocator state in little-endian binary
// forms, and DumpMemoryMap writes the textual memory map to a file. All
// exported buffers are independent copies owned by the caller.
//
// # Concurrency
//
// Manager does no internal locking. A single goroutine may use it freely;
// anything else requires external serialization by the caller.
package mem
