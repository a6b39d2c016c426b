// Package types defines the public value types and limits shared by the
// allocator engine and its exporters.
//
// The central type is Extent, a (word offset, word length) pair that
// describes both free holes and allocated partitions. Addr is the byte
// offset handle returned by Allocate and consumed by Free.
package types
