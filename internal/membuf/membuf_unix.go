//go:build unix

package membuf

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Acquire maps size bytes of zeroed anonymous memory. Backing regions
// with a private mapping keeps their release explicit: Shutdown unmaps
// the pages instead of waiting on the garbage collector.
func Acquire(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, release, nil
}
