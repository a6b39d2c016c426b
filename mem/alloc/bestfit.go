package alloc

import "github.com/okanderson/memkit/internal/format"

// BestFit selects the smallest hole that can hold the request, keeping
// large holes intact for later requests. Ties go to the hole encountered
// first in the list.
type BestFit struct{}

// Pick implements Strategy.
func (BestFit) Pick(sizeInWords int, list []byte) (int, bool) {
	n, err := format.HoleCount(list)
	if err != nil {
		return 0, false
	}

	off, best := 0, -1
	for i := 0; i < n; i++ {
		h, err := format.HoleAt(list, i)
		if err != nil {
			return 0, false
		}
		if h.Len < sizeInWords {
			continue
		}
		if best == -1 || h.Len < best {
			off, best = h.Off, h.Len
		}
	}
	return off, best != -1
}
