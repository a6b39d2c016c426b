package alloc

import "github.com/okanderson/memkit/internal/format"

// WorstFit selects the largest hole that can hold the request, leaving
// the biggest possible remainder behind. Ties go to the hole encountered
// first in the list.
type WorstFit struct{}

// Pick implements Strategy.
func (WorstFit) Pick(sizeInWords int, list []byte) (int, bool) {
	n, err := format.HoleCount(list)
	if err != nil {
		return 0, false
	}

	off, worst := 0, -1
	for i := 0; i < n; i++ {
		h, err := format.HoleAt(list, i)
		if err != nil {
			return 0, false
		}
		if h.Len < sizeInWords {
			continue
		}
		if h.Len > worst {
			off, worst = h.Off, h.Len
		}
	}
	return off, worst != -1
}
