package mem

// counters holds the cumulative operation tallies the manager maintains.
type counters struct {
	AllocCalls  int
	AllocFailed int
	FreeCalls   int
	FreeFailed  int
}

// Stats reports cumulative operation counters together with a
// point-in-time view of region usage.
type Stats struct {
	AllocCalls  int `json:"alloc_calls"`
	AllocFailed int `json:"alloc_failed"`
	FreeCalls   int `json:"free_calls"`
	FreeFailed  int `json:"free_failed"`

	Words       int `json:"words"`
	WordsInUse  int `json:"words_in_use"`
	Holes       int `json:"holes"`
	Partitions  int `json:"partitions"`
	LargestHole int `json:"largest_hole"`
}

// Stats returns current allocator statistics.
func (m *Manager) Stats() Stats {
	st := Stats{
		AllocCalls:  m.stats.AllocCalls,
		AllocFailed: m.stats.AllocFailed,
		FreeCalls:   m.stats.FreeCalls,
		FreeFailed:  m.stats.FreeFailed,
		Words:       m.words,
		Holes:       len(m.holes),
		Partitions:  len(m.parts),
	}
	for _, p := range m.parts {
		st.WordsInUse += p.Len
	}
	for _, h := range m.holes {
		if h.Len > st.LargestHole {
			st.LargestHole = h.Len
		}
	}
	return st
}
