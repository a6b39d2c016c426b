package mem

import (
	"fmt"
	"os"

	"github.com/okanderson/memkit/mem/printer"
)

// DumpMemoryMap writes the current hole list as text to path, replacing
// any existing file content. The format is the printer text form:
// "[off, len]" entries ascending by offset joined by " - ", or "[0, 0]"
// when no holes exist. Engine state is never mutated, even on I/O failure.
func (m *Manager) DumpMemoryMap(path string) error {
	if m.region == nil {
		return ErrUninitialized
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("mem: dump memory map: %w", err)
	}

	p := printer.New(f, printer.DefaultOptions())
	werr := p.PrintHoles(m.holes)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("mem: dump memory map: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("mem: dump memory map: %w", cerr)
	}
	return nil
}
