package printer

import (
	"fmt"
	"strings"

	"github.com/okanderson/memkit/pkg/types"
)

// holesLine builds the memory map line: holes ascending by offset, each
// as "[offset, length]", joined by " - ". An empty hole set renders as
// "[0, 0]".
func holesLine(holes []types.Extent) string {
	if len(holes) == 0 {
		return "[0, 0]"
	}
	parts := make([]string, len(holes))
	for i, h := range holes {
		parts[i] = fmt.Sprintf("[%d, %d]", h.Off, h.Len)
	}
	return strings.Join(parts, " - ")
}

func (p *Printer) printHolesText(holes []types.Extent) error {
	if _, err := fmt.Fprint(p.w, holesLine(holes)); err != nil {
		return err
	}
	return p.maybeNewline()
}

func (p *Printer) printStateText(st State) error {
	used := 0
	for _, part := range st.Partitions {
		used += part.Len
	}
	_, err := fmt.Fprintf(p.w, "region: %d words x %d bytes, %d in use\n", st.Words, st.WordSize, used)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.w, "holes: %s\n", holesLine(st.Holes)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.w, "partitions: %s\n", partitionsLine(st.Partitions))
	return err
}

func partitionsLine(parts []types.Extent) string {
	if len(parts) == 0 {
		return "(none)"
	}
	out := make([]string, len(parts))
	for i, e := range parts {
		out[i] = fmt.Sprintf("[%d, %d]", e.Off, e.Len)
	}
	return strings.Join(out, " - ")
}

func (p *Printer) maybeNewline() error {
	if !p.opts.TrailingNewline {
		return nil
	}
	_, err := fmt.Fprintln(p.w)
	return err
}
