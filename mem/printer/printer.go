// Package printer renders allocator state for humans and machines. The
// text form matches the on-disk memory map format; the JSON form carries
// the full snapshot for tooling.
package printer

import (
	"io"

	"github.com/okanderson/memkit/pkg/types"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the memory-map text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format (text, json).
	// Default: FormatText
	Format Format

	// TrailingNewline appends a newline after text output. The on-disk
	// memory map format carries no trailing newline; interactive output
	// wants one.
	// Default: false
	TrailingNewline bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{Format: FormatText}
}

// State is a point-in-time allocator snapshot.
type State struct {
	Words      int            `json:"words"`
	WordSize   int            `json:"word_size"`
	Holes      []types.Extent `json:"holes"`
	Partitions []types.Extent `json:"partitions"`
}

// Printer handles formatted output of allocator state.
type Printer struct {
	w    io.Writer
	opts Options
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// PrintHoles renders just the hole list.
func (p *Printer) PrintHoles(holes []types.Extent) error {
	if p.opts.Format == FormatJSON {
		return p.printJSON(holes)
	}
	return p.printHolesText(holes)
}

// PrintState renders a full snapshot.
func (p *Printer) PrintState(st State) error {
	if p.opts.Format == FormatJSON {
		return p.printJSON(st)
	}
	return p.printStateText(st)
}
