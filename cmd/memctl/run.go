package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okanderson/memkit/mem"
	"github.com/okanderson/memkit/mem/printer"
	"github.com/okanderson/memkit/mem/verify"
	"github.com/okanderson/memkit/pkg/types"
)

var (
	runStats bool
	runAudit bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runStats, "stats", false, "Print allocator statistics after the run")
	cmd.Flags().BoolVar(&runAudit, "audit", true, "Check allocator invariants after the run")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute an allocation scenario",
		Long: `The run command executes the steps of a scenario file against a fresh
allocator and prints the final memory map.

Example:
  memctl run scenario.yaml
  memctl run scenario.yaml --stats
  memctl run scenario.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args)
		},
	}
	return cmd
}

// runSummary is the JSON shape of a completed run.
type runSummary struct {
	Scenario string        `json:"scenario"`
	State    printer.State `json:"state"`
	Stats    *mem.Stats    `json:"stats,omitempty"`
}

func runScenario(args []string) error {
	path := args[0]

	sc, err := LoadScenario(path)
	if err != nil {
		return err
	}

	strategy, err := strategyByName(sc.Strategy)
	if err != nil {
		return err
	}

	m, err := mem.New(sc.WordSize, strategy)
	if err != nil {
		return err
	}
	defer m.Shutdown()

	printVerbose("Running %s: %d steps, word size %d\n", path, len(sc.Steps), sc.WordSize)

	addrs := make(map[string]types.Addr)
	for i, st := range sc.Steps {
		err := applyStep(m, addrs, st)
		if st.WantFail {
			if err == nil {
				return fmt.Errorf("step %d (%s): expected failure, succeeded", i+1, st.Op)
			}
			printVerbose("step %d (%s): failed as expected: %v\n", i+1, st.Op, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}

	if runAudit && m.Initialized() {
		if err := verify.AllInvariants(m.Words(), m.Holes(), m.Partitions(), m.BitmapBits()); err != nil {
			printError("invariant audit failed: %v\n", err)
			return err
		}
		printVerbose("invariant audit passed\n")
	}

	state := printer.State{
		Words:      m.Words(),
		WordSize:   m.WordSize(),
		Holes:      m.Holes(),
		Partitions: m.Partitions(),
	}

	if jsonOut {
		summary := runSummary{Scenario: path, State: state}
		if runStats {
			st := m.Stats()
			summary.Stats = &st
		}
		return printJSON(summary)
	}

	if !quiet {
		p := printer.New(os.Stdout, printer.Options{Format: printer.FormatText, TrailingNewline: true})
		if err := p.PrintState(state); err != nil {
			return err
		}
	}
	if runStats {
		st := m.Stats()
		printInfo("allocs: %d (%d failed), frees: %d (%d failed), largest hole: %d words\n",
			st.AllocCalls, st.AllocFailed, st.FreeCalls, st.FreeFailed, st.LargestHole)
	}
	return nil
}

// applyStep executes one scenario step against the allocator.
func applyStep(m *mem.Manager, addrs map[string]types.Addr, st Step) error {
	switch st.Op {
	case "init":
		if err := m.Initialize(st.Words); err != nil {
			return err
		}
		printVerbose("initialized %d words\n", m.Words())
		return nil

	case "alloc":
		addr, err := m.Allocate(st.Bytes)
		if err != nil {
			return err
		}
		if st.As != "" {
			addrs[st.As] = addr
		}
		printVerbose("allocated %d bytes at %d\n", st.Bytes, addr)
		return nil

	case "free":
		addr, ok := addrs[st.Ref]
		if !ok {
			return fmt.Errorf("no allocation named %q", st.Ref)
		}
		if err := m.Free(addr); err != nil {
			return err
		}
		delete(addrs, st.Ref)
		printVerbose("freed %q at %d\n", st.Ref, addr)
		return nil

	case "strategy":
		s, err := strategyByName(st.Name)
		if err != nil {
			return err
		}
		m.SetStrategy(s)
		printVerbose("strategy set to %s\n", st.Name)
		return nil

	case "dump":
		if err := m.DumpMemoryMap(st.File); err != nil {
			return err
		}
		printVerbose("memory map written to %s\n", st.File)
		return nil

	case "holes":
		if jsonOut {
			return printJSON(m.Holes())
		}
		p := printer.New(os.Stdout, printer.Options{Format: printer.FormatText, TrailingNewline: true})
		return p.PrintHoles(m.Holes())

	case "bitmap":
		b, err := m.Bitmap()
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(struct {
				Bitmap string `json:"bitmap"`
			}{hex.EncodeToString(b)})
		}
		printInfo("%x\n", b)
		return nil

	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
}
