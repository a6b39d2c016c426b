package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okanderson/memkit/mem/alloc"
)

// Scenario is a scripted sequence of allocator operations loaded from a
// YAML file.
type Scenario struct {
	// WordSize is the allocator word size in bytes.
	WordSize int `yaml:"word_size"`

	// Strategy names the initial placement strategy: "best-fit" (the
	// default) or "worst-fit".
	Strategy string `yaml:"strategy"`

	Steps []Step `yaml:"steps"`
}

// Step is one allocator operation inside a scenario.
type Step struct {
	// Op selects the operation: init, alloc, free, strategy, dump,
	// holes or bitmap.
	Op string `yaml:"op"`

	// Words is the region size for init.
	Words int `yaml:"words"`

	// Bytes is the request size for alloc.
	Bytes int `yaml:"bytes"`

	// As names the address returned by an alloc so later steps can
	// refer to it.
	As string `yaml:"as"`

	// Ref names the address a free releases.
	Ref string `yaml:"ref"`

	// Name selects the strategy for a strategy step.
	Name string `yaml:"name"`

	// File is the output path for dump.
	File string `yaml:"file"`

	// WantFail marks a step that is expected to be rejected. The run
	// aborts if such a step succeeds.
	WantFail bool `yaml:"want_fail"`
}

// LoadScenario reads and validates a scenario file. Unknown YAML fields
// are rejected so typos fail loudly instead of silently doing nothing.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.WordSize <= 0 {
		return fmt.Errorf("scenario: word_size must be positive, got %d", sc.WordSize)
	}
	if _, err := strategyByName(sc.Strategy); err != nil {
		return err
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("scenario: step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st *Step) validate() error {
	switch st.Op {
	case "init":
		if st.Words == 0 {
			return fmt.Errorf("init needs words")
		}
	case "alloc":
		if st.Bytes == 0 && !st.WantFail {
			return fmt.Errorf("alloc needs bytes")
		}
	case "free":
		if st.Ref == "" {
			return fmt.Errorf("free needs ref")
		}
	case "strategy":
		if _, err := strategyByName(st.Name); err != nil {
			return err
		}
		if st.Name == "" {
			return fmt.Errorf("strategy needs name")
		}
	case "dump":
		if st.File == "" {
			return fmt.Errorf("dump needs file")
		}
	case "holes", "bitmap":
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// strategyByName maps a scenario strategy name to an implementation. The
// empty name selects best fit.
func strategyByName(name string) (alloc.Strategy, error) {
	switch name {
	case "", "best-fit":
		return alloc.BestFit{}, nil
	case "worst-fit":
		return alloc.WorstFit{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want best-fit or worst-fit)", name)
	}
}
