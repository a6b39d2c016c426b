package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenario_Walkthrough(t *testing.T) {
	resetFlags()

	path := writeScenario(t, `
word_size: 8
steps:
  - op: init
    words: 20
  - op: alloc
    bytes: 80
    as: a
  - op: alloc
    bytes: 16
    as: b
  - op: free
    ref: a
  - op: holes
  - op: free
    ref: b
`)

	output, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "[0, 10] - [12, 8]", "holes step prints the fragmented map")
	assert.Contains(t, output, "region: 20 words x 8 bytes, 0 in use")
	assert.Contains(t, output, "holes: [0, 20]", "final state is fully coalesced")
	assert.Contains(t, output, "partitions: (none)")
}

func TestRunScenario_DumpStep(t *testing.T) {
	resetFlags()
	quiet = true

	mapPath := filepath.Join(t.TempDir(), "memmap.txt")
	path := writeScenario(t, fmt.Sprintf(`
word_size: 4
steps:
  - op: init
    words: 12
  - op: alloc
    bytes: 16
  - op: dump
    file: %s
`, mapPath))

	_, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.NoError(t, err)

	got, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	assert.Equal(t, "[4, 8]", string(got))
}

func TestRunScenario_WantFail(t *testing.T) {
	resetFlags()
	quiet = true

	path := writeScenario(t, `
word_size: 8
steps:
  - op: init
    words: 4
  - op: alloc
    bytes: 0
    want_fail: true
  - op: alloc
    bytes: 1000
    want_fail: true
  - op: alloc
    bytes: 8
`)

	_, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	assert.NoError(t, err, "expected failures are tolerated")
}

func TestRunScenario_WantFailButSucceeds(t *testing.T) {
	resetFlags()
	quiet = true

	path := writeScenario(t, `
word_size: 8
steps:
  - op: init
    words: 4
  - op: alloc
    bytes: 8
    want_fail: true
`)

	_, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected failure")
}

func TestRunScenario_UnknownRef(t *testing.T) {
	resetFlags()
	quiet = true

	path := writeScenario(t, `
word_size: 8
steps:
  - op: init
    words: 4
  - op: free
    ref: ghost
`)

	_, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no allocation named "ghost"`)
}

func TestRunScenario_StrategySwitch(t *testing.T) {
	resetFlags()

	path := writeScenario(t, `
word_size: 1
steps:
  - op: init
    words: 20
  - op: alloc
    bytes: 10
    as: a
  - op: alloc
    bytes: 2
    as: b
  - op: free
    ref: a
  - op: strategy
    name: worst-fit
  - op: alloc
    bytes: 1
  - op: holes
`)

	output, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "[1, 9] - [12, 8]", "worst fit carved the larger hole")
}

func TestRunScenario_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	runStats = true

	path := writeScenario(t, `
word_size: 8
steps:
  - op: init
    words: 20
  - op: alloc
    bytes: 80
`)

	output, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, output, `"words": 20`)
	assert.Contains(t, output, `"word_size": 8`)
	assert.Contains(t, output, `"alloc_calls": 1`)
	assert.Contains(t, output, `"words_in_use": 10`)
}

func TestRunScenario_BitmapStep(t *testing.T) {
	resetFlags()

	path := writeScenario(t, `
word_size: 1
steps:
  - op: init
    words: 10
  - op: alloc
    bytes: 3
  - op: bitmap
`)

	output, err := captureOutput(t, func() error {
		return runScenario([]string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "0200e000", "count prefix then words 0..2 in the high bits")
}
