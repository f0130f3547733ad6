package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prices.csv")
	pipelineFile := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(input, []byte("Qty,Unit Price\n2,1.5\n4,0.25\n"), 0600))
	require.NoError(t, os.WriteFile(pipelineFile, []byte(`
task "Total" {
  function = "multiply"
  args     = { series1 = Qty, series2 = node["Unit Price"] }
}

task "Running" {
  function = "cumsum"
  args     = { series = Total }
}
`), 0600))

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := run(out, errOut, []string{"-input", input, "-log-level", "debug", pipelineFile})

	require.NoError(t, err, errOut.String())
	require.Equal(t, "Total,Running\n3,3\n1,4\n", out.String())
	require.Contains(t, errOut.String(), "Pipeline loaded")
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_PipelineError(t *testing.T) {
	dir := t.TempDir()
	pipelineFile := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(pipelineFile, []byte(`task "D" {`), 0600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{pipelineFile})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}
