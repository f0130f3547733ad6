package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/table"
	"github.com/specialistvlad/lazyframe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inputCSV = "A,B,C\n1,4,7\n2,5,8\n3,6,9\n"

const pipelineHCL = `
scalar "S" {
  value = 10
}

scalar "S2" {
  value = 5
}

task "D" {
  function = "add_scalar"
  args     = { series = A, scalar_to_add = S }
}

task "E" {
  function = "multiply"
  args     = { series1 = B, series2 = D }
}

task "F" {
  function = "subtract_scalar"
  args     = { series = C, scalar_to_subtract = S2 }
}

task "G" {
  function = "multiply"
  args     = { series1 = E, series2 = F }
}
`

// setupAppTest writes the scenario files and builds an app with cfg's paths
// pointing at them.
func setupAppTest(t *testing.T, cfg Config, extra map[string]string) (*App, *bytes.Buffer, *testutil.SafeBuffer, string) {
	t.Helper()

	files := map[string]string{
		"input.csv":         inputCSV,
		"pipeline/main.hcl": pipelineHCL,
	}
	for k, v := range extra {
		files[k] = v
	}
	dir := testutil.WriteFiles(t, files)

	cfg.PipelinePaths = []string{filepath.Join(dir, "pipeline")}
	cfg.InputPath = filepath.Join(dir, "input.csv")
	cfg.LogLevel = "debug"
	if cfg.OutputPath != "" {
		cfg.OutputPath = filepath.Join(dir, cfg.OutputPath)
	}
	config, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("LAZYFRAME_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return NewApp(out, logs, config), out, logs, dir
}

func TestRunWritesDerivedColumns(t *testing.T) {
	a, out, logs, _ := setupAppTest(t, Config{}, nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "S,S2,D,E,F,G\n10,5,11,44,2,88\n10,5,12,60,3,180\n10,5,13,78,4,312\n", out.String())
	assert.Contains(t, logs.String(), "Run finished")
}

func TestRunSelectedColumns(t *testing.T) {
	a, out, _, _ := setupAppTest(t, Config{Columns: []string{"G", "A"}}, nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "G,A\n88,1\n180,2\n312,3\n", out.String())
}

func TestRunUsesOutputBlock(t *testing.T) {
	a, out, _, _ := setupAppTest(t, Config{}, map[string]string{
		"pipeline/output.hcl": `output { columns = ["G"] }`,
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "G\n88\n180\n312\n", out.String())
}

func TestRunWritesXLSX(t *testing.T) {
	a, out, _, dir := setupAppTest(t, Config{OutputPath: "result.xlsx", Columns: []string{"G"}}, nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, out.String())

	result, err := table.Read(filepath.Join(dir, "result.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, []table.Column{{Name: "G", Values: []float64{88, 180, 312}}}, result.Columns)
}

func TestRunPlanOnly(t *testing.T) {
	a, out, _, _ := setupAppTest(t, Config{PlanOnly: true}, nil)

	require.NoError(t, a.Run(context.Background()))
	want := "1\tinput\tA\n2\tinput\tB\n3\tinput\tC\n4\tscalar\tS\n5\tscalar\tS2\n" +
		"6\ttask\tD\n7\ttask\tE\n8\ttask\tF\n9\ttask\tG\n"
	assert.Equal(t, want, out.String())
}

func TestRunReportsCycles(t *testing.T) {
	a, _, _, _ := setupAppTest(t, Config{}, map[string]string{
		"pipeline/cycle.hcl": `
task "X" {
  function = "cumsum"
  args     = { series = Y }
}

task "Y" {
  function = "cumsum"
  args     = { series = X }
}
`,
	})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dagerr.ErrCyclicDependency)
	assert.Contains(t, err.Error(), "X -> Y -> X")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	_, err = NewConfig(Config{PipelinePaths: []string{"p"}, OutputPath: "out.json"})
	assert.ErrorContains(t, err, "unsupported table file")

	cfg, err := NewConfig(Config{PipelinePaths: []string{"p"}, InputPath: "in.XLSX"})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestNewAppPanicsOnDuplicateModules(t *testing.T) {
	cfg, err := NewConfig(Config{PipelinePaths: []string{"p"}})
	require.NoError(t, err)
	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, append(coreModules, coreModules[0])...)
	})
}
