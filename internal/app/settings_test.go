package app

import (
	"testing"

	"github.com/specialistvlad/lazyframe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	got, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"lazyframe.yaml": `
pipeline: pipelines/
input: data.csv
log:
  level: DEBUG
  format: json
`})
	t.Setenv("LAZYFRAME_LOG_FORMAT", "text")
	t.Setenv("LAZYFRAME_OUTPUT", "out.xlsx")

	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		Pipeline:  "pipelines/",
		Input:     "data.csv",
		Output:    "out.xlsx",
		LogLevel:  "debug",
		LogFormat: "text",
	}, got)
}

func TestLoadSettingsInvalidFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"lazyframe.yaml": "log: [unclosed"})
	_, err := LoadSettings(dir)
	assert.ErrorContains(t, err, "failed to read settings")
}
