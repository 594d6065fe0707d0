package gaussian

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	got, err := LoadConfig("testfiles/test.in")
	require.NoError(t, err)
	want := Config{
		InputDir:   "runs",
		OutputDir:  "results",
		Extensions: []string{".log", ".out"},
		Jobs:       2,
	}
	assert.Equal(t, want, got)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig("testfiles/no_such_config.in")
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	got := DefaultConfig()
	assert.Equal(t, ".", got.InputDir)
	assert.Equal(t, "gaussian_analysis_results", got.OutputDir)
	assert.Equal(t, []string{".log", ".out", ".gaussian"}, got.Extensions)
	assert.Equal(t, runtime.NumCPU(), got.Jobs)
}
