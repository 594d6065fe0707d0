package gaussian

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyFile(t *testing.T, src, dst string) {
	t.Helper()
	in, err := os.Open(src)
	require.NoError(t, err)
	defer in.Close()
	out, err := os.Create(dst)
	require.NoError(t, err)
	defer out.Close()
	_, err = io.Copy(out, in)
	require.NoError(t, err)
}

func TestProcessDir(t *testing.T) {
	indir := t.TempDir()
	outdir := filepath.Join(t.TempDir(), "results")
	copyFile(t, "testfiles/h2o.log", filepath.Join(indir, "h2o.log"))
	copyFile(t, "testfiles/malformed.log", filepath.Join(indir, "nh3.out"))
	copyFile(t, "testfiles/nodata.log", filepath.Join(indir, "dead.log"))
	// wrong extension, must be ignored
	copyFile(t, "testfiles/h2o.log", filepath.Join(indir, "h2o.chk"))
	// unreadable input, must be skipped without aborting the batch
	require.NoError(t, os.Symlink(
		filepath.Join(indir, "missing"),
		filepath.Join(indir, "broken.log"),
	))

	cfg := DefaultConfig()
	cfg.InputDir = indir
	cfg.OutputDir = outdir
	results, err := ProcessDir(cfg)
	require.NoError(t, err)

	// h2o.log, nh3.out, and dead.log processed; broken.log and
	// h2o.chk not
	require.Len(t, results, 3)
	assert.Equal(t, "dead.log", results[0].Name)
	assert.False(t, results[0].HasEnergy)
	assert.Equal(t, "h2o.log", results[1].Name)
	assert.True(t, results[1].HasEnergy)
	assert.InDelta(t, -76.408982, results[1].FinalEnergy, 1e-9)
	assert.Equal(t, "nh3.out", results[2].Name)
	assert.InDelta(t, -56.3, results[2].FinalEnergy, 1e-9)

	// four reports per processed file
	reports, err := filepath.Glob(filepath.Join(outdir, "*.txt"))
	require.NoError(t, err)
	assert.Len(t, reports, 12)

	// the empty file still gets placeholder bodies
	freq, err := filepath.Glob(filepath.Join(outdir, "dead_frequencies_*.txt"))
	require.NoError(t, err)
	require.Len(t, freq, 1)
	body, err := os.ReadFile(freq[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "No frequencies found")
}

func TestProcessDirMissingInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = filepath.Join(t.TempDir(), "nope")
	cfg.OutputDir = t.TempDir()
	_, err := ProcessDir(cfg)
	assert.Error(t, err)
}

func TestRecognized(t *testing.T) {
	exts := DefaultConfig().Extensions
	assert.True(t, Recognized("water.log", exts))
	assert.True(t, Recognized("water.OUT", exts))
	assert.True(t, Recognized("water.gaussian", exts))
	assert.False(t, Recognized("water.chk", exts))
	assert.False(t, Recognized("water", exts))
}
