package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# viewer overrides
MOBO_WIDTH=1600
export MOBO_TITLE="Board CV"
MOBO_LOG_LEVEL='debug'
MOBO_SEED=9
OTHER_KEY=ignored
not a pair
`), 0o644))

	// Existing variables win over the file. t.Setenv restores both after the test.
	t.Setenv("MOBO_SEED", "3")
	t.Setenv("MOBO_WIDTH", "")
	require.NoError(t, os.Unsetenv("MOBO_WIDTH"))
	t.Setenv("MOBO_TITLE", "")
	require.NoError(t, os.Unsetenv("MOBO_TITLE"))
	t.Setenv("MOBO_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("MOBO_LOG_LEVEL"))

	n, err := Load(path, "MOBO_")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "1600", os.Getenv("MOBO_WIDTH"))
	assert.Equal(t, "Board CV", os.Getenv("MOBO_TITLE"))
	assert.Equal(t, "debug", os.Getenv("MOBO_LOG_LEVEL"))
	assert.Equal(t, "3", os.Getenv("MOBO_SEED"))
	_, found := os.LookupEnv("OTHER_KEY")
	assert.False(t, found)
}

func TestLoadMissingFile(t *testing.T) {
	n, err := Load(filepath.Join(t.TempDir(), "nope.env"), "MOBO_")
	require.NoError(t, err)
	assert.Zero(t, n)
}
