package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFonts(t *testing.T, rels ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range rels {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("font"), 0o644))
	}
	return dir
}

func TestScanDir(t *testing.T) {
	dir := writeFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono/JetBrainsMono.otf", "README.txt")
	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono/JetBrainsMono.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSearchCandidates(t *testing.T) {
	assert.Equal(t, []string{"Inter/Inter-Regular.ttf", "Inter", "Inter/Inter", "Inter/Inter-Regular"}, SearchCandidates("Inter/Inter-Regular.ttf"))
	assert.Equal(t, []string{"Inter"}, SearchCandidates("Inter"))
}

func TestFindFontPrefersRegular(t *testing.T) {
	dir := writeFonts(t, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf")
	path, err := FindFont(dir, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), path)

	_, err = FindFont(dir, "Roboto")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = FindFont(dir, " ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve(t *testing.T) {
	dir := writeFonts(t, "JetBrains_Mono/JetBrainsMono-Regular.ttf")

	path, err := Resolve(dir, "JetBrains Mono")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "JetBrains_Mono", "JetBrainsMono-Regular.ttf"), path)

	direct := filepath.Join(dir, "JetBrains_Mono", "JetBrainsMono-Regular.ttf")
	path, err = Resolve(t.TempDir(), direct)
	require.NoError(t, err)
	assert.Equal(t, direct, path)

	_, err = Resolve(dir, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Resolve(dir, "Comic")
	assert.ErrorIs(t, err, ErrNotFound)
}
