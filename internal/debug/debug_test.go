package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaysOffByDefault(t *testing.T) {
	d := New(func() string { return "Picks: 1 hit / 0 miss  Meshes: 10" })
	d.refresh()
	assert.Empty(t, d.Lines())
}

func TestStatsLineRefreshesOnInterval(t *testing.T) {
	calls := 0
	d := New(func() string {
		calls++
		return "stats"
	})
	d.SetShowStats(true)
	d.SetShowMemAlloc(true)

	d.refresh()
	lines := d.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Mem: ")
	assert.Equal(t, "stats", lines[1])
	assert.Equal(t, 1, calls)

	for i := 0; i < updateInterval-2; i++ {
		d.refresh()
	}
	assert.Equal(t, 1, calls)
	d.refresh()
	assert.Equal(t, 2, calls)

	d.SetShowStats(false)
	assert.Len(t, d.Lines(), 1)
}
