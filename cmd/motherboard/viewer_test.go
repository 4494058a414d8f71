package main

import (
	"testing"

	"motherboard/internal/board"
	"motherboard/internal/content"
	"motherboard/internal/logger"
	"motherboard/internal/pick"
	"motherboard/internal/scene"
	"motherboard/internal/texture"
	"motherboard/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOverlay struct{ fps, mem, stats bool }

func (f *fakeOverlay) SetShowFPS(b bool)      { f.fps = b }
func (f *fakeOverlay) SetShowMemAlloc(b bool) { f.mem = b }
func (f *fakeOverlay) SetShowStats(b bool)    { f.stats = b }

func newViewer(t *testing.T) *viewer {
	t.Helper()
	reg, err := content.Load()
	require.NoError(t, err)
	world := board.Assemble(reg, texture.NewGenerator(1), board.DefaultOptions())
	v := &viewer{
		overlay: &fakeOverlay{},
		log:     logger.New(""),
		world:   world,
		scene:   scene.New(world, 75, 800, 600),
		panel:   ui.NewPanel(ui.New()),
	}
	v.ctrl = pick.NewController(world, v, nil)
	return v
}

// topDown looks straight down at the CPU so the pointer at the center hits its die.
func topDown(x, z float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(x, 30, z),
		Target:     rl.NewVector3(x, 0, z),
		Up:         rl.NewVector3(0, 0, -1),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func TestClickComponentShowsPanel(t *testing.T) {
	v := newViewer(t)
	cpu, ok := v.world.Lookup("cpu")
	require.True(t, ok)

	_, hit := v.ctrl.Click(topDown(-10, -8), 1)
	require.True(t, hit)
	assert.True(t, v.panel.Visible())
	assert.Contains(t, v.panel.Text(), "PROFESSIONAL SUMMARY")

	root := v.panel.Node()
	assert.Equal(t, ui.AccentColor(0x0088ff), root.Accent)
	assert.Equal(t, ui.GlowColor(0x0088ff), root.Glow)

	sel, ok := v.ctrl.Selection()
	require.True(t, ok)
	assert.Equal(t, cpu, sel.Index)
}

func TestClickEmptySpaceHidesPanel(t *testing.T) {
	v := newViewer(t)
	require.NoError(t, v.Select("gpu"))
	assert.True(t, v.panel.Visible())

	// Looking up from under the board sees nothing.
	cam := topDown(0, 0)
	cam.Position = rl.NewVector3(0, -5, 0)
	cam.Target = rl.NewVector3(0, -40, 0)
	_, hit := v.ctrl.Click(cam, 1)
	assert.False(t, hit)
	assert.False(t, v.panel.Visible())
	assert.Equal(t, pick.Idle, v.ctrl.State())
}

func TestConsoleView(t *testing.T) {
	v := newViewer(t)

	list := v.Components()
	require.Len(t, list, 6)
	assert.Equal(t, "cpu: PROFESSIONAL SUMMARY", list[0])

	body, ok := v.Content("ram")
	require.True(t, ok)
	assert.Contains(t, body, "TECHNICAL SKILLS")
	assert.Contains(t, body, "70%")
	_, ok = v.Content("floppy")
	assert.False(t, ok)

	assert.Error(t, v.Select("floppy"))
	require.NoError(t, v.Select("usb"))
	assert.Equal(t, "EDUCATION", v.panel.Name())
	v.Close()
	assert.False(t, v.panel.Visible())
	assert.Equal(t, pick.Idle, v.ctrl.State())
}
