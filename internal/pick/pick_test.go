package pick

import (
	"testing"

	"motherboard/internal/board"
	"motherboard/internal/content"
	"motherboard/internal/object"
	"motherboard/internal/texture"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePanel struct {
	shown     []board.Annotation
	visible   bool
	dismisses int
}

func (f *fakePanel) Present(a board.Annotation) {
	f.shown = append(f.shown, a)
	f.visible = true
}

func (f *fakePanel) Dismiss() {
	f.visible = false
	f.dismisses++
}

type fakeRecorder struct {
	hits, misses int
	visible      bool
}

func (r *fakeRecorder) Pick(hit bool) {
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func (r *fakeRecorder) Panel(visible bool) { r.visible = visible }

func resumeWorld(t *testing.T) (*content.Registry, *board.World) {
	t.Helper()
	reg, err := content.Load()
	require.NoError(t, err)
	return reg, board.Assemble(reg, texture.NewGenerator(1), board.Options{})
}

// topDown looks straight down at (x, z).
func topDown(x, z float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(x, 20, z),
		Target:     rl.NewVector3(x, 0, z),
		Up:         rl.NewVector3(0, 0, -1),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// skyward looks away from the board.
func skyward() rl.Camera3D {
	return rl.Camera3D{
		Position: rl.NewVector3(0, 30, 0),
		Target:   rl.NewVector3(0, 60, 1),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     45,
	}
}

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "z")
}

func TestFromScreen(t *testing.T) {
	assert.Equal(t, Pointer{X: -1, Y: 1}, FromScreen(0, 0, 800, 600))
	assert.Equal(t, Pointer{X: 0, Y: 0}, FromScreen(400, 300, 800, 600))
	assert.Equal(t, Pointer{X: 1, Y: -1}, FromScreen(800, 600, 800, 600))
	assert.Equal(t, Pointer{}, FromScreen(10, 10, 0, 0))
}

func TestRayThroughCenterAndEdge(t *testing.T) {
	cam := rl.Camera3D{
		Position: rl.NewVector3(0, 0, 10),
		Target:   rl.NewVector3(0, 0, 0),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     90,
	}

	center := Ray(cam, 1, Pointer{})
	assertVec(t, cam.Position, center.Position)
	assertVec(t, rl.NewVector3(0, 0, -1), center.Direction)

	edge := Ray(cam, 1, Pointer{X: 1})
	s := 1 / math32.Sqrt(2)
	assertVec(t, rl.NewVector3(s, 0, -s), edge.Direction)

	top := Ray(cam, 2, Pointer{Y: 1})
	assertVec(t, rl.NewVector3(0, s, -s), top.Direction)
}

func TestCastHitsCPUDie(t *testing.T) {
	_, w := resumeWorld(t)
	cpu, ok := w.Lookup("cpu")
	require.True(t, ok)

	hit, ok := Cast(w, rl.NewRay(rl.NewVector3(-10, 20, -8), rl.NewVector3(0, -1, 0)))
	require.True(t, ok)
	assert.Equal(t, cpu, hit.Entry)
	assert.Equal(t, "die", hit.Object.Name)
	assert.InDelta(t, 20-hit.Point.Y, hit.Distance, 1e-3)
}

func TestCastMissesEmptySpace(t *testing.T) {
	_, w := resumeWorld(t)
	_, ok := Cast(w, rl.NewRay(rl.NewVector3(0, 20, 20), rl.NewVector3(0, -1, 0)))
	assert.False(t, ok, "board and filler are not pickable")

	_, ok = Cast(w, rl.NewRay(rl.NewVector3(-10, 20, -8), rl.NewVector3(0, 1, 0)))
	assert.False(t, ok, "hits behind the origin don't count")
}

func TestCastNearestWins(t *testing.T) {
	box := func(name string) func(*texture.Generator) *object.Object {
		return func(*texture.Generator) *object.Object {
			return object.NewGroup(name).Add(object.NewBox("body", 1, 1, 1, object.Solid(rl.Gray)))
		}
	}
	reg, err := content.New(content.Title{}, []content.Descriptor{
		{Type: "far", Position: [3]float32{5, 0, 0}, Builder: box("far")},
		{Type: "near", Position: [3]float32{0, 0, 0}, Builder: box("near")},
	})
	require.NoError(t, err)
	w := board.Assemble(reg, texture.NewGenerator(1), board.Options{})

	hit, ok := Cast(w, rl.NewRay(rl.NewVector3(-10, 0, 0), rl.NewVector3(1, 0, 0)))
	require.True(t, ok)
	assert.Equal(t, 1, hit.Entry)
	assert.InDelta(t, 9.5, hit.Distance, 1e-3)

	hit, ok = Cast(w, rl.NewRay(rl.NewVector3(10, 0, 0), rl.NewVector3(-1, 0, 0)))
	require.True(t, ok)
	assert.Equal(t, 0, hit.Entry)
}

func TestCastRespectsRotation(t *testing.T) {
	reg, err := content.New(content.Title{}, []content.Descriptor{{
		Type:     "slab",
		Position: [3]float32{0, 0, 0},
		Builder: func(*texture.Generator) *object.Object {
			// A long thin bar turned to run along Z.
			return object.NewGroup("slab").Add(object.NewBox("bar", 10, 1, 1, object.Material{}).Rotated(0, math32.Pi/2, 0))
		},
	}})
	require.NoError(t, err)
	w := board.Assemble(reg, texture.NewGenerator(1), board.Options{})

	_, ok := Cast(w, rl.NewRay(rl.NewVector3(0, 10, 4), rl.NewVector3(0, -1, 0)))
	assert.True(t, ok)
	_, ok = Cast(w, rl.NewRay(rl.NewVector3(4, 10, 0), rl.NewVector3(0, -1, 0)))
	assert.False(t, ok)
}

func TestClickShowsCPUContent(t *testing.T) {
	reg, w := resumeWorld(t)
	panel, rec := &fakePanel{}, &fakeRecorder{}
	c := NewController(w, panel, rec)
	require.Equal(t, Idle, c.State())

	c.Move(Pointer{})
	_, ok := c.Click(topDown(-10, -8), 16.0/9)
	require.True(t, ok)

	assert.Equal(t, Showing, c.State())
	require.Len(t, panel.shown, 1)
	cpu, _ := reg.Lookup("cpu")
	assert.Equal(t, cpu.Content, panel.shown[0].Content)
	assert.Equal(t, uint32(0x0088ff), panel.shown[0].Color)
	assert.Contains(t, panel.shown[0].Content, "PROFESSIONAL SUMMARY")
	assert.True(t, panel.visible)
	assert.True(t, rec.visible)
	assert.Equal(t, 1, rec.hits)

	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, "cpu", sel.Type)
}

func TestClickEmptyHides(t *testing.T) {
	_, w := resumeWorld(t)
	panel, rec := &fakePanel{}, &fakeRecorder{}
	c := NewController(w, panel, rec)

	require.True(t, c.Select("gpu"))
	require.Equal(t, Showing, c.State())

	_, ok := c.Click(skyward(), 1)
	assert.False(t, ok)
	assert.Equal(t, Idle, c.State())
	assert.False(t, panel.visible)
	_, ok = c.Selection()
	assert.False(t, ok)

	// Clicking nothing while idle hides again.
	_, ok = c.Click(skyward(), 1)
	assert.False(t, ok)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 2, panel.dismisses)
	assert.Equal(t, 2, rec.misses)
}

func TestMoveDoesNotTransition(t *testing.T) {
	_, w := resumeWorld(t)
	panel := &fakePanel{}
	c := NewController(w, panel, nil)

	c.Move(Pointer{X: 0.5, Y: -0.25})
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, Pointer{X: 0.5, Y: -0.25}, c.Pointer())
	assert.Empty(t, panel.shown)
	assert.Zero(t, panel.dismisses)

	assert.False(t, c.Select("floppy"))
	assert.Equal(t, Idle, c.State())
}
