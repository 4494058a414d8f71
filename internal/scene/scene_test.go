package scene

import (
	"testing"

	"motherboard/internal/board"
	"motherboard/internal/content"
	"motherboard/internal/primitives"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportResize(t *testing.T) {
	var v Viewport
	assert.Equal(t, float32(1), v.Aspect())

	v.Resize(800, 600)
	assert.InDelta(t, 4.0/3.0, v.Aspect(), 1e-6)

	v.Resize(1600, 900)
	assert.Equal(t, Viewport{Width: 1600, Height: 900}, v)
	assert.InDelta(t, 16.0/9.0, v.Aspect(), 1e-6)

	v.Resize(0, 0)
	assert.Equal(t, Viewport{Width: 1600, Height: 900}, v, "minimized window keeps the last size")
}

func TestNewSceneCamera(t *testing.T) {
	reg, err := content.Load()
	require.NoError(t, err)
	w := board.Assemble(reg, texture.NewGenerator(1), board.Options{})

	s := New(w, 75, 800, 600)
	assert.Equal(t, float32(75), s.Camera.Fovy)
	assert.Equal(t, rl.Vector3Zero(), s.Camera.Target)
	assert.Equal(t, rl.CameraPerspective, s.Camera.Projection)

	s.Resize(1600, 900)
	assert.Equal(t, 1600, s.Viewport.Width)
	assert.Equal(t, 900, s.Viewport.Height)
	assert.InDelta(t, 16.0/9.0, s.Aspect(), 1e-6)
}

func TestNewSceneLights(t *testing.T) {
	reg, err := content.Load()
	require.NoError(t, err)
	s := New(board.Assemble(reg, texture.NewGenerator(1), board.Options{}), 75, 800, 600)

	require.Len(t, s.PointLights, 3)
	assert.LessOrEqual(t, len(s.PointLights), primitives.MaxPointLights)

	green := s.PointLights[0]
	assert.Equal(t, rl.NewVector3(0, 2, 0), green.Position)
	assert.Equal(t, rl.NewColor(0, 255, 0, 255), green.Color)
	assert.Equal(t, float32(2), green.Intensity)
	assert.Equal(t, float32(10), green.Range)

	assert.Equal(t, rl.NewColor(0, 136, 255, 255), s.PointLights[1].Color)
	assert.Equal(t, rl.NewVector3(-10, 2, -5), s.PointLights[1].Position)
	assert.Equal(t, rl.NewColor(255, 0, 136, 255), s.PointLights[2].Color)
	assert.Equal(t, float32(15), s.PointLights[2].Range)

	// Falloff reaches zero at the light range.
	assert.Greater(t, green.Contribution(rl.NewVector3(0, 1, 0)), float32(0))
	assert.Zero(t, green.Contribution(rl.NewVector3(20, 1, 0)))
}
