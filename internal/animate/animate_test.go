package animate

import (
	"testing"

	"motherboard/internal/board"
	"motherboard/internal/content"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func world(t *testing.T) *board.World {
	t.Helper()
	reg, err := content.Load()
	require.NoError(t, err)
	return board.Assemble(reg, texture.NewGenerator(1), board.Options{})
}

func TestBobPhaseDependsOnIndexDifference(t *testing.T) {
	p := DefaultParams()
	p.BobPhase = 0.7
	p.BobSpeed = 1.3

	// Entry i runs ahead of entry j by Phase*(i-j) radians, whatever the absolute time.
	for _, tt := range []float64{0, 0.5, 3, 17.25} {
		for _, pair := range [][2]int{{1, 0}, {3, 1}, {5, 2}, {2, 5}} {
			i, j := pair[0], pair[1]
			lead := float64(p.BobPhase) * float64(i-j) / float64(p.BobSpeed)
			assert.InDelta(t, p.Bob(i, tt), p.Bob(j, tt+lead), 1e-5, "i=%d j=%d t=%v", i, j, tt)
		}
	}
}

func TestBobBounds(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < 6; i++ {
		for tt := 0.0; tt < 10; tt += 0.37 {
			assert.LessOrEqual(t, abs(p.Bob(i, tt)), p.BobAmplitude+1e-6)
		}
	}
	assert.InDelta(t, 0, p.Bob(0, 0), 1e-6)
}

func TestOrbitStaysOnCircle(t *testing.T) {
	p := DefaultParams()
	for tt := 0.0; tt < 120; tt += 3.3 {
		pos := p.Orbit(tt)
		assert.InDelta(t, p.OrbitRadius*p.OrbitRadius, pos.X*pos.X+pos.Z*pos.Z, 1e-2)
		assert.Equal(t, p.OrbitHeight, pos.Y)
	}
	assert.InDelta(t, p.OrbitRadius, p.Orbit(0).X, 1e-6)
}

func TestTickBobsFromOriginalY(t *testing.T) {
	w := world(t)
	cam := rl.Camera3D{Position: rl.NewVector3(0, 10, 15), Target: rl.NewVector3(1, 1, 1)}
	a := New(w, &cam, DefaultParams())

	original := make([]float32, w.Len())
	for i, e := range w.Entries() {
		original[i] = e.OriginalY
	}

	for _, tt := range []float64{0.1, 2.5, 2.5, 9.9, 0.1} {
		a.Tick(tt)
		for i, e := range w.Entries() {
			assert.Equal(t, original[i], e.OriginalY)
			assert.InDelta(t, e.OriginalY+a.Params.Bob(i, tt), e.Root.Position.Y, 1e-6)
		}
		assert.Equal(t, rl.Vector3Zero(), cam.Target)
		assert.InDelta(t, a.Params.OrbitRadius*a.Params.OrbitRadius, cam.Position.X*cam.Position.X+cam.Position.Z*cam.Position.Z, 1e-2)
	}
	assert.Equal(t, uint64(5), a.Ticks())
}

func TestTickIsRestartable(t *testing.T) {
	w := world(t)
	var cam rl.Camera3D
	a := New(w, &cam, DefaultParams())

	a.Tick(4.2)
	first := make([]float32, w.Len())
	for i, e := range w.Entries() {
		first[i] = e.Root.Position.Y
	}
	firstCam := cam.Position

	a.Tick(100)
	a.Tick(4.2)
	for i, e := range w.Entries() {
		assert.Equal(t, first[i], e.Root.Position.Y)
	}
	assert.Equal(t, firstCam, cam.Position)
}

func TestFansAccumulate(t *testing.T) {
	w := world(t)
	var cam rl.Camera3D
	p := DefaultParams()
	a := New(w, &cam, p)

	fans := w.Fans()
	require.NotEmpty(t, fans)
	start := make([]float32, len(fans))
	for i, f := range fans {
		start[i] = f.Rotation.Y
	}

	clock := ClockFunc(func() float64 { return 1 })
	for i := 0; i < 10; i++ {
		a.Step(clock)
	}
	for i, f := range fans {
		assert.InDelta(t, start[i]+10*p.FanStep, f.Rotation.Y, 1e-5)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
