// Package animate advances the cosmetic per-frame state: fan spin, section bobbing and the
// orbiting camera. Time comes from an injectable Clock so a tick can be replayed without a
// window.
package animate

import (
	"motherboard/internal/board"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clock reports elapsed seconds since some fixed origin.
type Clock interface {
	Seconds() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

func (f ClockFunc) Seconds() float64 { return f() }

// Params are the animation constants.
type Params struct {
	FanStep float32 // radians per tick

	BobAmplitude float32
	BobSpeed     float32 // radians per second
	BobPhase     float32 // radians between consecutive entries

	OrbitRadius float32
	OrbitHeight float32
	OrbitSpeed  float32 // radians per second
}

// DefaultParams returns the standard animation.
func DefaultParams() Params {
	return Params{
		FanStep:      0.1,
		BobAmplitude: 0.05,
		BobSpeed:     1,
		BobPhase:     1,
		OrbitRadius:  20,
		OrbitHeight:  10,
		OrbitSpeed:   0.1,
	}
}

// Bob returns the vertical offset of entry i at time t.
func (p Params) Bob(i int, t float64) float32 {
	return p.BobAmplitude * math32.Sin(p.BobSpeed*float32(t)+p.BobPhase*float32(i))
}

// Orbit returns the camera position at time t. The camera always aims at the origin.
func (p Params) Orbit(t float64) rl.Vector3 {
	a := p.OrbitSpeed * float32(t)
	return rl.NewVector3(p.OrbitRadius*math32.Cos(a), p.OrbitHeight, p.OrbitRadius*math32.Sin(a))
}

// Animator applies Params to a world and camera each tick.
type Animator struct {
	Params Params

	world  *board.World
	camera *rl.Camera3D
	ticks  uint64
}

// New returns an animator for w driving cam.
func New(w *board.World, cam *rl.Camera3D, p Params) *Animator {
	return &Animator{Params: p, world: w, camera: cam}
}

// Tick advances one frame at elapsed time t: spin fans, bob entries from their original
// height, then move the camera along its orbit.
func (a *Animator) Tick(t float64) {
	a.ticks++
	for _, f := range a.world.Fans() {
		f.Rotation.Y += a.Params.FanStep
	}
	for _, e := range a.world.Entries() {
		e.Root.Position.Y = e.OriginalY + a.Params.Bob(e.Index, t)
	}
	a.camera.Position = a.Params.Orbit(t)
	a.camera.Target = rl.Vector3Zero()
}

// Step ticks at the clock's current time.
func (a *Animator) Step(c Clock) {
	a.Tick(c.Seconds())
}

// Ticks returns how many ticks have run.
func (a *Animator) Ticks() uint64 {
	return a.ticks
}
