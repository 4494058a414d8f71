// Package scene draws the assembled board with a perspective camera. It owns the camera,
// the viewport the camera projects into, and the GPU-side primitive cache.
package scene

import (
	"motherboard/internal/board"
	"motherboard/internal/object"
	"motherboard/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	highlightPad   = 0.15
	highlightAlpha = 220
)

// DefaultPointLights are the green, blue and pink glow lights over the board.
func DefaultPointLights() []primitives.PointLight {
	return []primitives.PointLight{
		primitives.NewPointLight(0, 2, 0, 0x00ff00, 2, 10),
		primitives.NewPointLight(-10, 2, -5, 0x0088ff, 1, 15),
		primitives.NewPointLight(10, 1, 5, 0xff0088, 1, 15),
	}
}

// Background is the clear color behind the backdrop.
var Background = rl.NewColor(17, 17, 17, 255)

// Scene holds a 3D camera and draws the board world.
type Scene struct {
	Camera   rl.Camera3D
	Viewport Viewport
	// LightDir points from the scene toward the key light.
	LightDir [3]float32
	// PointLights add coloured glow around the sections.
	PointLights []primitives.PointLight

	world    *board.World
	prims    *primitives.Registry
	backdrop backdrop

	selected    int
	hasSelected bool
	accent      rl.Color
}

// New returns a scene for w with a perspective camera of the given vertical field of view
// (degrees), projecting into a width x height viewport. No GPU work happens until Draw.
func New(w *board.World, fovy float32, width, height int) *Scene {
	s := &Scene{
		world:    w,
		prims:    primitives.NewRegistry(),
		LightDir: [3]float32{5, 10, 7},

		PointLights: DefaultPointLights(),
	}
	s.Camera.Position = rl.NewVector3(0, 10, 15)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.Viewport.Resize(width, height)
	return s
}

// Resize updates the viewport after the window changed size.
func (s *Scene) Resize(width, height int) {
	s.Viewport.Resize(width, height)
}

// Aspect returns the current projection aspect ratio.
func (s *Scene) Aspect() float32 {
	return s.Viewport.Aspect()
}

// Highlight outlines entry i in accent color. ok == false clears the outline.
func (s *Scene) Highlight(i int, accent rl.Color, ok bool) {
	s.selected, s.accent, s.hasSelected = i, accent, ok
}

// Draw renders the backdrop, the board, its filler and every entry. Call after
// ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	s.backdrop.ensureLoaded()

	rl.BeginMode3D(s.Camera)
	s.backdrop.draw(s.Camera.Position)
	s.prims.Begin(s.Camera.Position, s.LightDir, s.PointLights)

	identity := rl.MatrixIdentity()
	s.drawTree(s.world.Base, identity)
	s.drawTree(s.world.Filler, identity)
	for _, e := range s.world.Entries() {
		s.drawTree(e.Root, identity)
	}
	if s.hasSelected {
		s.drawHighlight()
	}
	rl.EndMode3D()
}

func (s *Scene) drawTree(root *object.Object, parent rl.Matrix) {
	root.Walk(parent, func(n *object.Object, world rl.Matrix) bool {
		if n.Shape != object.Group {
			s.prims.Draw(n.Shape, world, n.Size, n.Material)
		}
		return true
	})
}

func (s *Scene) drawHighlight() {
	if s.selected < 0 || s.selected >= s.world.Len() {
		return
	}
	box, ok := object.Bounds(s.world.Entry(s.selected).Root, rl.MatrixIdentity())
	if !ok {
		return
	}
	pad := rl.NewVector3(highlightPad, highlightPad, highlightPad)
	box.Min = rl.Vector3Subtract(box.Min, pad)
	box.Max = rl.Vector3Add(box.Max, pad)
	c := s.accent
	c.A = highlightAlpha
	rl.DrawBoundingBox(box, c)
}

// Unload releases GPU resources. Call before closing the window.
func (s *Scene) Unload() {
	s.prims.Unload()
	s.backdrop.unload()
}
