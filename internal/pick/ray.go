// Package pick resolves pointer clicks to board entries and drives the selection state
// shown in the overlay panel.
package pick

import (
	"math"

	"motherboard/internal/board"
	"motherboard/internal/object"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip planes used when unprojecting the pointer. They match the scene camera.
const (
	NearPlane = 0.1
	FarPlane  = 1000
)

// Pointer is a position in normalized device coordinates: x and y in [-1, 1], +y up.
type Pointer struct {
	X, Y float32
}

// FromScreen converts window pixel coordinates to a Pointer.
func FromScreen(x, y, width, height float32) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: x/width*2 - 1,
		Y: -(y/height*2 - 1),
	}
}

// Ray returns the world-space ray from the camera through p.
func Ray(cam rl.Camera3D, aspect float32, p Pointer) rl.Ray {
	proj := rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, NearPlane, FarPlane)
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	far := rl.Vector3Unproject(rl.NewVector3(p.X, p.Y, 1), proj, view)
	return rl.NewRay(cam.Position, rl.Vector3Normalize(rl.Vector3Subtract(far, cam.Position)))
}

// Hit is the nearest intersection of a ray with an entry.
type Hit struct {
	Entry    int
	Object   *object.Object
	Point    rl.Vector3
	Distance float32
}

// Cast intersects ray with every shape of every entry and returns the nearest hit. Each
// shape is tested as a box in its own space, so rotated parts are hit exactly.
func Cast(w *board.World, ray rl.Ray) (Hit, bool) {
	best := Hit{Distance: math.MaxFloat32}
	found := false
	for _, e := range w.Entries() {
		e.Root.Walk(rl.MatrixIdentity(), func(n *object.Object, world rl.Matrix) bool {
			box, ok := n.LocalBounds()
			if !ok {
				return true
			}
			p, ok := intersect(ray, box, world)
			if !ok {
				return true
			}
			d := rl.Vector3Distance(ray.Position, p)
			if d < best.Distance {
				owner, _ := w.Owner(n)
				best = Hit{Entry: owner, Object: n, Point: p, Distance: d}
				found = true
			}
			return true
		})
	}
	return best, found
}

// intersect tests ray against box placed by world and returns the world hit point.
func intersect(ray rl.Ray, box rl.BoundingBox, world rl.Matrix) (rl.Vector3, bool) {
	inv := rl.MatrixInvert(world)
	origin := rl.Vector3Transform(ray.Position, inv)
	dir := rl.Vector3Subtract(rl.Vector3Transform(rl.Vector3Add(ray.Position, ray.Direction), inv), origin)

	c := rl.GetRayCollisionBox(rl.NewRay(origin, dir), box)
	if !c.Hit || c.Distance < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Transform(c.Point, world), true
}
