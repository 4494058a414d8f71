package object

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// planeThickness gives planes a pickable volume.
const planeThickness = 0.01

// LocalBounds returns the shape's axis-aligned box in its own space. Groups have empty
// bounds and ok == false.
func (o *Object) LocalBounds() (rl.BoundingBox, bool) {
	s := o.Size
	var h rl.Vector3
	switch o.Shape {
	case Box:
		h = rl.NewVector3(s.X/2, s.Y/2, s.Z/2)
	case Cylinder:
		h = rl.NewVector3(s.X, s.Y/2, s.X)
	case Plane:
		h = rl.NewVector3(s.X/2, planeThickness/2, s.Z/2)
	case Torus:
		r := s.X + s.Y
		h = rl.NewVector3(r, r, s.Y)
	case Sphere:
		h = rl.NewVector3(s.X, s.X, s.X)
	default:
		return rl.BoundingBox{}, false
	}
	return rl.NewBoundingBox(rl.Vector3Negate(h), h), true
}

// Bounds returns the world-space box enclosing every shape under o, with o placed under
// parent. ok is false when the subtree has no shapes.
func Bounds(o *Object, parent rl.Matrix) (rl.BoundingBox, bool) {
	minV := rl.NewVector3(math.MaxFloat32, math.MaxFloat32, math.MaxFloat32)
	maxV := rl.NewVector3(-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32)
	found := false
	o.Walk(parent, func(n *Object, world rl.Matrix) bool {
		local, ok := n.LocalBounds()
		if !ok {
			return true
		}
		found = true
		for _, c := range corners(local) {
			p := rl.Vector3Transform(c, world)
			minV = rl.Vector3Min(minV, p)
			maxV = rl.Vector3Max(maxV, p)
		}
		return true
	})
	if !found {
		return rl.BoundingBox{}, false
	}
	return rl.NewBoundingBox(minV, maxV), true
}

func corners(b rl.BoundingBox) [8]rl.Vector3 {
	return [8]rl.Vector3{
		rl.NewVector3(b.Min.X, b.Min.Y, b.Min.Z),
		rl.NewVector3(b.Max.X, b.Min.Y, b.Min.Z),
		rl.NewVector3(b.Min.X, b.Max.Y, b.Min.Z),
		rl.NewVector3(b.Max.X, b.Max.Y, b.Min.Z),
		rl.NewVector3(b.Min.X, b.Min.Y, b.Max.Z),
		rl.NewVector3(b.Max.X, b.Min.Y, b.Max.Z),
		rl.NewVector3(b.Min.X, b.Max.Y, b.Max.Z),
		rl.NewVector3(b.Max.X, b.Max.Y, b.Max.Z),
	}
}
