// Package object is the scene graph used by the viewer: a tree of primitive shapes with
// local transforms and simple materials. It carries no GPU state apart from lazily
// uploaded textures; drawing lives in the scene and primitives packages.
package object

import (
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape selects the primitive mesh drawn for an object. Group draws nothing and only
// carries a transform for its children.
type Shape int

const (
	Group Shape = iota
	Box
	Cylinder
	Plane
	Torus
	Sphere
)

func (s Shape) String() string {
	switch s {
	case Group:
		return "group"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Plane:
		return "plane"
	case Torus:
		return "torus"
	case Sphere:
		return "sphere"
	}
	return "unknown"
}

// Material is the surface of a shape. Emissive is added after lighting (alpha 0 = none).
// Texture, when set, is multiplied by Color.
type Material struct {
	Color    rl.Color
	Emissive rl.Color
	Texture  *texture.Texture
}

// Solid returns an untextured material.
func Solid(c rl.Color) Material {
	return Material{Color: c}
}

// Glowing returns a material that emits e on top of base color c.
func Glowing(c, e rl.Color) Material {
	return Material{Color: c, Emissive: e}
}

// Textured returns a material sampling tex, tinted white.
func Textured(tex *texture.Texture) Material {
	return Material{Color: rl.White, Texture: tex}
}

// Object is one node of the scene graph.
//
// Size is interpreted per shape:
//   - Box: width, height, depth
//   - Cylinder: X = radius, Y = height (centered on the origin)
//   - Plane: X = width, Z = depth, lying in XZ facing +Y
//   - Torus: X = ring radius, Y = tube radius, lying in XY facing +Z
//   - Sphere: X = radius
type Object struct {
	Name     string
	Tag      string
	Shape    Shape
	Size     rl.Vector3
	Material Material

	Position rl.Vector3
	Rotation rl.Vector3 // Euler XYZ, radians
	Scale    rl.Vector3 // zero components are treated as 1

	Children []*Object
}

// NewGroup returns an empty transform node.
func NewGroup(name string) *Object {
	return &Object{Name: name, Shape: Group}
}

// NewBox returns a box of the given dimensions centered on its origin.
func NewBox(name string, w, h, d float32, m Material) *Object {
	return &Object{Name: name, Shape: Box, Size: rl.NewVector3(w, h, d), Material: m}
}

// NewCylinder returns an upright cylinder centered on its origin.
func NewCylinder(name string, radius, height float32, m Material) *Object {
	return &Object{Name: name, Shape: Cylinder, Size: rl.NewVector3(radius, height, radius), Material: m}
}

// NewPlane returns a flat quad in XZ facing +Y.
func NewPlane(name string, w, d float32, m Material) *Object {
	return &Object{Name: name, Shape: Plane, Size: rl.NewVector3(w, 0, d), Material: m}
}

// NewTorus returns a ring in XY facing +Z. Rotate by π/2 about X to lay it flat.
func NewTorus(name string, radius, tube float32, m Material) *Object {
	return &Object{Name: name, Shape: Torus, Size: rl.NewVector3(radius, tube, 0), Material: m}
}

// NewSphere returns a sphere centered on its origin.
func NewSphere(name string, radius float32, m Material) *Object {
	return &Object{Name: name, Shape: Sphere, Size: rl.NewVector3(radius, radius, radius), Material: m}
}

// Add appends children and returns o for chaining.
func (o *Object) Add(children ...*Object) *Object {
	o.Children = append(o.Children, children...)
	return o
}

// At sets the local position and returns o.
func (o *Object) At(x, y, z float32) *Object {
	o.Position = rl.NewVector3(x, y, z)
	return o
}

// Rotated sets the local Euler rotation (radians) and returns o.
func (o *Object) Rotated(x, y, z float32) *Object {
	o.Rotation = rl.NewVector3(x, y, z)
	return o
}

// Tagged sets the tag and returns o.
func (o *Object) Tagged(tag string) *Object {
	o.Tag = tag
	return o
}

// Local returns the object's transform relative to its parent: scale, then rotate,
// then translate.
func (o *Object) Local() rl.Matrix {
	sx, sy, sz := o.Scale.X, o.Scale.Y, o.Scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixScale(sx, sy, sz)
	if o.Rotation.X != 0 || o.Rotation.Y != 0 || o.Rotation.Z != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(o.Rotation))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(o.Position.X, o.Position.Y, o.Position.Z))
}

// Walk visits o and its descendants depth-first with each node's world matrix, given the
// parent's world matrix. Returning false from fn skips that node's children.
func (o *Object) Walk(parent rl.Matrix, fn func(n *Object, world rl.Matrix) bool) {
	world := rl.MatrixMultiply(o.Local(), parent)
	if !fn(o, world) {
		return
	}
	for _, c := range o.Children {
		c.Walk(world, fn)
	}
}

// Each visits o and every descendant without computing transforms.
func (o *Object) Each(fn func(n *Object)) {
	fn(o)
	for _, c := range o.Children {
		c.Each(fn)
	}
}

// FindAll returns every descendant (including o) carrying tag.
func (o *Object) FindAll(tag string) []*Object {
	var out []*Object
	o.Each(func(n *Object) {
		if n.Tag == tag {
			out = append(out, n)
		}
	})
	return out
}

// FindName returns the first node named name in depth-first order, or nil.
func (o *Object) FindName(name string) *Object {
	if o.Name == name {
		return o
	}
	for _, c := range o.Children {
		if n := c.FindName(name); n != nil {
			return n
		}
	}
	return nil
}

// Count returns the number of drawable (non-group) nodes in the subtree.
func (o *Object) Count() int {
	n := 0
	o.Each(func(c *Object) {
		if c.Shape != Group {
			n++
		}
	})
	return n
}
