package object

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestWalkComposesParentTransforms(t *testing.T) {
	leaf := NewBox("leaf", 1, 1, 1, Solid(rl.Red)).At(1, 0, 0)
	root := NewGroup("root").At(0, 2, 0).Add(
		NewGroup("spin").Rotated(0, math.Pi/2, 0).Add(leaf),
	)

	var got rl.Vector3
	root.Walk(rl.MatrixIdentity(), func(n *Object, world rl.Matrix) bool {
		if n == leaf {
			got = rl.Vector3Transform(rl.Vector3Zero(), world)
		}
		return true
	})
	// +X rotated a quarter turn about Y lands on -Z (right-handed).
	assertVec(t, rl.NewVector3(0, 2, -1), got)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := NewGroup("root").Add(NewGroup("a").Add(NewBox("hidden", 1, 1, 1, Material{})))
	var seen []string
	root.Walk(rl.MatrixIdentity(), func(n *Object, _ rl.Matrix) bool {
		seen = append(seen, n.Name)
		return n.Name != "a"
	})
	assert.Equal(t, []string{"root", "a"}, seen)
}

func TestLocalBoundsPerShape(t *testing.T) {
	tests := []struct {
		obj  *Object
		half rl.Vector3
	}{
		{NewBox("b", 2, 4, 6, Material{}), rl.NewVector3(1, 2, 3)},
		{NewCylinder("c", 0.5, 2, Material{}), rl.NewVector3(0.5, 1, 0.5)},
		{NewPlane("p", 4, 2, Material{}), rl.NewVector3(2, planeThickness/2, 1)},
		{NewTorus("t", 1, 0.25, Material{}), rl.NewVector3(1.25, 1.25, 0.25)},
		{NewSphere("s", 3, Material{}), rl.NewVector3(3, 3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.obj.Shape.String(), func(t *testing.T) {
			b, ok := tt.obj.LocalBounds()
			require.True(t, ok)
			assertVec(t, tt.half, b.Max)
			assertVec(t, rl.Vector3Negate(tt.half), b.Min)
		})
	}

	_, ok := NewGroup("g").LocalBounds()
	assert.False(t, ok)
}

func TestBoundsFollowsRotationAndTranslation(t *testing.T) {
	root := NewGroup("root").At(5, 0, 0).Add(
		NewBox("slab", 4, 1, 2, Material{}).Rotated(0, math.Pi/2, 0),
	)
	b, ok := Bounds(root, rl.MatrixIdentity())
	require.True(t, ok)
	assertVec(t, rl.NewVector3(4, -0.5, -2), b.Min)
	assertVec(t, rl.NewVector3(6, 0.5, 2), b.Max)

	_, ok = Bounds(NewGroup("empty"), rl.MatrixIdentity())
	assert.False(t, ok)
}

func TestFindHelpers(t *testing.T) {
	fanA := NewGroup("fan-a").Tagged("fan")
	fanB := NewGroup("fan-b").Tagged("fan")
	root := NewGroup("gpu").Add(
		NewBox("body", 1, 1, 1, Material{}),
		fanA,
		NewGroup("shroud").Add(fanB),
	)
	assert.Equal(t, []*Object{fanA, fanB}, root.FindAll("fan"))
	assert.Same(t, fanB, root.FindName("fan-b"))
	assert.Nil(t, root.FindName("missing"))
	assert.Equal(t, 1, root.Count())
}

func TestZeroScaleIsIdentity(t *testing.T) {
	o := NewBox("b", 1, 1, 1, Material{}).At(1, 2, 3)
	p := rl.Vector3Transform(rl.NewVector3(1, 1, 1), o.Local())
	assertVec(t, rl.NewVector3(2, 3, 4), p)
}
