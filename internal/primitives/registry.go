package primitives

import (
	"fmt"

	"motherboard/internal/object"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds a unit mesh and its two materials. texturedMtl is the same mesh drawn
// with an albedo texture.
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
	// offset recenters meshes raylib generates off-origin (cylinder base sits at Y=0).
	offset rl.Vector3
}

// Registry maps shapes to GPU meshes and materials. Meshes and shaders are created on
// first use so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	lit      litShader
	textured litShader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
}

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 24
	torusRadSeg    = 24
	torusSides     = 12
	// torusRatioStep quantizes tube/ring ratios so similar tori share one mesh.
	torusRatioStep = 0.05
)

// NewRegistry returns an empty registry. Nothing touches the GPU until Begin.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.4, 1, 0.3},
	}
}

// Begin sets the camera position, key light direction and point lights for this frame.
// Lights past MaxPointLights are ignored. Call once per frame inside BeginMode3D before
// drawing.
func (r *Registry) Begin(viewPos rl.Vector3, lightDir [3]float32, lights []PointLight) {
	r.ensureShaders()
	r.viewPos = [3]float32{viewPos.X, viewPos.Y, viewPos.Z}
	r.lightDir = lightDir
	points := packPointLights(lights)
	r.lit.setFrame(r.viewPos, r.lightDir, points)
	r.textured.setFrame(r.viewPos, r.lightDir, points)
}

func (r *Registry) ensureShaders() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.lit = loadLitShader(litFS)
	r.textured = loadLitShader(litTexturedFS)
}

func (r *Registry) newCached(mesh rl.Mesh, offset rl.Vector3) cached {
	mtl := rl.LoadMaterialDefault()
	if r.lit.valid() {
		mtl.Shader = r.lit.shader
	}
	texturedMtl := rl.LoadMaterialDefault()
	if r.textured.valid() {
		texturedMtl.Shader = r.textured.shader
	}
	return cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl, offset: offset}
}

// ensure returns the unit mesh for shape, creating it on first use. Tori are keyed by
// their tube/ring ratio since raylib bakes that ratio into the mesh.
func (r *Registry) ensure(shape object.Shape, size rl.Vector3) (cached, rl.Vector3, bool) {
	var key string
	var scale rl.Vector3
	switch shape {
	case object.Box:
		key, scale = "box", size
	case object.Cylinder:
		key, scale = "cylinder", rl.NewVector3(size.X*2, size.Y, size.X*2)
	case object.Plane:
		key, scale = "plane", rl.NewVector3(size.X, 1, size.Z)
	case object.Sphere:
		key, scale = "sphere", rl.NewVector3(size.X*2, size.X*2, size.X*2)
	case object.Torus:
		if size.X <= 0 {
			return cached{}, scale, false
		}
		ratio := quantize(size.Y/size.X, torusRatioStep)
		key, scale = fmt.Sprintf("torus:%.2f", ratio), rl.NewVector3(size.X, size.X, size.X)
		if c, ok := r.cache[key]; ok {
			return c, scale, true
		}
		c := r.newCached(rl.GenMeshTorus(ratio, 2, torusRadSeg, torusSides), rl.Vector3Zero())
		r.cache[key] = c
		return c, scale, true
	default:
		return cached{}, scale, false
	}
	if c, ok := r.cache[key]; ok {
		return c, scale, true
	}
	var c cached
	switch shape {
	case object.Box:
		c = r.newCached(rl.GenMeshCube(1, 1, 1), rl.Vector3Zero())
	case object.Cylinder:
		c = r.newCached(rl.GenMeshCylinder(0.5, 1, cylinderSlices), rl.NewVector3(0, -0.5, 0))
	case object.Plane:
		c = r.newCached(rl.GenMeshPlane(1, 1, 1, 1), rl.Vector3Zero())
	case object.Sphere:
		c = r.newCached(rl.GenMeshSphere(0.5, sphereRings, sphereSlices), rl.Vector3Zero())
	}
	r.cache[key] = c
	return c, scale, true
}

func quantize(v, step float32) float32 {
	q := float32(int(v/step+0.5)) * step
	if q < 0.1 {
		q = 0.1
	}
	if q > 1 {
		q = 1
	}
	return q
}

// Draw draws one shape with the object's world transform and material. Groups and
// unknown shapes are skipped. Must be called between BeginMode3D and EndMode3D, after Begin.
func (r *Registry) Draw(shape object.Shape, world rl.Matrix, size rl.Vector3, m object.Material) {
	c, scale, ok := r.ensure(shape, size)
	if !ok {
		return
	}
	transform := rl.MatrixMultiply(rl.MatrixScale(scale.X, scale.Y, scale.Z), world)
	if c.offset != rl.Vector3Zero() {
		transform = rl.MatrixMultiply(rl.MatrixTranslate(c.offset.X, c.offset.Y, c.offset.Z), transform)
	}

	if m.Texture != nil {
		if tex := m.Texture.GPU(); rl.IsTextureValid(tex) {
			mtl := c.texturedMtl
			rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
			if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
				albedo.Color = m.Color
			}
			r.textured.setEmissive(m.Emissive)
			rl.DrawMesh(c.mesh, mtl, transform)
			return
		}
	}
	mtl := c.mtl
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = m.Color
	}
	r.lit.setEmissive(m.Emissive)
	rl.DrawMesh(c.mesh, mtl, transform)
}

// Unload releases every cached mesh and the shared shaders.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.lit.valid() {
		rl.UnloadShader(r.lit.shader)
	}
	if r.textured.valid() {
		rl.UnloadShader(r.textured.shader)
	}
	r.loaded = false
}
