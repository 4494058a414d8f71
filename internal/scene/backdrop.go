package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const backdropScale = 500

// backdrop is a large cube around the camera shaded with a vertical gradient, so the
// board floats in a dark room instead of a flat clear color. GPU loading is deferred to
// the first draw so it runs after the window/OpenGL context exists.
type backdrop struct {
	mesh      rl.Mesh
	mtl       rl.Material
	shader    rl.Shader
	camPosLoc int32
	loaded    bool
	failed    bool
}

const (
	backdropVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	backdropFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float h = clamp(dir.y * 0.5 + 0.5, 0.0, 1.0);
  vec3 floorColor = vec3(0.02, 0.04, 0.03);
  vec3 skyColor = vec3(0.07, 0.07, 0.08);
  vec3 c = mix(floorColor, skyColor, smoothstep(0.3, 0.8, h));
  float band = exp(-pow((h - 0.5) * 14.0, 2.0));
  c += vec3(0.0, 0.12, 0.08) * band;
  finalColor = vec4(c, 1.0);
}
`
)

func (b *backdrop) ensureLoaded() {
	if b.loaded || b.failed {
		return
	}
	shader := rl.LoadShaderFromMemory(backdropVS, backdropFS)
	if !rl.IsShaderValid(shader) {
		b.failed = true
		return
	}
	b.shader = shader
	b.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	b.mesh = rl.GenMeshCube(1, 1, 1)
	b.mtl = rl.LoadMaterialDefault()
	b.mtl.Shader = shader
	b.loaded = true
}

// draw renders the cube centered on the camera without writing depth.
func (b *backdrop) draw(camPos rl.Vector3) {
	if !b.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	if b.camPosLoc >= 0 {
		rl.SetShaderValueV(b.shader, b.camPosLoc, []float32{camPos.X, camPos.Y, camPos.Z}, rl.ShaderUniformVec3, 1)
	}
	transform := rl.MatrixMultiply(
		rl.MatrixScale(backdropScale, backdropScale, backdropScale),
		rl.MatrixTranslate(camPos.X, camPos.Y, camPos.Z),
	)
	rl.DrawMesh(b.mesh, b.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (b *backdrop) unload() {
	if !b.loaded {
		return
	}
	rl.UnloadMesh(&b.mesh)
	rl.UnloadShader(b.shader)
	b.loaded = false
}
