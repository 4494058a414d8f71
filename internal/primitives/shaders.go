package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform vec3 emissive;
uniform vec3 pointPos[4];
uniform vec3 pointColor[4];
uniform vec2 pointParams[4];
uniform float pointCount;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  for (int i = 0; i < 4; i++) {
    if (float(i) >= pointCount) break;
    vec3 toLight = pointPos[i] - fragPosition;
    float d = length(toLight);
    float att = pow(clamp(1.0 - d / pointParams[i].y, 0.0, 1.0), 2.0);
    float NdotP = max(dot(N, toLight / max(d, 0.0001)), 0.0);
    diffuse += tint.rgb * NdotP * pointColor[i] * pointParams[i].x * att;
  }
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular + emissive, tint.a);
}
`
	// litTexturedFS: litFS with the tint taken from albedoMap * colDiffuse.
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform vec3 emissive;
uniform vec3 pointPos[4];
uniform vec3 pointColor[4];
uniform vec2 pointParams[4];
uniform float pointCount;
uniform sampler2D albedoMap;
out vec4 finalColor;
void main() {
  vec4 tint = texture(albedoMap, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  for (int i = 0; i < 4; i++) {
    if (float(i) >= pointCount) break;
    vec3 toLight = pointPos[i] - fragPosition;
    float d = length(toLight);
    float att = pow(clamp(1.0 - d / pointParams[i].y, 0.0, 1.0), 2.0);
    float NdotP = max(dot(N, toLight / max(d, 0.0001)), 0.0);
    diffuse += tint.rgb * NdotP * pointColor[i] * pointParams[i].x * att;
  }
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular + emissive * tint.a, tint.a);
}
`
)

// defaultAmbient is dim so shadowed faces of the board aren't pure black.
var defaultAmbient = [4]float32{0.22, 0.24, 0.28, 1.0}

var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

const (
	defaultLightIntensity   = float32(0.8)
	defaultSpecularPower    = float32(48.0)
	defaultSpecularStrength = float32(0.4)
)

// litShader caches uniform locations so per-draw updates don't look them up again.
type litShader struct {
	shader       rl.Shader
	viewPos      int32
	lightDir     int32
	ambient      int32
	lightColor   int32
	intensity    int32
	specPower    int32
	specStrength int32
	emissive     int32
	pointPos     int32
	pointColor   int32
	pointParams  int32
	pointCount   int32
}

func loadLitShader(fs string) litShader {
	sh := rl.LoadShaderFromMemory(litVS, fs)
	s := litShader{shader: sh}
	if !rl.IsShaderValid(sh) {
		return s
	}
	s.viewPos = rl.GetShaderLocation(sh, "viewPos")
	s.lightDir = rl.GetShaderLocation(sh, "lightDir")
	s.ambient = rl.GetShaderLocation(sh, "ambient")
	s.lightColor = rl.GetShaderLocation(sh, "lightColor")
	s.intensity = rl.GetShaderLocation(sh, "lightIntensity")
	s.specPower = rl.GetShaderLocation(sh, "specularPower")
	s.specStrength = rl.GetShaderLocation(sh, "specularStrength")
	s.emissive = rl.GetShaderLocation(sh, "emissive")
	s.pointPos = rl.GetShaderLocation(sh, "pointPos")
	s.pointColor = rl.GetShaderLocation(sh, "pointColor")
	s.pointParams = rl.GetShaderLocation(sh, "pointParams")
	s.pointCount = rl.GetShaderLocation(sh, "pointCount")
	return s
}

func (s litShader) valid() bool {
	return rl.IsShaderValid(s.shader)
}

// setFrame uploads the per-frame lighting uniforms (cgo-safe: local arrays).
func (s litShader) setFrame(viewPos, lightDir [3]float32, points pointUniforms) {
	if !s.valid() {
		return
	}
	vp := viewPos
	ld := lightDir
	amb := defaultAmbient
	lc := defaultLightColor
	if s.viewPos >= 0 {
		rl.SetShaderValueV(s.shader, s.viewPos, vp[:], rl.ShaderUniformVec3, 1)
	}
	if s.lightDir >= 0 {
		rl.SetShaderValueV(s.shader, s.lightDir, ld[:], rl.ShaderUniformVec3, 1)
	}
	if s.ambient >= 0 {
		rl.SetShaderValueV(s.shader, s.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	if s.lightColor >= 0 {
		rl.SetShaderValueV(s.shader, s.lightColor, lc[:], rl.ShaderUniformVec3, 1)
	}
	if s.intensity >= 0 {
		rl.SetShaderValue(s.shader, s.intensity, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if s.specPower >= 0 {
		rl.SetShaderValue(s.shader, s.specPower, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if s.specStrength >= 0 {
		rl.SetShaderValue(s.shader, s.specStrength, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
	if n := int32(points.count); n > 0 {
		if s.pointPos >= 0 {
			rl.SetShaderValueV(s.shader, s.pointPos, points.pos[:], rl.ShaderUniformVec3, n)
		}
		if s.pointColor >= 0 {
			rl.SetShaderValueV(s.shader, s.pointColor, points.color[:], rl.ShaderUniformVec3, n)
		}
		if s.pointParams >= 0 {
			rl.SetShaderValueV(s.shader, s.pointParams, points.params[:], rl.ShaderUniformVec2, n)
		}
	}
	if s.pointCount >= 0 {
		rl.SetShaderValue(s.shader, s.pointCount, []float32{float32(points.count)}, rl.ShaderUniformFloat)
	}
}

func (s litShader) setEmissive(c rl.Color) {
	if !s.valid() || s.emissive < 0 {
		return
	}
	var e [3]float32
	if c.A > 0 {
		a := float32(c.A) / 255
		e = [3]float32{float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a}
	}
	rl.SetShaderValueV(s.shader, s.emissive, e[:], rl.ShaderUniformVec3, 1)
}
