package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// MaxPointLights is the size of the point-light arrays in the lit shaders.
const MaxPointLights = 4

// PointLight is a coloured light with linear range. Beyond Range it contributes nothing.
type PointLight struct {
	Position  rl.Vector3
	Color     rl.Color
	Intensity float32
	Range     float32
}

// NewPointLight builds a light from a 0xRRGGBB colour.
func NewPointLight(x, y, z float32, hex uint32, intensity, rng float32) PointLight {
	return PointLight{
		Position:  rl.NewVector3(x, y, z),
		Color:     rl.NewColor(uint8(hex>>16), uint8(hex>>8), uint8(hex), 255),
		Intensity: intensity,
		Range:     rng,
	}
}

// Attenuation is the falloff the shaders apply at distance d: (1 - d/rng)^2, clamped to [0, 1].
func Attenuation(d, rng float32) float32 {
	if rng <= 0 {
		return 0
	}
	f := 1 - d/rng
	if f <= 0 {
		return 0
	}
	if f > 1 {
		f = 1
	}
	return f * f
}

// Contribution returns the light's intensity-weighted attenuation at p.
func (l PointLight) Contribution(p rl.Vector3) float32 {
	return l.Intensity * Attenuation(rl.Vector3Distance(l.Position, p), l.Range)
}

// pointUniforms is the flattened upload form of up to MaxPointLights lights.
type pointUniforms struct {
	pos    [MaxPointLights * 3]float32
	color  [MaxPointLights * 3]float32
	params [MaxPointLights * 2]float32 // intensity, range
	count  int
}

func packPointLights(lights []PointLight) pointUniforms {
	var u pointUniforms
	for _, l := range lights {
		if u.count == MaxPointLights {
			break
		}
		if l.Intensity <= 0 || l.Range <= 0 {
			continue
		}
		i := u.count
		u.pos[i*3], u.pos[i*3+1], u.pos[i*3+2] = l.Position.X, l.Position.Y, l.Position.Z
		u.color[i*3] = float32(l.Color.R) / 255
		u.color[i*3+1] = float32(l.Color.G) / 255
		u.color[i*3+2] = float32(l.Color.B) / 255
		u.params[i*2], u.params[i*2+1] = l.Intensity, l.Range
		u.count++
	}
	return u
}
