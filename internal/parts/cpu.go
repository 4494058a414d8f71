package parts

import (
	"motherboard/internal/object"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var cpuAccent = rl.NewColor(0, 136, 255, 255)

const (
	cpuSize     = 3.0
	cpuPinCount = 12
)

// CPU builds a socketed processor: substrate, gold edge pins, heat spreader, the labeled
// die on top, and a glow halo underneath. The die is the topmost mesh at the center.
func CPU(gen *texture.Generator) *object.Object {
	g := object.NewGroup("cpu")

	g.Add(object.NewPlane("halo", cpuSize*1.6, cpuSize*1.6,
		object.Material{Color: rl.White, Emissive: emissive(cpuAccent, 90), Texture: gen.Glow(rgba(cpuAccent))}).
		At(0, -0.09, 0))

	g.Add(object.NewBox("substrate", cpuSize, 0.16, cpuSize,
		object.Textured(gen.Circuit(rgba(pcbGreen), ""))).At(0, 0, 0))

	step := float32(cpuSize) / (cpuPinCount + 1)
	half := float32(cpuSize) / 2
	for i := 1; i <= cpuPinCount; i++ {
		off := -half + step*float32(i)
		g.Add(
			object.NewBox("pin", 0.06, 0.04, 0.22, object.Solid(gold)).At(off, -0.02, half+0.08),
			object.NewBox("pin", 0.06, 0.04, 0.22, object.Solid(gold)).At(off, -0.02, -half-0.08),
			object.NewBox("pin", 0.22, 0.04, 0.06, object.Solid(gold)).At(half+0.08, -0.02, off),
			object.NewBox("pin", 0.22, 0.04, 0.06, object.Solid(gold)).At(-half-0.08, -0.02, off),
		)
	}

	g.Add(object.NewBox("spreader", 2.3, 0.14, 2.3, object.Solid(silver)).At(0, 0.15, 0))

	die := object.NewBox("die", 1.4, 0.1, 1.4,
		object.Material{Color: rl.White, Emissive: emissive(cpuAccent, 40), Texture: gen.Label(rgba(charcoal), rgba(cpuAccent), "CPU")})
	g.Add(die.At(0, 0.27, 0))

	// Corner notch marking pin 1.
	g.Add(object.NewCylinder("pin1", 0.08, 0.02, object.Solid(gold)).At(-half+0.25, 0.09, -half+0.25))
	return g
}
