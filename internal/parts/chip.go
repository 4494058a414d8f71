package parts

import (
	"motherboard/internal/object"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var chipAccent = rl.NewColor(0, 255, 255, 255)

const (
	chipWidth = 2.0
	chipDepth = 1.2
	chipLegs  = 8
)

// Chip builds a DIP package labelled BIOS: black body, silver gull-wing legs on both long
// sides, a pin-1 dot and an accent trace outline underneath.
func Chip(gen *texture.Generator) *object.Object {
	g := object.NewGroup("chip")

	g.Add(object.NewPlane("footprint", chipWidth+0.6, chipDepth+0.9,
		object.Glowing(pcbDark, emissive(chipAccent, 50))).At(0, -0.2, 0))

	g.Add(object.NewBox("body", chipWidth, 0.3, chipDepth,
		object.Textured(gen.Label(rgba(blackPlast), rgba(silver), "BIOS"))))

	pitch := float32(chipWidth) / chipLegs
	for i := 0; i < chipLegs; i++ {
		x := -chipWidth/2 + pitch*(float32(i)+0.5)
		g.Add(
			object.NewBox("leg", pitch*0.4, 0.06, 0.3, object.Solid(silver)).At(x, -0.1, chipDepth/2+0.12),
			object.NewBox("leg", pitch*0.4, 0.06, 0.3, object.Solid(silver)).At(x, -0.1, -chipDepth/2-0.12),
		)
	}

	g.Add(object.NewCylinder("dot", 0.07, 0.01, object.Glowing(silver, emissive(chipAccent, 180))).
		At(-chipWidth/2+0.2, 0.155, -chipDepth/2+0.2))
	return g
}
