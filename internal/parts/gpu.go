package parts

import (
	"motherboard/internal/object"
	"motherboard/internal/texture"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var gpuAccent = rl.NewColor(255, 85, 0, 255)

const (
	gpuLength = 5.2
	gpuWidth  = 2.2
	fanRadius = 0.85
	fanBlades = 9
)

// GPU builds a graphics card lying flat: PCB, shroud with label, two fans whose rotors
// carry FanTag, an RGB strip and the PCIe edge connector.
func GPU(gen *texture.Generator) *object.Object {
	g := object.NewGroup("gpu")

	g.Add(object.NewBox("pcb", gpuLength, 0.1, gpuWidth,
		object.Textured(gen.Circuit(rgba(pcbDark), ""))).At(0, -0.25, 0))
	g.Add(object.NewBox("shroud", gpuLength, 0.35, gpuWidth-0.1,
		object.Textured(gen.Circuit(rgba(charcoal), "RTX"))).At(0, 0, 0))
	g.Add(object.NewBox("backplate", gpuLength, 0.04, gpuWidth, object.Solid(steel)).At(0, -0.32, 0))

	for i, x := range []float32{-gpuLength / 4, gpuLength / 4} {
		g.Add(fan(i).At(x, 0.2, 0))
	}

	g.Add(object.NewBox("rgb", gpuLength-0.2, 0.05, 0.08,
		object.Glowing(gpuAccent, emissive(gpuAccent, 220))).At(0, 0.1, gpuWidth/2-0.02))

	g.Add(object.NewBox("pcie", gpuLength*0.6, 0.08, 0.25, object.Solid(gold)).At(-0.3, -0.25, -gpuWidth/2-0.1))
	g.Add(object.NewBox("bracket", 0.08, 0.6, gpuWidth, object.Solid(silver)).At(gpuLength/2+0.04, -0.05, 0))
	return g
}

// fan returns a fan housing (ring + hub) with a rotor group that spins about Y.
func fan(index int) *object.Object {
	housing := object.NewGroup("fan-housing")
	housing.Add(object.NewTorus("fan-ring", fanRadius, 0.06, object.Solid(blackPlast)).Rotated(math32.Pi/2, 0, 0))

	rotor := object.NewGroup("fan-rotor").Tagged(FanTag)
	rotor.Add(object.NewCylinder("fan-hub", 0.22, 0.08, object.Glowing(charcoal, emissive(gpuAccent, 60))))
	for b := 0; b < fanBlades; b++ {
		angle := float32(b) * 2 * math32.Pi / fanBlades
		blade := object.NewBox("fan-blade", fanRadius-0.25, 0.02, 0.2, object.Solid(charcoal))
		// Offset the blade out from the hub, then pitch it and swing it around the axis.
		arm := object.NewGroup("fan-arm").Rotated(0, angle, 0).Add(
			blade.At((fanRadius-0.25)/2+0.2, 0, 0).Rotated(0.35, 0, 0),
		)
		rotor.Add(arm)
	}
	// Alternate start angles so the two fans don't look lock-stepped.
	rotor.Rotation.Y = float32(index) * math32.Pi / fanBlades
	housing.Add(rotor)
	return housing
}
