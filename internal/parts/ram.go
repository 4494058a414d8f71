package parts

import (
	"motherboard/internal/object"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ramAccent = rl.NewColor(255, 0, 136, 255)

const (
	ramLength   = 4.2
	ramHeight   = 1.2
	ramChips    = 8
	ramContacts = 36
)

// RAM builds a DIMM standing in its slot: slot base with latches, the module PCB,
// a row of labeled memory chips, gold edge contacts and an accent light bar.
func RAM(gen *texture.Generator) *object.Object {
	g := object.NewGroup("ram")

	g.Add(
		object.NewBox("slot", ramLength+0.5, 0.3, 0.4, object.Solid(blackPlast)).At(0, -ramHeight/2-0.05, 0),
		object.NewBox("latch", 0.15, 0.5, 0.42, object.Solid(charcoal)).At(-ramLength/2-0.3, -ramHeight/2+0.05, 0),
		object.NewBox("latch", 0.15, 0.5, 0.42, object.Solid(charcoal)).At(ramLength/2+0.3, -ramHeight/2+0.05, 0),
	)

	g.Add(object.NewBox("module", ramLength, ramHeight, 0.08,
		object.Textured(gen.Circuit(rgba(pcbGreen), ""))))

	chipLabel := gen.Label(rgba(blackPlast), rgba(silver), "DDR5")
	pitch := float32(ramLength) / ramChips
	for i := 0; i < ramChips; i++ {
		x := -ramLength/2 + pitch*(float32(i)+0.5)
		g.Add(
			object.NewBox("chip", pitch*0.7, 0.55, 0.06, object.Textured(chipLabel)).At(x, 0.1, 0.07),
			object.NewBox("chip", pitch*0.7, 0.55, 0.06, object.Solid(blackPlast)).At(x, 0.1, -0.07),
		)
	}

	cpitch := float32(ramLength-0.3) / ramContacts
	for i := 0; i < ramContacts; i++ {
		x := -(ramLength-0.3)/2 + cpitch*(float32(i)+0.5)
		g.Add(object.NewBox("contact", cpitch*0.6, 0.18, 0.09, object.Solid(gold)).At(x, -ramHeight/2+0.1, 0))
	}

	g.Add(object.NewBox("lightbar", ramLength-0.2, 0.06, 0.1,
		object.Glowing(ramAccent, emissive(ramAccent, 200))).At(0, ramHeight/2+0.03, 0))
	return g
}
