package parts

import (
	"motherboard/internal/object"
	"motherboard/internal/texture"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var capAccent = rl.NewColor(255, 255, 0, 255)

const (
	capRadius = 0.7
	capHeight = 2.0
)

// Capacitor builds an electrolytic capacitor: wrapped can with label, silver top with a
// vent cross, a rubber seal and two legs into the board.
func Capacitor(gen *texture.Generator) *object.Object {
	g := object.NewGroup("capacitor")

	g.Add(object.NewCylinder("can", capRadius, capHeight,
		object.Textured(gen.Label(rgba(capBlue), rgba(silver), "470uF"))))
	// Polarity stripe: a squashed sleeve poking through one side of the can.
	stripe := object.NewCylinder("stripe", capRadius+0.01, capHeight*0.9, object.Solid(steel)).Rotated(0, math32.Pi/3, 0)
	stripe.Scale = rl.NewVector3(1, 1, 0.25)
	g.Add(stripe)

	g.Add(object.NewCylinder("top", capRadius-0.04, 0.04, object.Solid(silver)).At(0, capHeight/2+0.01, 0))
	g.Add(
		object.NewBox("vent", capRadius*1.6, 0.03, 0.05, object.Solid(steel)).At(0, capHeight/2+0.03, 0),
		object.NewBox("vent", 0.05, 0.03, capRadius*1.6, object.Solid(steel)).At(0, capHeight/2+0.03, 0),
	)
	g.Add(object.NewTorus("band", capRadius, 0.04, object.Glowing(capBlue, emissive(capAccent, 160))).
		At(0, capHeight/2-0.15, 0).Rotated(math32.Pi/2, 0, 0))

	g.Add(object.NewCylinder("seal", capRadius-0.05, 0.1, object.Solid(rubberBlack)).At(0, -capHeight/2-0.05, 0))
	g.Add(
		object.NewCylinder("leg", 0.04, 0.4, object.Solid(silver)).At(-0.25, -capHeight/2-0.3, 0),
		object.NewCylinder("leg", 0.04, 0.4, object.Solid(silver)).At(0.25, -capHeight/2-0.3, 0),
	)
	return g
}
