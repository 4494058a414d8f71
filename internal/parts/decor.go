package parts

import (
	"math/rand"

	"motherboard/internal/object"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Palettes for the decorative scatter. Filler draws from these so it stays dimmer than
// the accent-lit résumé components.
var (
	smallChipColors = []rl.Color{rl.NewColor(51, 51, 51, 255), blackPlast, rl.NewColor(30, 34, 40, 255)}
	smallCapColors  = []rl.Color{rl.NewColor(68, 68, 68, 255), rl.NewColor(34, 34, 34, 255), capBlue}
	socketColors    = []rl.Color{rl.NewColor(34, 34, 34, 255), blackPlast, rl.NewColor(40, 60, 110, 255)}
)

func choose(rng *rand.Rand, colors []rl.Color) rl.Color {
	return colors[rng.Intn(len(colors))]
}

func between(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// SmallChip returns a filler IC of random footprint with pins around its rim. Its bottom
// rests on y = 0.
func SmallChip(rng *rand.Rand) *object.Object {
	size := between(rng, 1, 2.5)
	g := object.NewGroup("small-chip")
	g.Add(object.NewBox("body", size, 0.3, size, object.Solid(choose(rng, smallChipColors))).At(0, 0.2, 0))
	pins := int(size * 3)
	for i := 0; i < pins; i++ {
		angle := float32(i) * 2 * math32.Pi / float32(pins)
		g.Add(object.NewCylinder("pin", 0.1, 0.1, object.Solid(silver)).
			At(size/2*math32.Cos(angle), 0.05, size/2*math32.Sin(angle)))
	}
	return g
}

// SmallCapacitor returns a filler capacitor of random size and color standing on y = 0.
func SmallCapacitor(rng *rand.Rand) *object.Object {
	r := between(rng, 0.2, 0.5)
	h := between(rng, 0.6, 1.4)
	g := object.NewGroup("small-capacitor")
	g.Add(
		object.NewCylinder("can", r, h, object.Solid(choose(rng, smallCapColors))).At(0, h/2, 0),
		object.NewCylinder("top", r*0.9, 0.02, object.Solid(silver)).At(0, h+0.01, 0),
	)
	return g
}

// Socket returns a filler expansion socket with two rows of pins, some missing, standing
// on y = 0.
func Socket(rng *rand.Rand) *object.Object {
	w := between(rng, 3, 5)
	d := between(rng, 1, 2)
	const h = 0.5
	g := object.NewGroup("socket")
	g.Add(object.NewBox("housing", w, h, d, object.Solid(choose(rng, socketColors))).At(0, h/2, 0))
	perRow := int(w / 0.3)
	for r := 0; r < 2; r++ {
		for p := 0; p < perRow; p++ {
			if rng.Float32() < 0.2 {
				continue
			}
			x := -w/2 + 0.3 + float32(p)*(w-0.6)/float32(perRow-1)
			z := -d/4 + float32(r)*d/2
			g.Add(object.NewCylinder("pin", 0.05, 0.2, object.Solid(rl.NewColor(204, 204, 204, 255))).At(x, h+0.1, z))
		}
	}
	return g
}
