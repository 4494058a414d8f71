// Package parts builds the visual groups for each résumé component. Every builder returns
// a fresh tree whose origin is the component's logical center; builders share nothing
// but the texture generator they are handed.
package parts

import (
	"image/color"
	"sort"

	"motherboard/internal/object"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Builder produces one component group. It is called once per component at startup.
type Builder func(gen *texture.Generator) *object.Object

// FanTag marks GPU fan rotors; the render loop spins every object carrying it.
const FanTag = "fan"

var builders = map[string]Builder{
	"cpu":       CPU,
	"ram":       RAM,
	"gpu":       GPU,
	"usb":       USB,
	"capacitor": Capacitor,
	"chip":      Chip,
}

// ByType returns the builder registered for a component type.
func ByType(typ string) (Builder, bool) {
	b, ok := builders[typ]
	return b, ok
}

// Types lists the component types that have builders, sorted.
func Types() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Shared surface colors.
var (
	pcbGreen    = rl.NewColor(18, 74, 44, 255)
	pcbDark     = rl.NewColor(12, 40, 26, 255)
	gold        = rl.NewColor(212, 175, 55, 255)
	silver      = rl.NewColor(192, 196, 204, 255)
	steel       = rl.NewColor(120, 126, 138, 255)
	blackPlast  = rl.NewColor(24, 24, 28, 255)
	charcoal    = rl.NewColor(44, 46, 52, 255)
	usbBlue     = rl.NewColor(20, 90, 200, 255)
	capBlue     = rl.NewColor(26, 46, 120, 255)
	rubberBlack = rl.NewColor(16, 16, 16, 255)
)

func rgba(c rl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func emissive(c rl.Color, strength uint8) rl.Color {
	c.A = strength
	return c
}
