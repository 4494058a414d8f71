package parts

import (
	"motherboard/internal/object"
	"motherboard/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var usbAccent = rl.NewColor(0, 255, 136, 255)

// USB builds a stacked USB-A port: steel shell, dark opening, blue tongue with contacts,
// and an accent status LED.
func USB(gen *texture.Generator) *object.Object {
	g := object.NewGroup("usb")

	g.Add(object.NewBox("base", 1.6, 0.1, 1.9, object.Textured(gen.Circuit(rgba(pcbDark), ""))).At(0, -0.35, 0))

	for _, y := range []float32{-0.05, 0.45} {
		port := object.NewGroup("port")
		port.Add(
			object.NewBox("shell", 1.3, 0.42, 1.7, object.Solid(silver)),
			object.NewBox("opening", 1.1, 0.3, 0.02, object.Solid(rubberBlack)).At(0, 0, 0.86),
			object.NewBox("tongue", 0.9, 0.08, 1.2, object.Solid(usbBlue)).At(0, -0.04, 0.3),
		)
		for c := 0; c < 4; c++ {
			x := -0.3 + float32(c)*0.2
			port.Add(object.NewBox("contact", 0.1, 0.01, 0.5, object.Solid(gold)).At(x, 0.005, 0.55))
		}
		g.Add(port.At(0, y, 0))
	}

	g.Add(object.NewBox("label", 1.3, 0.01, 0.5,
		object.Textured(gen.Label(rgba(charcoal), rgba(usbAccent), "USB"))).At(0, 0.67, -0.5))
	g.Add(object.NewSphere("led", 0.07, object.Glowing(usbAccent, emissive(usbAccent, 230))).At(0.55, 0.7, 0.75))
	return g
}
