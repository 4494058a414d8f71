package texture

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"
)

const (
	boardNoiseFreq   = 0.02
	boardNoiseOctave = 4
	boardGridStep    = 32
)

// Board draws the motherboard substrate: fractal-noise mottling over bg, a faint
// routing grid, and a sparse layer of circuit strokes.
func Board(rng *rand.Rand, size int, bg color.RGBA) *image.RGBA {
	if size <= 0 {
		size = DefaultSize * 2
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	seed := rng.Int31()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := fractalNoise(float32(x)*boardNoiseFreq, float32(y)*boardNoiseFreq, seed, boardNoiseOctave, 2, 0.5)
			shade := 0.8 + 0.35*n
			img.SetRGBA(x, y, color.RGBA{
				R: scale8(bg.R, shade),
				G: scale8(bg.G, shade),
				B: scale8(bg.B, shade),
				A: 255,
			})
		}
	}

	grid := Lighten(bg, 0.25)
	grid.A = 60
	z := vector.NewRasterizer(size, size)
	for p := boardGridStep; p < size; p += boardGridStep {
		strokeLine(z, img, float32(p), 0, float32(p), float32(size), 1, grid)
		strokeLine(z, img, 0, float32(p), float32(size), float32(p), 1, grid)
	}
	opts := Options{Size: size, Background: bg, Strokes: DefaultStrokes * 2}.withDefaults()
	for i := 0; i < opts.Strokes; i++ {
		drawCircuitStroke(z, img, rng, opts)
	}
	return img
}

func scale8(v uint8, f float32) uint8 {
	s := float32(v) * f
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Glow draws a rectangular ring of c inset from the edges of a transparent square and
// blurs it into a soft halo, used under emissive components.
func Glow(size int, c color.RGBA, radius float64) *image.RGBA {
	if size <= 0 {
		size = DefaultSize
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	inset := size / 6
	ring := size / 16
	outer := image.Rect(inset, inset, size-inset, size-inset)
	draw.Draw(img, outer, image.NewUniform(c), image.Point{}, draw.Src)
	draw.Draw(img, outer.Inset(ring), image.NewUniform(color.RGBA{}), image.Point{}, draw.Src)
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
