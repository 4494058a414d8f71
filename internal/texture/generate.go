package texture

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"sync"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// DefaultSize is the edge length in pixels of generated textures.
	DefaultSize = 256
	// DefaultStrokes is the number of decorative circuit strokes per texture.
	DefaultStrokes     = 20
	defaultStrokeWidth = 2
	minLabelPoints     = 8
)

// Options controls a single procedural texture. Zero values are replaced by defaults
// (DefaultSize, DefaultStrokes, a lightened Background for strokes, white label).
type Options struct {
	Size        int
	Background  color.RGBA
	Strokes     int
	StrokeColor color.RGBA
	StrokeWidth float32
	Label       string
	LabelColor  color.RGBA
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Strokes < 0 {
		o.Strokes = 0
	} else if o.Strokes == 0 {
		o.Strokes = DefaultStrokes
	}
	if o.StrokeColor.A == 0 {
		o.StrokeColor = Lighten(o.Background, 0.45)
		o.StrokeColor.A = 140
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = defaultStrokeWidth
	}
	if o.LabelColor.A == 0 {
		o.LabelColor = color.RGBA{255, 255, 255, 255}
	}
	return o
}

// Generate draws a square texture: background fill, Strokes random circuit lines, and the
// optional Label centered on top. Each call consumes rng independently; output is not
// deterministic across different rng states.
func Generate(rng *rand.Rand, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	bg := opts.Background
	if bg.A == 0 {
		bg.A = 255
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	z := vector.NewRasterizer(opts.Size, opts.Size)
	for i := 0; i < opts.Strokes; i++ {
		drawCircuitStroke(z, img, rng, opts)
	}
	if opts.Label != "" {
		drawLabel(img, opts.Label, opts.LabelColor)
	}
	return img
}

// drawCircuitStroke draws one PCB-style trace: a horizontal run, then a vertical run,
// ending in a square pad.
func drawCircuitStroke(z *vector.Rasterizer, img *image.RGBA, rng *rand.Rand, opts Options) {
	s := float32(opts.Size)
	x0 := rng.Float32() * s
	y0 := rng.Float32() * s
	x1 := rng.Float32() * s
	y1 := rng.Float32() * s
	strokeLine(z, img, x0, y0, x1, y0, opts.StrokeWidth, opts.StrokeColor)
	strokeLine(z, img, x1, y0, x1, y1, opts.StrokeWidth, opts.StrokeColor)
	pad := opts.StrokeWidth * 2
	fillRect(z, img, x1-pad, y1-pad, x1+pad, y1+pad, opts.StrokeColor)
}

// strokeLine rasterizes a segment as a quad of the given width.
func strokeLine(z *vector.Rasterizer, dst *image.RGBA, x0, y0, x1, y1, width float32, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	l := math32.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func fillRect(z *vector.Rasterizer, dst *image.RGBA, x0, y0, x1, y1 float32, c color.RGBA) {
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

func parsedLabelFont() (*opentype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(gomonobold.TTF)
	})
	return labelFont, labelFontErr
}

// drawLabel centers text on img, shrinking the face until it fits in 90% of the width.
// Go Mono Bold is compiled in, so the parse error path is unreachable in practice;
// the label is skipped if it ever happens.
func drawLabel(img *image.RGBA, label string, c color.RGBA) {
	f, err := parsedLabelFont()
	if err != nil {
		return
	}
	size := img.Bounds().Dx()
	points := float64(size) / 7
	var face font.Face
	for {
		face, err = opentype.NewFace(f, &opentype.FaceOptions{Size: points, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return
		}
		if font.MeasureString(face, label).Ceil() <= size*9/10 || points <= minLabelPoints {
			break
		}
		_ = face.Close()
		points -= 2
	}
	defer face.Close()

	m := face.Metrics()
	w := font.MeasureString(face, label).Ceil()
	x := (size - w) / 2
	y := (size + m.Ascent.Ceil() - m.Descent.Ceil()) / 2
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

// Lighten mixes c toward white by amount (0–1). Alpha is kept.
func Lighten(c color.RGBA, amount float32) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*amount)
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}

// Hex converts a 24-bit 0xRRGGBB value to an opaque color.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 255}
}
