package board

import (
	"image/color"
	"math/rand"

	"motherboard/internal/object"
	"motherboard/internal/parts"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var boardColor = color.RGBA{R: 10, G: 56, B: 10, A: 255}

// Trace and node palettes with their relative weights.
var (
	tracePrimary   = rl.NewColor(0, 221, 119, 255)
	traceSecondary = rl.NewColor(0, 170, 85, 255)
	traceTertiary  = rl.NewColor(0, 102, 170, 255)

	nodeBright = rl.NewColor(0, 255, 170, 255)
	nodeBlue   = rl.NewColor(0, 170, 255, 255)
	nodeGreen  = rl.NewColor(0, 255, 119, 255)
)

// Options controls the board dimensions and filler density. Densities are inclusion
// probabilities per grid cell or scatter slot; zero disables that layer.
type Options struct {
	Size      float32
	Thickness float32

	GridCells   int
	GridSpacing float32

	HTraceDensity  float64
	VTraceDensity  float64
	NodeDensity    float64
	ScatterDensity float64

	Chips      int
	Capacitors int
	Sockets    int

	// KeepOut is the XZ radius around each section kept clear of scattered parts.
	KeepOut float32
}

// DefaultOptions returns the standard board layout.
func DefaultOptions() Options {
	return Options{
		Size:           50,
		Thickness:      1,
		GridCells:      15,
		GridSpacing:    5,
		HTraceDensity:  0.7,
		VTraceDensity:  0.6,
		NodeDensity:    0.4,
		ScatterDensity: 0.9,
		Chips:          15,
		Capacitors:     20,
		Sockets:        5,
		KeepOut:        4,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Size <= 0 {
		o.Size = d.Size
	}
	if o.Thickness <= 0 {
		o.Thickness = d.Thickness
	}
	if o.GridCells <= 0 {
		o.GridCells = d.GridCells
	}
	if o.GridSpacing <= 0 {
		o.GridSpacing = d.GridSpacing
	}
	return o
}

type filler struct {
	opts    Options
	rng     *rand.Rand
	keepOut []rl.Vector2
}

func (f *filler) build() *object.Object {
	top := f.opts.Thickness / 2
	root := object.NewGroup("filler")
	traces := object.NewGroup("traces").At(0, top, 0)
	nodes := object.NewGroup("nodes").At(0, top, 0)
	scatter := object.NewGroup("scatter").At(0, top, 0)
	root.Add(traces, nodes, scatter)

	o := f.opts
	span := float32(o.GridCells-1) * o.GridSpacing
	origin := -span / 2
	for i := 0; i < o.GridCells; i++ {
		for j := 0; j < o.GridCells; j++ {
			x := origin + float32(i)*o.GridSpacing
			z := origin + float32(j)*o.GridSpacing
			if f.include(o.HTraceDensity) {
				traces.Add(f.trace(true).At(x+f.jitter(), f.traceLift(), z))
			}
			if f.include(o.VTraceDensity) {
				traces.Add(f.trace(false).At(x, f.traceLift(), z+f.jitter()))
			}
			if f.include(o.NodeDensity) {
				nodes.Add(f.node().At(x, 0.05, z))
			}
		}
	}

	f.scatter(scatter, o.Chips, 0.8, parts.SmallChip)
	f.scatter(scatter, o.Capacitors, 0.8, parts.SmallCapacitor)
	f.scatter(scatter, o.Sockets, 0.6, parts.Socket)
	return root
}

func (f *filler) include(p float64) bool {
	return p > 0 && f.rng.Float64() < p
}

func (f *filler) jitter() float32 {
	return (f.rng.Float32() - 0.5) * 2
}

func (f *filler) traceLift() float32 {
	return 0.02 + f.rng.Float32()*0.05
}

// trace returns a glowing copper run along X (horizontal) or Z.
func (f *filler) trace(horizontal bool) *object.Object {
	length := 6 + f.rng.Float32()*8
	if horizontal {
		length += 2
	}
	width := 0.2 + f.rng.Float32()*0.15
	height := 0.08 + f.rng.Float32()*0.04

	var c rl.Color
	switch r := f.rng.Float64(); {
	case r < 0.3:
		c = tracePrimary
	case r < 0.65:
		c = traceSecondary
	default:
		c = traceTertiary
	}
	glow := c
	glow.A = 76
	if f.rng.Float64() < 0.2 {
		glow.A = 204
	}

	if horizontal {
		return object.NewBox("trace", length, height, width, object.Glowing(c, glow))
	}
	return object.NewBox("trace", width, height, length, object.Glowing(c, glow))
}

// node returns a connector pad for a grid intersection.
func (f *filler) node() *object.Object {
	r := 0.3 + f.rng.Float32()*0.2
	h := 0.1 + f.rng.Float32()*0.06

	var c rl.Color
	switch x := f.rng.Float64(); {
	case x < 0.2:
		c = nodeBright
	case x < 0.52:
		c = nodeBlue
	default:
		c = nodeGreen
	}
	glow := c
	glow.A = 178
	return object.NewCylinder("node", r, h, object.Glowing(c, glow))
}

// scatter places up to slots parts uniformly within spread of the board, skipping slots
// that miss the density roll or land on a section.
func (f *filler) scatter(dst *object.Object, slots int, spread float32, build func(*rand.Rand) *object.Object) {
	extent := f.opts.Size * spread
	for i := 0; i < slots; i++ {
		x := (f.rng.Float32() - 0.5) * extent
		z := (f.rng.Float32() - 0.5) * extent
		if !f.include(f.opts.ScatterDensity) || f.blocked(x, z) {
			continue
		}
		dst.Add(build(f.rng).At(x, 0, z).Rotated(0, f.rng.Float32()*2*math32.Pi, 0))
	}
}

func (f *filler) blocked(x, z float32) bool {
	p := rl.NewVector2(x, z)
	for _, k := range f.keepOut {
		if rl.Vector2Distance(p, k) < f.opts.KeepOut {
			return true
		}
	}
	return false
}
