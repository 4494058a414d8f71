package texture

import (
	"image/color"
	"math/rand"
	"time"
)

const glowRadius = 12

// Generator is the shared texture resource handed to component builders. It owns its
// random source; Fork gives each builder an independent one so builders never observe
// each other's draws.
type Generator struct {
	rng  *rand.Rand
	size int
}

// NewGenerator returns a generator seeded with seed. Seed 0 uses the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), size: DefaultSize}
}

// Fork returns a generator with its own random source derived from g.
func (g *Generator) Fork() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(g.rng.Int63())), size: g.size}
}

// Rand exposes the generator's random source for randomized geometry details.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Circuit returns a circuit-patterned texture on bg, with label centered when non-empty.
func (g *Generator) Circuit(bg color.RGBA, label string) *Texture {
	return New(Generate(g.rng, Options{Size: g.size, Background: bg, Label: label}))
}

// Label returns a plain texture with a centered label and no strokes.
func (g *Generator) Label(bg, fg color.RGBA, label string) *Texture {
	return New(Generate(g.rng, Options{Size: g.size, Background: bg, Strokes: -1, Label: label, LabelColor: fg}))
}

// Board returns the large substrate texture for the base surface.
func (g *Generator) Board(bg color.RGBA) *Texture {
	return New(Board(g.rng, g.size*2, bg))
}

// Glow returns a blurred halo texture in c.
func (g *Generator) Glow(c color.RGBA) *Texture {
	return New(Glow(g.size, c, glowRadius))
}
