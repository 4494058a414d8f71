package texture

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaults(t *testing.T) {
	img := Generate(rand.New(rand.NewSource(1)), Options{Background: color.RGBA{10, 60, 30, 255}})
	require.NotNil(t, img)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
	assert.Equal(t, DefaultSize, img.Bounds().Dy())
}

func TestGenerateLabelWithoutStrokes(t *testing.T) {
	bg := color.RGBA{20, 20, 20, 255}
	fg := color.RGBA{255, 255, 255, 255}
	img := Generate(rand.New(rand.NewSource(7)), Options{Size: 128, Background: bg, Strokes: -1, Label: "CPU", LabelColor: fg})

	assert.Equal(t, bg, img.RGBAAt(0, 0))
	assert.Equal(t, bg, img.RGBAAt(127, 127))

	lit := 0
	for y := 32; y < 96; y++ {
		for x := 16; x < 112; x++ {
			if img.RGBAAt(x, y).R > 128 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0, "label pixels should be drawn near the center")
}

func TestGenerateStrokesChangePixels(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	img := Generate(rand.New(rand.NewSource(3)), Options{Size: 64, Background: bg, Strokes: 10})
	changed := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) != bg {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 0)
}

func TestGeneratorSameSeedSameOutput(t *testing.T) {
	a := NewGenerator(42).Circuit(color.RGBA{0, 80, 40, 255}, "RAM")
	b := NewGenerator(42).Circuit(color.RGBA{0, 80, 40, 255}, "RAM")
	assert.Equal(t, a.Image().Pix, b.Image().Pix)
}

func TestGeneratorForkIsIndependent(t *testing.T) {
	g := NewGenerator(9)
	f1 := g.Fork()
	f2 := g.Fork()
	assert.NotEqual(t, f1.Rand().Int63(), f2.Rand().Int63())
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		x := float32(i) * 0.173
		y := float32(i) * 0.311
		n := fractalNoise(x, y, 5, 4, 2, 0.5)
		assert.GreaterOrEqual(t, n, float32(0))
		assert.LessOrEqual(t, n, float32(1))
	}
}

func TestBoardAndGlowSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	board := Board(rng, 96, color.RGBA{10, 50, 25, 255})
	assert.Equal(t, 96, board.Bounds().Dx())

	glow := Glow(64, color.RGBA{0, 255, 136, 255}, 4)
	assert.Equal(t, 64, glow.Bounds().Dx())
	assert.Equal(t, uint8(0), glow.RGBAAt(0, 0).A, "halo corners stay transparent")
}

func TestLightenAndHex(t *testing.T) {
	assert.Equal(t, color.RGBA{0x00, 0xff, 0x88, 255}, Hex(0x00ff88))
	assert.Equal(t, color.RGBA{255, 255, 255, 10}, Lighten(color.RGBA{0, 0, 0, 10}, 1))
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, Lighten(color.RGBA{100, 50, 0, 255}, 0))
}
