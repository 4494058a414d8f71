package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// glowAlpha is the opacity of an accent glow (0x66, about 40%).
const glowAlpha = 0x66

// AccentColor converts a 0xRRGGBB value to an opaque color.
func AccentColor(rgb uint32) rl.Color {
	return rl.NewColor(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 255)
}

// GlowColor is the accent at glow opacity.
func GlowColor(rgb uint32) rl.Color {
	c := AccentColor(rgb)
	c.A = glowAlpha
	return c
}
