package ui

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	roundSegments = 8
	glowRings     = 6
)

// Draw lays out and draws all visible roots for the current screen size. Call after the
// 3D pass.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	font := e.activeFont()
	for _, root := range e.roots {
		if root.Hidden {
			continue
		}
		drawPanel(root)
		for _, c := range root.Children {
			if !c.Hidden {
				drawChild(font, c)
			}
		}
	}
}

func roundness(r rl.Rectangle, radius float32) float32 {
	short := math32.Min(r.Width, r.Height)
	if short <= 0 || radius <= 0 {
		return 0
	}
	return math32.Min(1, 2*radius/short)
}

func drawPanel(p *Node) {
	s := p.style
	b := p.Bounds

	if s.Glow > 0 {
		glow := s.Border
		if p.HasAccent {
			glow = p.Glow
		}
		// Concentric outlines fading outward approximate a box-shadow blur.
		step := float32(s.Glow) / glowRings
		for i := glowRings; i >= 1; i-- {
			grow := step * float32(i)
			r := rl.NewRectangle(b.X-grow, b.Y-grow, b.Width+2*grow, b.Height+2*grow)
			c := glow
			c.A = uint8(float32(glow.A) * (1 - float32(i)/float32(glowRings+1)) / 2)
			rl.DrawRectangleRoundedLinesEx(r, roundness(r, s.BorderRadius+grow), roundSegments, step, c)
		}
	}
	if s.Background.A > 0 {
		rl.DrawRectangleRounded(b, roundness(b, s.BorderRadius), roundSegments, s.Background)
	}
	if s.HasBorder {
		rl.DrawRectangleRoundedLinesEx(b, roundness(b, s.BorderRadius), roundSegments, s.BorderWidth, s.Border)
	}
}

func drawChild(font rl.Font, c *Node) {
	s := c.style
	b := c.Bounds
	switch c.Type {
	case TypeBar:
		track := s.Background
		if track.A == 0 {
			track = rl.NewColor(255, 255, 255, 26)
		}
		rl.DrawRectangleRounded(b, 1, roundSegments, track)
		fill := b
		fill.Width = b.Width * float32(c.Percent) / 100
		if fill.Width > 0 {
			rl.DrawRectangleRounded(fill, 1, roundSegments, s.Color)
		}
	default:
		size := float32(s.FontSize)
		color := s.textColor()
		y := b.Y
		for _, line := range c.lines {
			rl.DrawTextEx(font, line, rl.NewVector2(b.X, y), size, textSpacing, color)
			y += float32(s.lineHeight())
		}
		if s.HasUnderline {
			rl.DrawLineEx(rl.NewVector2(b.X, b.Y+b.Height-1), rl.NewVector2(b.X+b.Width, b.Y+b.Height-1), 1, s.Underline)
		}
	}
}
