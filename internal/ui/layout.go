package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layout positions every visible root for a screen of the given size. Panels size to
// their content: fixed width from CSS (or the widest child), height from stacked children.
func (e *Engine) Layout(screenW, screenH int32) {
	for _, root := range e.roots {
		if root.Hidden {
			continue
		}
		e.layoutPanel(root, screenW, screenH)
	}
}

func (e *Engine) layoutPanel(p *Node, screenW, screenH int32) {
	style := e.resolve(p)
	p.style = style
	if p.HasAccent {
		p.style.Border, p.style.HasBorder = p.Accent, true
	}
	pad := float32(style.Padding)

	width := float32(style.Width)
	inner := width - 2*pad
	if style.Width <= 0 {
		inner = 0
		for _, c := range p.Children {
			if c.Hidden {
				continue
			}
			cs := e.resolve(c)
			if w := e.measure(c.Text, cs.FontSize); w > inner {
				inner = w
			}
		}
		width = inner + 2*pad
	}

	// Stack children.
	y := pad
	prevMargin := float32(0)
	for _, c := range p.Children {
		if c.Hidden {
			continue
		}
		cs := e.resolve(c)
		c.style = cs
		// Adjacent vertical margins collapse.
		y += max(prevMargin, float32(cs.MarginTop))
		h := e.layoutChild(c, cs, inner)
		c.Bounds = rl.NewRectangle(pad, y, inner, h)
		y += h
		prevMargin = float32(cs.MarginBottom)
	}
	height := y + pad
	if style.Height > 0 {
		height = float32(style.Height)
	}

	p.Bounds = rl.NewRectangle(anchor(style.Left, style.Right, style.LeftPct, width, screenW),
		anchor(style.Top, style.Bottom, style.TopPct, height, screenH), width, height)

	// Children were laid out relative to the panel; move them to screen space.
	for _, c := range p.Children {
		c.Bounds.X += p.Bounds.X
		c.Bounds.Y += p.Bounds.Y
	}
}

// layoutChild wraps a child to width and returns its height.
func (e *Engine) layoutChild(c *Node, cs ComputedStyle, width float32) float32 {
	switch c.Type {
	case TypeBar:
		c.lines = nil
		if cs.Height > 0 {
			return float32(cs.Height)
		}
		return 10
	default:
		c.lines = e.wrap(c.Text, cs.FontSize, width)
		h := float32(cs.lineHeight()) * float32(len(c.lines))
		if cs.HasUnderline {
			h += float32(cs.Padding)
		}
		return h
	}
}

// anchor resolves one axis: near edge, far edge or percentage of free space.
func anchor(near, far, pct int32, size float32, screen int32) float32 {
	switch {
	case near != unset:
		return float32(near)
	case far != unset:
		return float32(screen) - float32(far) - size
	case pct != unset:
		return (float32(screen) - size) * float32(pct) / 100
	}
	return 0
}
