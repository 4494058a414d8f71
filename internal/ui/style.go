package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // ".panel", "#info", or a node type such as "label"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// unset marks an anchor that was not given.
const unset = -1

// ComputedStyle holds resolved values used for layout and drawing.
// Left/Top/Right/Bottom are pixel anchors (unset = -1); LeftPct/TopPct position the box
// within the free space of the screen (0-100, unset = -1).
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	// Underline draws a rule under the node's text box (CSS border-bottom).
	Underline    rl.Color
	HasUnderline bool

	BorderWidth  float32
	BorderRadius float32
	Glow         int32 // glow spread in pixels (CSS box-shadow blur)

	Width  int32
	Height int32

	Left, Top, Right, Bottom int32
	LeftPct, TopPct          int32

	Padding      int32
	MarginTop    int32
	MarginBottom int32
	FontSize     int32
	LineHeight   int32
	Opacity      float32
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no
// border, auto size, no anchors).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background:  rl.NewColor(0, 0, 0, 0),
		Color:       rl.White,
		Border:      rl.Black,
		BorderWidth: 1,
		Left:        unset,
		Top:         unset,
		Right:       unset,
		Bottom:      unset,
		LeftPct:     unset,
		TopPct:      unset,
		FontSize:    defaultFontSize,
		Opacity:     1,
	}
}

// ParseColor parses #RGB, #RRGGBB, #RRGGBBAA and rgba(r, g, b, a) with a in [0, 1].
func ParseColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb(") {
		return parseRGBFunc(s)
	}
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if !isHex(hex[i]) {
			return rl.Black, false
		}
	}
	switch len(hex) {
	case 3:
		return rl.NewColor(hexByte(hex[0])*17, hexByte(hex[1])*17, hexByte(hex[2])*17, 255), true
	case 6, 8:
		c := rl.NewColor(hexPair(hex[0:2]), hexPair(hex[2:4]), hexPair(hex[4:6]), 255)
		if len(hex) == 8 {
			c.A = hexPair(hex[6:8])
		}
		return c, true
	}
	return rl.Black, false
}

func parseRGBFunc(s string) (rl.Color, bool) {
	open, close := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return rl.Black, false
	}
	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return rl.Black, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return rl.Black, false
		}
		rgb[i] = uint8(n)
	}
	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil || a < 0 || a > 1 {
			return rl.Black, false
		}
		alpha = uint8(a*255 + 0.5)
	}
	return rl.NewColor(rgb[0], rgb[1], rgb[2], alpha), true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexPair(s string) uint8 {
	return hexByte(s[0])<<4 + hexByte(s[1])
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0-100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	px := func(v string, dst *int32) {
		if n, ok := ParsePx(v); ok {
			*dst = n
		}
	}
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := borderColor(v, &out.BorderWidth); ok {
				out.Border, out.HasBorder = c, true
			}
		case "border-bottom":
			var width float32
			if c, ok := borderColor(v, &width); ok {
				out.Underline, out.HasUnderline = c, true
			}
		case "border-width":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.BorderWidth = float32(n)
			}
		case "border-radius":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.BorderRadius = float32(n)
			}
		case "glow":
			px(v, &out.Glow)
		case "width":
			px(v, &out.Width)
		case "height":
			px(v, &out.Height)
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else {
				px(v, &out.Left)
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else {
				px(v, &out.Top)
			}
		case "right":
			px(v, &out.Right)
		case "bottom":
			px(v, &out.Bottom)
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "margin-top":
			px(v, &out.MarginTop)
		case "margin-bottom":
			px(v, &out.MarginBottom)
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "line-height":
			px(v, &out.LineHeight)
		case "opacity":
			if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 && f <= 1 {
				out.Opacity = float32(f)
			}
		}
	}
	return out
}

// borderColor reads the shorthand "1px solid #rrggbb" (any order, style keyword ignored).
func borderColor(v string, width *float32) (rl.Color, bool) {
	if c, ok := ParseColor(v); ok {
		return c, true
	}
	var color rl.Color
	found := false
	for _, f := range strings.Fields(v) {
		if n, ok := ParsePx(f); ok && n > 0 {
			*width = float32(n)
		} else if c, ok := ParseColor(f); ok {
			color, found = c, true
		}
	}
	return color, found
}

// lineHeight returns the height of one text line.
func (s ComputedStyle) lineHeight() int32 {
	if s.LineHeight > 0 {
		return s.LineHeight
	}
	return s.FontSize * 4 / 3
}

// textColor applies opacity to the text color.
func (s ComputedStyle) textColor() rl.Color {
	c := s.Color
	c.A = uint8(float32(c.A) * s.Opacity)
	return c
}
