package ui

import (
	_ "embed"
	"os"
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultFontSize = 20
	textSpacing     = 1
	// glyphRatio estimates an average glyph advance as a fraction of the font size when
	// no font metrics are available (tests, or before the window exists).
	glyphRatio = 0.6
)

//go:embed panel.css
var defaultCSS string

// MeasureFunc returns the pixel width of text drawn at size.
type MeasureFunc func(text string, size int32) float32

// EstimateWidth is the metric used when no font is loaded.
func EstimateWidth(text string, size int32) float32 {
	return float32(utf8.RuneCountInString(text)) * float32(size) * glyphRatio
}

// Engine holds the current stylesheet and root nodes, lays them out and draws them with
// raylib. Roots are drawn in order. Resolved styles are cached per selector key and only
// recomputed when the stylesheet changes.
type Engine struct {
	sheet   *Stylesheet
	roots   []*Node
	styles  map[string]ComputedStyle
	font    rl.Font
	measure MeasureFunc
}

// New creates an engine with the built-in panel stylesheet.
func New() *Engine {
	sheet, _ := ParseCSS(defaultCSS)
	return &Engine{sheet: sheet, styles: make(map[string]ComputedStyle), measure: EstimateWidth}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[string]ComputedStyle)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering and switches measuring to its
// metrics. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	e.UseFontMetrics()
	return nil
}

// UseFontMetrics measures text with the active raylib font instead of the estimate.
// Call after the window exists.
func (e *Engine) UseFontMetrics() {
	e.measure = func(text string, size int32) float32 {
		return rl.MeasureTextEx(e.activeFont(), text, float32(size), textSpacing).X
	}
}

// Font returns the loaded UI font, or a zero font when none was loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Unload releases the loaded font. Call before closing the window.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

func (e *Engine) activeFont() rl.Font {
	if e.font.Texture.ID != 0 {
		return e.font
	}
	return rl.GetFontDefault()
}

// Add appends a root node.
func (e *Engine) Add(n *Node) {
	e.roots = append(e.roots, n)
}

// Roots returns the root nodes in draw order.
func (e *Engine) Roots() []*Node {
	return e.roots
}

func styleKey(n *Node) string {
	return n.Type + "." + n.Class + "#" + n.ID
}

// resolve returns the style for n: type rules, then class rules, then id rules, each in
// sheet order, so later and more specific rules win.
func (e *Engine) resolve(n *Node) ComputedStyle {
	key := styleKey(n)
	if s, ok := e.styles[key]; ok {
		return s
	}
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, pass := range []func(string) bool{
			func(sel string) bool { return sel == n.Type },
			func(sel string) bool { return n.Class != "" && sel == "."+n.Class },
			func(sel string) bool { return n.ID != "" && sel == "#"+n.ID },
		} {
			for _, rule := range e.sheet.Rules {
				if pass(rule.Selector) {
					for k, v := range rule.Props {
						merged[k] = v
					}
				}
			}
		}
	}
	s := ResolveProps(merged)
	e.styles[key] = s
	return s
}

// wrap breaks text into lines no wider than width pixels. Long words stay whole.
func (e *Engine) wrap(text string, size int32, width float32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if width > 0 && e.measure(next, size) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}
