package ui

import (
	"strings"

	"motherboard/internal/markup"
)

// InfoPanelID is the CSS id of the selection panel.
const InfoPanelID = "info-panel"

// Selection is what the info panel shows for a picked component.
type Selection struct {
	Name   string
	Lines  []markup.Line
	Accent uint32
}

// Panel is the overlay that shows a selected component's content. It starts hidden.
type Panel struct {
	root *Node
	name string
}

// NewPanel creates a hidden panel and adds it to e.
func NewPanel(e *Engine) *Panel {
	p := &Panel{root: &Node{Type: TypePanel, ID: InfoPanelID, Hidden: true}}
	e.Add(p.root)
	return p
}

// Show replaces the panel body with sel and makes it visible. The border takes the
// accent color and the glow the accent at reduced opacity.
func (p *Panel) Show(sel Selection) {
	p.name = sel.Name
	p.root.Children = p.root.Children[:0]
	for _, l := range sel.Lines {
		p.root.Add(lineNodes(l)...)
	}
	p.root.Accent = AccentColor(sel.Accent)
	p.root.Glow = GlowColor(sel.Accent)
	p.root.HasAccent = true
	p.root.Hidden = false
}

// Hide hides the panel. Hiding a hidden panel is a no-op.
func (p *Panel) Hide() {
	p.root.Hidden = true
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return !p.root.Hidden
}

// Name returns the name of the last shown selection.
func (p *Panel) Name() string {
	return p.name
}

// Node returns the panel's root node.
func (p *Panel) Node() *Node {
	return p.root
}

// Text returns the body text, one label per line.
func (p *Panel) Text() string {
	var lines []string
	for _, c := range p.root.Children {
		if c.Type == TypeLabel {
			lines = append(lines, c.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func lineNodes(l markup.Line) []*Node {
	switch l.Kind {
	case markup.Heading:
		return []*Node{NewNode(TypeLabel, "h2", "", l.Text)}
	case markup.Subheading:
		return []*Node{NewNode(TypeLabel, "h3", "", l.Text)}
	case markup.Item:
		return []*Node{NewNode(TypeLabel, "li", "", "- "+l.Text)}
	case markup.Skill:
		bar := NewNode(TypeBar, "skill-bar", "", "")
		bar.Percent = l.Percent
		return []*Node{NewNode(TypeLabel, "skill", "", l.Text), bar}
	default:
		return []*Node{NewNode(TypeLabel, "p", "", l.Text)}
	}
}
