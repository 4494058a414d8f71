package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node types understood by the layout.
const (
	TypePanel = "panel"
	TypeLabel = "label"
	TypeBar   = "bar"
)

// Node is a single UI element. Panels stack their children vertically; labels draw
// wrapped text; bars draw a filled track (Percent of its width).
type Node struct {
	Type    string
	Class   string
	ID      string
	Text    string
	Percent int
	Hidden  bool

	// Accent, when set, overrides the stylesheet's border and glow colors.
	Accent    rl.Color
	Glow      rl.Color
	HasAccent bool

	Children []*Node

	// Filled in by Layout.
	Bounds rl.Rectangle
	lines  []string
	style  ComputedStyle
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Lines returns the wrapped text lines computed by the last Layout.
func (n *Node) Lines() []string {
	return n.lines
}

// Style returns the style resolved by the last Layout.
func (n *Node) Style() ComputedStyle {
	return n.style
}
