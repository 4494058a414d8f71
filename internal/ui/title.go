package ui

// TitlePanelID is the CSS id of the title panel.
const TitlePanelID = "title-panel"

// NewTitle adds the static title panel (product, version and usage hint) to e. It is
// built once and never updated.
func NewTitle(e *Engine, product, version, hint string) *Node {
	root := &Node{Type: TypePanel, ID: TitlePanelID}
	root.Add(
		NewNode(TypeLabel, "h1", "", product),
		NewNode(TypeLabel, "version", "", version),
		NewNode(TypeLabel, "hint", "", hint),
	)
	e.Add(root)
	return root
}
