package main

import (
	"fmt"

	"motherboard/internal/board"
	"motherboard/internal/logger"
	"motherboard/internal/markup"
	"motherboard/internal/pick"
	"motherboard/internal/scene"
	"motherboard/internal/ui"
)

// consoleWidth wraps component text printed by "cmd show".
const consoleWidth = 72

// overlay toggles the debug lines. debug.Debug implements it.
type overlay interface {
	SetShowFPS(bool)
	SetShowMemAlloc(bool)
	SetShowStats(bool)
}

// viewer connects picking to the panel and scene highlight, and gives the console its
// view of the board.
type viewer struct {
	overlay
	log   *logger.Logger
	world *board.World
	scene *scene.Scene
	panel *ui.Panel
	ctrl  *pick.Controller
}

// Present shows a's content in the panel and outlines its component.
func (v *viewer) Present(a board.Annotation) {
	v.panel.Show(ui.Selection{Name: a.Name, Lines: markup.Parse(a.Content), Accent: a.Color})
	if i, ok := v.world.Lookup(a.Type); ok {
		v.scene.Highlight(i, ui.AccentColor(a.Color), true)
	}
	v.log.Info("component selected", "type", a.Type, "name", a.Name)
}

// Dismiss hides the panel and clears the outline. It is called from the controller,
// so console "close" goes through the controller too.
func (v *viewer) Dismiss() {
	v.panel.Hide()
	v.scene.Highlight(0, ui.AccentColor(0), false)
}

func (v *viewer) Select(typ string) error {
	if !v.ctrl.Select(typ) {
		return fmt.Errorf("unknown component %q", typ)
	}
	return nil
}

func (v *viewer) Close() {
	v.ctrl.Dismiss()
}

func (v *viewer) Components() []string {
	entries := v.world.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Type+": "+e.Name)
	}
	return out
}

func (v *viewer) Content(typ string) (string, bool) {
	i, ok := v.world.Lookup(typ)
	if !ok {
		return "", false
	}
	return markup.Text(markup.Wrap(markup.Parse(v.world.Entry(i).Content), consoleWidth)), true
}
