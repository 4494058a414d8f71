package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// ErrToggle is returned when a toggle command gets neither or both of --show and --hide.
var ErrToggle = errors.New("use exactly one of --show or --hide")

// Viewer is the part of the application the console drives.
type Viewer interface {
	SetShowFPS(bool)
	SetShowMemAlloc(bool)
	SetShowStats(bool)
	// Select opens the panel for a component type.
	Select(typ string) error
	// Close hides the panel.
	Close()
	// Components lists "type: name" for every component in order.
	Components() []string
	// Content returns a component's body as plain text.
	Content(typ string) (string, bool)
}

// RegisterViewer adds the viewer subcommands to r. Output lines go to out.
func RegisterViewer(r *Registry, v Viewer, out func(string)) {
	toggle(r, "fps", "fps --show|--hide", v.SetShowFPS)
	toggle(r, "memalloc", "memalloc --show|--hide", v.SetShowMemAlloc)
	toggle(r, "stats", "stats --show|--hide", v.SetShowStats)

	r.Register("select", "select <type>", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: select <type>")
		}
		return v.Select(args[0])
	})
	r.Register("close", "close", nil, func([]string) error {
		v.Close()
		return nil
	})
	r.Register("list", "list", nil, func([]string) error {
		for _, c := range v.Components() {
			out(c)
		}
		return nil
	})
	r.Register("show", "show <type>", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: show <type>")
		}
		body, ok := v.Content(args[0])
		if !ok {
			return fmt.Errorf("no component %q", args[0])
		}
		for _, line := range strings.Split(body, "\n") {
			out(line)
		}
		return nil
	})
	r.Register("help", "help", nil, func([]string) error {
		for _, name := range r.Names() {
			usage, _ := r.Usage(name)
			out("cmd " + usage)
		}
		return nil
	})
}

func toggle(r *Registry, name, usage string, set func(bool)) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	show := fs.Bool("show", false, "show the overlay")
	hide := fs.Bool("hide", false, "hide the overlay")
	r.Register(name, usage, fs, func([]string) error {
		if *show == *hide {
			return ErrToggle
		}
		set(*show)
		return nil
	})
}
