// Package board assembles the scene: the circuit board slab, its decorative filler, and
// one entry per résumé section. Only entries are selectable; filler is kept in a separate
// tree that the picker never sees.
package board

import (
	"fmt"

	"motherboard/internal/content"
	"motherboard/internal/object"
	"motherboard/internal/parts"
	"motherboard/internal/texture"

	"github.com/jinzhu/copier"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Annotation is the section data copied onto an entry for lookup during picking.
type Annotation struct {
	Type    string
	Name    string
	Content string
	Color   uint32
}

// Entry is one placed résumé section.
type Entry struct {
	Root      *object.Object
	OriginalY float32
	Index     int
	Annotation
}

// World is the assembled scene.
type World struct {
	Base   *object.Object // board slab
	Filler *object.Object // traces, nodes and scattered parts

	entries []Entry
	owner   map[*object.Object]int
	fans    []*object.Object
}

// Assemble builds the board, fills it with decoration and places every section of reg.
// Each builder gets its own fork of gen. It panics if a descriptor cannot be annotated.
func Assemble(reg *content.Registry, gen *texture.Generator, opts Options) *World {
	opts = opts.withDefaults()
	w := &World{owner: make(map[*object.Object]int)}

	w.Base = object.NewBox("board", opts.Size, opts.Thickness, opts.Size,
		object.Material{Color: rl.White, Texture: gen.Board(boardColor)})

	descs := reg.All()
	fill := filler{opts: opts, rng: gen.Fork().Rand(), keepOut: make([]rl.Vector2, 0, len(descs))}
	for _, d := range descs {
		fill.keepOut = append(fill.keepOut, rl.NewVector2(d.Position[0], d.Position[2]))
	}
	w.Filler = fill.build()

	for i, d := range descs {
		root := d.Builder(gen.Fork())
		root.At(d.Position[0], d.Position[1], d.Position[2])

		a, err := annotate(d)
		if err != nil {
			panic(err)
		}
		e := Entry{Root: root, OriginalY: d.Position[1], Index: i, Annotation: a}

		root.Each(func(n *object.Object) {
			w.owner[n] = i
		})
		w.fans = append(w.fans, root.FindAll(parts.FanTag)...)
		w.entries = append(w.entries, e)
	}
	return w
}

// annotate copies the lookup fields of d into an Annotation.
func annotate(d content.Descriptor) (Annotation, error) {
	var a Annotation
	if err := copier.Copy(&a, &d); err != nil {
		return Annotation{}, fmt.Errorf("annotate %s: %w", d.Type, err)
	}
	return a, nil
}

// Len returns the number of entries.
func (w *World) Len() int { return len(w.entries) }

// Entry returns the i-th entry.
func (w *World) Entry(i int) Entry { return w.entries[i] }

// Entries returns a copy of the entry list. Roots are shared.
func (w *World) Entries() []Entry {
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Owner returns the index of the entry whose tree contains obj. Filler and base objects
// have no owner.
func (w *World) Owner(obj *object.Object) (int, bool) {
	i, ok := w.owner[obj]
	return i, ok
}

// Lookup returns the index of the entry with the given type.
func (w *World) Lookup(typ string) (int, bool) {
	for i, e := range w.entries {
		if e.Type == typ {
			return i, true
		}
	}
	return 0, false
}

// Fans returns every fan rotor in the entries.
func (w *World) Fans() []*object.Object { return w.fans }

// Meshes returns the number of drawable objects in the whole scene.
func (w *World) Meshes() int {
	n := w.Base.Count() + w.Filler.Count()
	for _, e := range w.entries {
		n += e.Root.Count()
	}
	return n
}
