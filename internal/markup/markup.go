// Package markup turns a section's markdown body into flat display lines for the overlay
// panel. Only the block structure the panel can draw survives: headings, paragraphs and
// list items. Inline formatting is flattened to its text.
package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Kind is the block type of a line.
type Kind int

const (
	Paragraph Kind = iota
	Heading
	Subheading
	Item
	Skill
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Subheading:
		return "subheading"
	case Item:
		return "item"
	case Skill:
		return "skill"
	}
	return "unknown"
}

// Line is one display block. Percent is set for Skill lines ("Name [70%]" list items).
// Cont marks a wrapped continuation of the previous line.
type Line struct {
	Kind    Kind
	Text    string
	Percent int
	Cont    bool
}

var skillRe = regexp.MustCompile(`^(.*?)\s*\[(\d{1,3})%\]$`)

// Parse converts a markdown body into lines in document order.
func Parse(body string) []Line {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := markdown.Parse([]byte(body), p)

	var (
		lines []Line
		buf   strings.Builder
		open  bool
		kind  Kind
	)
	begin := func(k Kind) {
		buf.Reset()
		open, kind = true, k
	}
	end := func() {
		if !open {
			return
		}
		open = false
		text := strings.Join(strings.Fields(buf.String()), " ")
		if text == "" {
			return
		}
		lines = append(lines, classify(kind, text))
	}

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Heading:
			if entering {
				k := Heading
				if n.Level > 2 {
					k = Subheading
				}
				begin(k)
			} else {
				end()
			}
		case *ast.ListItem:
			if entering {
				begin(Item)
			} else {
				end()
			}
		case *ast.Paragraph:
			if _, inItem := n.GetParent().(*ast.ListItem); inItem {
				return ast.GoToNext
			}
			if entering {
				begin(Paragraph)
			} else {
				end()
			}
		case *ast.Text:
			if open {
				buf.Write(n.Literal)
			}
		case *ast.Code:
			if open {
				buf.Write(n.Literal)
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if open {
				buf.WriteByte(' ')
			}
		}
		return ast.GoToNext
	})
	return lines
}

func classify(k Kind, text string) Line {
	if k == Item {
		if m := skillRe.FindStringSubmatch(text); m != nil {
			pct, _ := strconv.Atoi(m[2])
			if pct > 100 {
				pct = 100
			}
			return Line{Kind: Skill, Text: m[1], Percent: pct}
		}
	}
	return Line{Kind: k, Text: text}
}

// Wrap breaks lines longer than width runes on spaces. Words longer than width are kept
// whole. Skill lines are never wrapped.
func Wrap(lines []Line, width int) []Line {
	if width <= 0 {
		return lines
	}
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Kind == Skill {
			out = append(out, l)
			continue
		}
		words := strings.Fields(l.Text)
		var cur []rune
		first := true
		flush := func() {
			out = append(out, Line{Kind: l.Kind, Text: string(cur), Cont: !first})
			first = false
			cur = cur[:0]
		}
		for _, w := range words {
			wr := []rune(w)
			if len(cur) > 0 && len(cur)+1+len(wr) > width {
				flush()
			}
			if len(cur) > 0 {
				cur = append(cur, ' ')
			}
			cur = append(cur, wr...)
		}
		if len(cur) > 0 {
			flush()
		}
	}
	return out
}

// Text renders lines as plain text, one block per line.
func Text(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case l.Kind == Item && !l.Cont:
			b.WriteString("- ")
		case l.Kind == Item:
			b.WriteString("  ")
		}
		b.WriteString(l.Text)
		if l.Kind == Skill {
			b.WriteString(" ")
			b.WriteString(strconv.Itoa(l.Percent))
			b.WriteString("%")
		}
	}
	return b.String()
}
