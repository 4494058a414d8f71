// Package content holds the résumé sections shown on the board. Sections are authored in
// an embedded YAML document, checked against an embedded JSON Schema, and bound to their
// geometry builders by type. The resulting Registry is read-only.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"motherboard/internal/parts"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed resume.yaml
var resumeYAML []byte

//go:embed resume.schema.json
var resumeSchema string

var (
	// ErrInvalid is returned when the document does not match the schema.
	ErrInvalid = errors.New("content: invalid document")
	// ErrUnknownType is returned when a section names a type with no builder.
	ErrUnknownType = errors.New("content: unknown component type")
	// ErrDuplicateType is returned when two sections share a type.
	ErrDuplicateType = errors.New("content: duplicate component type")
)

// BindFunc resolves a section type to its geometry builder.
type BindFunc func(typ string) (parts.Builder, bool)

// Title is the static heading of the title panel.
type Title struct {
	Product string `yaml:"product"`
	Version string `yaml:"version"`
	Hint    string `yaml:"hint"`
}

// Descriptor is one résumé section: how it looks on the board and what it says.
type Descriptor struct {
	Type     string
	Name     string
	Position [3]float32
	Color    uint32 // 0xRRGGBB
	Content  string // markdown
	Builder  parts.Builder
}

type document struct {
	Title      Title       `yaml:"title"`
	Components []component `yaml:"components"`
}

type component struct {
	Type     string     `yaml:"type"`
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Color    string     `yaml:"color"`
	Content  string     `yaml:"content"`
}

// Load parses the embedded résumé and binds it to the part builders.
func Load() (*Registry, error) {
	return Parse(resumeYAML, parts.ByType)
}

// Parse validates a résumé document and binds each section with bind.
func Parse(data []byte, bind BindFunc) (*Registry, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}

	descs := make([]Descriptor, 0, len(doc.Components))
	for _, c := range doc.Components {
		b, ok := bind(c.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
		}
		color, err := parseColor(c.Color)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", c.Type, err)
		}
		descs = append(descs, Descriptor{
			Type:     c.Type,
			Name:     c.Name,
			Position: c.Position,
			Color:    color,
			Content:  strings.TrimSpace(c.Content),
			Builder:  b,
		})
	}
	return New(doc.Title, descs)
}

// validate checks the raw YAML against the schema. The schema validator works on JSON
// values, so the document is round-tripped through encoding/json first.
func validate(data []byte) error {
	schema, err := jsonschema.CompileString("resume.schema.json", resumeSchema)
	if err != nil {
		return fmt.Errorf("content: compile schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content: decode: %w", err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("content: encode: %w", err)
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		return fmt.Errorf("content: encode: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func parseColor(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || v > 0xffffff {
		return 0, fmt.Errorf("bad color %q", s)
	}
	return uint32(v), nil
}
