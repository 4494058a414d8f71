package content

import (
	"testing"

	"motherboard/internal/object"
	"motherboard/internal/parts"
	"motherboard/internal/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedResume(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"cpu", "ram", "gpu", "usb", "capacitor", "chip"}, reg.Types())
	assert.Equal(t, "MOTHERBOARD RESUME", reg.Title().Product)
	assert.NotEmpty(t, reg.Title().Hint)

	cpu, ok := reg.Lookup("cpu")
	require.True(t, ok)
	assert.Equal(t, uint32(0x0088ff), cpu.Color)
	assert.Equal(t, [3]float32{-10, 1, -8}, cpu.Position)
	assert.Contains(t, cpu.Content, "PROFESSIONAL SUMMARY")
	require.NotNil(t, cpu.Builder)
	assert.Equal(t, "cpu", cpu.Builder(texture.NewGenerator(1)).Name)

	for i := 0; i < reg.Len(); i++ {
		d := reg.At(i)
		assert.NotEmpty(t, d.Type)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Content)
		assert.LessOrEqual(t, d.Color, uint32(0xffffff))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	all := reg.All()
	all[0].Name = "changed"
	all[0].Content = ""

	assert.NotEqual(t, "changed", reg.At(0).Name)
	assert.NotEmpty(t, reg.At(0).Content)
}

func stubBind(typ string) (parts.Builder, bool) {
	if typ == "mystery" {
		return nil, false
	}
	return func(*texture.Generator) *object.Object { return object.NewGroup(typ) }, true
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown type",
			doc: `
title: {product: X, version: v1, hint: h}
components:
  - {type: mystery, name: M, position: [0, 0, 0], color: "#123456", content: body}
`,
			want: ErrUnknownType,
		},
		{
			name: "duplicate type",
			doc: `
title: {product: X, version: v1, hint: h}
components:
  - {type: cpu, name: A, position: [0, 0, 0], color: "#123456", content: a}
  - {type: cpu, name: B, position: [1, 0, 0], color: "#654321", content: b}
`,
			want: ErrDuplicateType,
		},
		{
			name: "bad color",
			doc: `
title: {product: X, version: v1, hint: h}
components:
  - {type: cpu, name: A, position: [0, 0, 0], color: "green", content: a}
`,
			want: ErrInvalid,
		},
		{
			name: "missing content",
			doc: `
title: {product: X, version: v1, hint: h}
components:
  - {type: cpu, name: A, position: [0, 0, 0], color: "#00ff00"}
`,
			want: ErrInvalid,
		},
		{
			name: "short position",
			doc: `
title: {product: X, version: v1, hint: h}
components:
  - {type: cpu, name: A, position: [0, 0], color: "#00ff00", content: a}
`,
			want: ErrInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), stubBind)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseKeepsAuthoredOrder(t *testing.T) {
	doc := `
title: {product: X, version: v1, hint: h}
components:
  - {type: b, name: B, position: [1, 2, 3], color: "#0000ff", content: "  second  "}
  - {type: a, name: A, position: [0, 0, 0], color: "#FF0000", content: first}
`
	reg, err := Parse([]byte(doc), stubBind)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, reg.Types())
	assert.Equal(t, "second", reg.At(0).Content)
	assert.Equal(t, uint32(0xff0000), reg.At(1).Color)

	_, ok := reg.Lookup("c")
	assert.False(t, ok)
}
