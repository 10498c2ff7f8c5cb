package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestFixedFontGlyph(t *testing.T) {
	f := &FixedFont{
		Width:  8,
		Height: 2,
		First:  'A',
		Last:   'C',
		Data:   []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06},
	}
	require.NoError(t, f.Validate())

	tests := []struct {
		name string
		code byte
		want []byte
	}{
		{"first", 'A', []byte{0x01, 0x02}},
		{"middle", 'B', []byte{0x03, 0x04}},
		{"last", 'C', []byte{0x05, 0x06}},
		{"below range", '@', nil},
		{"above range", 'D', nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Glyph(tt.code))
		})
	}
}

func TestFixedFontValidate(t *testing.T) {
	tests := []struct {
		name    string
		font    FixedFont
		wantErr bool
	}{
		{"ok", FixedFont{Width: 16, Height: 1, First: 'a', Last: 'a', Data: []byte{0, 0}}, false},
		{"width not byte aligned", FixedFont{Width: 6, Height: 1, First: 'a', Last: 'a', Data: []byte{0}}, true},
		{"truncated", FixedFont{Width: 8, Height: 2, First: 'a', Last: 'b', Data: []byte{0, 0, 0}}, true},
		{"inverted range", FixedFont{Width: 8, Height: 1, First: 'b', Last: 'a'}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.font.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVariableFontOffsets(t *testing.T) {
	tests := []struct {
		name        string
		offsetWidth int
		offsets     []byte
		want        []uint32
	}{
		{"1 byte", 1, []byte{0, 12, 200}, []uint32{0, 12, 200}},
		{"2 bytes", 2, []byte{0, 0, 0x01, 0x02, 0xFF, 0xFF}, []uint32{0, 0x0102, 0xFFFF}},
		{"3 bytes", 3, []byte{0, 0, 1, 0x01, 0x02, 0x03, 0x10, 0, 0}, []uint32{1, 0x010203, 0x100000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &VariableFont{Map: "abc", OffsetWidth: tt.offsetWidth, Offsets: tt.offsets}
			for i, want := range tt.want {
				assert.Equal(t, want, f.BitOffset(i))
			}
		})
	}
}

func TestVariableFontMeasure(t *testing.T) {
	f := &VariableFont{
		Map:         "ab c",
		BPP:         1,
		Height:      4,
		OffsetWidth: 1,
		Widths:      []byte{3, 5, 2, 7},
		Offsets:     []byte{0, 0, 0, 0},
	}
	require.NoError(t, f.Validate())
	assert.Equal(t, 0, f.Measure(""))
	assert.Equal(t, 3+5+2+7, f.Measure("ab c"))
	// 'z' is not mapped and contributes nothing.
	assert.Equal(t, 3+3, f.Measure("aza"))
	i, ok := f.Index('c')
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = f.Index('q')
	assert.False(t, ok)
}

func TestVectorFontGlyph(t *testing.T) {
	var b VectorBuilder
	b.Add('L', VectorGlyph{
		Left:  -4,
		Right: 5,
		Vertices: []Vertex{
			{X: -3, Y: -9},
			{X: -3, Y: 3},
			{PenUp: true},
			{X: 2, Y: 3},
		},
	})
	f := b.Font()

	g, ok := f.Glyph('L')
	require.True(t, ok)
	assert.Equal(t, -4, g.Left)
	assert.Equal(t, 5, g.Right)
	assert.Equal(t, []Vertex{{X: -3, Y: -9}, {X: -3, Y: 3}, {PenUp: true}, {X: 2, Y: 3}}, g.Vertices)

	g, ok = f.Glyph(' ')
	require.True(t, ok)
	assert.Empty(t, g.Vertices)

	_, ok = f.Glyph(31)
	assert.False(t, ok)
	_, ok = f.Glyph(200)
	assert.False(t, ok)
}

func TestScale(t *testing.T) {
	assert.Equal(t, 3, Scale(3, 1))
	assert.Equal(t, 5, Scale(3, 1.5))  // 4.5 rounds away from zero
	assert.Equal(t, -5, Scale(-3, 1.5))
	assert.Equal(t, 0, Scale(1, 0.4))
}

func TestFixedFromFace(t *testing.T) {
	f := FixedFromFace(basicfont.Face7x13)
	require.NoError(t, f.Validate())
	assert.Equal(t, 8, f.Width)
	assert.Equal(t, 13, f.Height)
	assert.Equal(t, byte(' '), f.First)
	assert.Equal(t, byte('~'), f.Last)

	for _, b := range f.Glyph(' ') {
		assert.Zero(t, b)
	}
	set := 0
	for _, b := range f.Glyph('#') {
		set += int(b)
		// Only the first 6 columns carry face pixels.
		assert.Zero(t, b&0x03)
	}
	assert.NotZero(t, set)
}

func TestVariableFontGlyphMax(t *testing.T) {
	f := &VariableFont{Widths: []byte{3, 9, 4}}
	assert.Equal(t, 9, f.GlyphMax())
	f.MaxWidth = 12
	assert.Equal(t, 12, f.GlyphMax())
	assert.Zero(t, (&VariableFont{}).GlyphMax())
}
