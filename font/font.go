// Package font defines the glyph resources rendered by the ili9342c driver.
//
// Three shapes are supported and selected by the caller:
//
//   - FixedFont: monospace 1 bit per pixel raster glyphs.
//   - VariableFont: proportional glyphs in a shared bit-packed stream.
//   - VectorFont: Hershey style stroke glyphs.
//
// The resource types only hold data and decode helpers; drawing is done by
// the ili9342c.Device methods.
package font

import (
	"errors"
	"strings"
)

// ErrInvalid is returned by Validate for malformed resources.
var ErrInvalid = errors.New("font: invalid resource")

// FixedFont is a monospace raster font. Each glyph row is Width/8 bytes,
// most significant bit leftmost, and glyphs are stored contiguously from
// First to Last.
type FixedFont struct {
	Width  int
	Height int
	First  byte
	Last   byte
	Data   []byte
}

// Contains reports whether the font has a glyph for code.
func (f *FixedFont) Contains(code byte) bool {
	return code >= f.First && code <= f.Last
}

// RowBytes returns the number of bytes per glyph row.
func (f *FixedFont) RowBytes() int {
	return f.Width / 8
}

// Glyph returns the packed rows of the glyph for code, or nil when the code
// is out of range or the data is truncated.
func (f *FixedFont) Glyph(code byte) []byte {
	if !f.Contains(code) {
		return nil
	}
	size := f.Height * f.RowBytes()
	start := int(code-f.First) * size
	if start+size > len(f.Data) {
		return nil
	}
	return f.Data[start : start+size]
}

// Validate checks the declared geometry against the data.
func (f *FixedFont) Validate() error {
	if f.Width <= 0 || f.Width%8 != 0 || f.Height <= 0 || f.First > f.Last {
		return ErrInvalid
	}
	if len(f.Data) < (int(f.Last-f.First)+1)*f.Height*f.RowBytes() {
		return ErrInvalid
	}
	return nil
}

// VariableFont is a proportional font. Map lists the characters present;
// the n-th character has width Widths[n] and its glyph starts at the bit
// offset stored big-endian in Offsets[n*OffsetWidth:]. Samples are BPP bits
// wide in the shared Bitmaps stream.
type VariableFont struct {
	Map         string
	BPP         int
	Height      int
	OffsetWidth int
	MaxWidth    int
	Widths      []byte
	Offsets     []byte
	Bitmaps     []byte
}

// Index returns the position of c in the character map.
func (f *VariableFont) Index(c byte) (int, bool) {
	i := strings.IndexByte(f.Map, c)
	return i, i >= 0
}

// Width returns the advance of the character at index i.
func (f *VariableFont) Width(i int) int {
	if i < 0 || i >= len(f.Widths) {
		return 0
	}
	return int(f.Widths[i])
}

// BitOffset returns the absolute bit offset of the glyph at index i.
func (f *VariableFont) BitOffset(i int) uint32 {
	start := i * f.OffsetWidth
	if f.OffsetWidth < 1 || f.OffsetWidth > 3 || start+f.OffsetWidth > len(f.Offsets) {
		return 0
	}
	var off uint32
	for _, b := range f.Offsets[start : start+f.OffsetWidth] {
		off = off<<8 | uint32(b)
	}
	return off
}

// GlyphMax returns MaxWidth, or the widest entry of Widths when MaxWidth is
// not set.
func (f *VariableFont) GlyphMax() int {
	if f.MaxWidth > 0 {
		return f.MaxWidth
	}
	m := 0
	for _, w := range f.Widths {
		m = max(m, int(w))
	}
	return m
}

// Measure returns the summed width of the mapped characters of s.
// Characters missing from the map are ignored.
func (f *VariableFont) Measure(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		if idx, ok := f.Index(s[i]); ok {
			w += f.Width(idx)
		}
	}
	return w
}

// Validate checks that the tables cover the character map.
func (f *VariableFont) Validate() error {
	if f.OffsetWidth < 1 || f.OffsetWidth > 3 || f.Height <= 0 || f.BPP < 1 {
		return ErrInvalid
	}
	if len(f.Widths) < len(f.Map) || len(f.Offsets) < len(f.Map)*f.OffsetWidth {
		return ErrInvalid
	}
	return nil
}
