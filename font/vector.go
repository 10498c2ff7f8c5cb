package font

import "math"

// Hershey glyph coordinates are stored as printable characters offset from
// 'R'. A vertex whose first byte is ' ' lifts the pen.
const (
	vectorBias  = 'R'
	vectorPenUp = ' '

	vectorFirst = 32
	vectorLast  = 127
)

// VectorFont is a stroke font covering the characters 32 to 127.
//
// Index holds a little-endian 16-bit offset into Data per character. At that
// offset Data holds the vertex count, the left and right bearings and then
// the vertices as byte pairs.
type VectorFont struct {
	Index []byte
	Data  []byte
}

// Vertex is a point of a vector glyph relative to the glyph origin, or a pen
// lift.
type Vertex struct {
	X, Y  int
	PenUp bool
}

// VectorGlyph is a decoded vector glyph with unbiased coordinates.
type VectorGlyph struct {
	Left     int
	Right    int
	Vertices []Vertex
}

// Glyph decodes the glyph for code. It returns false for codes outside the
// font range or when the tables are truncated.
func (f *VectorFont) Glyph(code byte) (VectorGlyph, bool) {
	if code < vectorFirst || code > vectorLast {
		return VectorGlyph{}, false
	}
	ii := int(code-vectorFirst) * 2
	if ii+1 >= len(f.Index) {
		return VectorGlyph{}, false
	}
	offset := int(f.Index[ii]) | int(f.Index[ii+1])<<8
	if offset+3 > len(f.Data) {
		return VectorGlyph{}, false
	}
	length := int(int8(f.Data[offset]))
	g := VectorGlyph{
		Left:  int(int8(f.Data[offset+1])) - vectorBias,
		Right: int(int8(f.Data[offset+2])) - vectorBias,
	}
	offset += 3
	for i := 0; i < length; i++ {
		if offset+1 >= len(f.Data) {
			return VectorGlyph{}, false
		}
		if f.Data[offset] == vectorPenUp {
			g.Vertices = append(g.Vertices, Vertex{PenUp: true})
		} else {
			g.Vertices = append(g.Vertices, Vertex{
				X: int(int8(f.Data[offset])) - vectorBias,
				Y: int(int8(f.Data[offset+1])) - vectorBias,
			})
		}
		offset += 2
	}
	return g, true
}

// Scale rounds v*scale to the nearest integer, halves away from zero.
func Scale(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

// VectorBuilder assembles a VectorFont in memory. Glyphs not added are
// empty with zero bearings.
type VectorBuilder struct {
	glyphs map[byte]VectorGlyph
}

// Add sets the glyph for code.
func (b *VectorBuilder) Add(code byte, g VectorGlyph) {
	if b.glyphs == nil {
		b.glyphs = make(map[byte]VectorGlyph)
	}
	b.glyphs[code] = g
}

// Font encodes the added glyphs.
func (b *VectorBuilder) Font() *VectorFont {
	f := &VectorFont{Index: make([]byte, (vectorLast-vectorFirst+1)*2)}
	for c := vectorFirst; c <= vectorLast; c++ {
		g := b.glyphs[byte(c)]
		off := len(f.Data)
		f.Index[(c-vectorFirst)*2] = byte(off)
		f.Index[(c-vectorFirst)*2+1] = byte(off >> 8)
		f.Data = append(f.Data, byte(len(g.Vertices)), byte(g.Left+vectorBias), byte(g.Right+vectorBias))
		for _, v := range g.Vertices {
			if v.PenUp {
				f.Data = append(f.Data, vectorPenUp, vectorBias)
				continue
			}
			f.Data = append(f.Data, byte(v.X+vectorBias), byte(v.Y+vectorBias))
		}
	}
	return f
}
