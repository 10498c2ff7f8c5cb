// Package bitstream reads and writes MSB-first packed pixel streams as used
// by the font and bitmap resources of the ili9342c driver.
//
// A Cursor owns its position, so several decodes may run side by side over
// the same backing slice.
package bitstream

// Cursor reads bits from a byte slice, most significant bit first.
type Cursor struct {
	data []byte
	pos  uint32
}

// NewCursor returns a cursor over data positioned at bit offset pos.
func NewCursor(data []byte, pos uint32) *Cursor {
	return &Cursor{data: data, pos: pos}
}

// Pos returns the absolute bit position of the next read.
func (c *Cursor) Pos() uint32 {
	return c.pos
}

// Seek moves the cursor to the absolute bit position pos.
func (c *Cursor) Seek(pos uint32) {
	c.pos = pos
}

// Len returns the number of bits left before the end of the data.
func (c *Cursor) Len() int {
	n := len(c.data)*8 - int(c.pos)
	if n < 0 {
		return 0
	}
	return n
}

// ReadColor reads bpp-1 bits and returns them as an unsigned index.
//
// Resources declare their depth as "bits minus one", so callers pass the
// declared value plus one. ReadColor(1) consumes nothing and returns 0.
// Bits past the end of the data read as zero.
func (c *Cursor) ReadColor(bpp int) uint8 {
	var v uint8
	for i := 1; i < bpp; i++ {
		v = v<<1 | c.bit()
	}
	return v
}

// ReadBits reads n bits (n <= 32) and returns them right aligned.
func (c *Cursor) ReadBits(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v = v<<1 | uint32(c.bit())
	}
	return v
}

func (c *Cursor) bit() uint8 {
	idx := c.pos / 8
	shift := 7 - c.pos%8
	c.pos++
	if int(idx) >= len(c.data) {
		return 0
	}
	return c.data[idx] >> shift & 1
}

// Writer packs values MSB-first. It is the inverse of Cursor and is used to
// build resources in memory.
type Writer struct {
	buf []byte
	pos uint32
}

// WriteBits appends the low n bits of v.
func (w *Writer) WriteBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		idx := w.pos / 8
		if int(idx) >= len(w.buf) {
			w.buf = append(w.buf, 0)
		}
		if v>>uint(i)&1 != 0 {
			w.buf[idx] |= 1 << (7 - w.pos%8)
		}
		w.pos++
	}
}

// Pos returns the number of bits written so far.
func (w *Writer) Pos() uint32 {
	return w.pos
}

// Bytes returns the packed data, zero padded to a whole byte.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Pack packs each value of vals into n bits.
func Pack(vals []uint32, n int) []byte {
	var w Writer
	for _, v := range vals {
		w.WriteBits(v, n)
	}
	return w.Bytes()
}
