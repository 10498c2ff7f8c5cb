// Package bitmap holds indexed, bit-packed bitmap resources drawn by the
// ili9342c driver.
package bitmap

import (
	"errors"

	"github.com/nwhirschfeld/periph.io-ili9342c/bitstream"
)

// ErrInvalid is returned by Validate for malformed resources.
var ErrInvalid = errors.New("bitmap: invalid resource")

// Bitmap is a palette indexed image. Each pixel is BPP bits in Data, most
// significant bit first, row-major. When Frames is greater than zero Data
// holds that many consecutive frames of Width*Height*BPP bits each.
type Bitmap struct {
	Width   int
	Height  int
	BPP     int
	Palette []uint16
	Data    []byte
	Frames  int
}

// FrameOffset returns the bit offset of frame n.
func (b *Bitmap) FrameOffset(n int) uint32 {
	return uint32(n * b.Width * b.Height * b.BPP)
}

// Pixels returns a cursor positioned at the start of frame n.
func (b *Bitmap) Pixels(n int) *bitstream.Cursor {
	return bitstream.NewCursor(b.Data, b.FrameOffset(n))
}

// Color returns the palette entry for index i, or 0 when i is outside the
// palette.
func (b *Bitmap) Color(i uint8) uint16 {
	if int(i) >= len(b.Palette) {
		return 0
	}
	return b.Palette[i]
}

// Validate checks the geometry and data length.
func (b *Bitmap) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.BPP < 1 || b.BPP > 8 || b.Frames < 0 {
		return ErrInvalid
	}
	frames := b.Frames
	if frames == 0 {
		frames = 1
	}
	if len(b.Data)*8 < frames*b.Width*b.Height*b.BPP {
		return ErrInvalid
	}
	return nil
}

// Builder packs palette indices into a Bitmap, one frame per call to Frame.
type Builder struct {
	Width   int
	Height  int
	BPP     int
	Palette []uint16

	w      bitstream.Writer
	frames int
}

// Frame appends a frame of Width*Height indices.
func (b *Builder) Frame(indices []uint8) {
	for i := 0; i < b.Width*b.Height; i++ {
		var v uint8
		if i < len(indices) {
			v = indices[i]
		}
		b.w.WriteBits(uint32(v), b.BPP)
	}
	b.frames++
}

// Bitmap returns the packed resource. Single frame builds leave Frames at 0.
func (b *Builder) Bitmap() *Bitmap {
	frames := b.frames
	if frames == 1 {
		frames = 0
	}
	return &Bitmap{
		Width:   b.Width,
		Height:  b.Height,
		BPP:     b.BPP,
		Palette: b.Palette,
		Data:    b.w.Bytes(),
		Frames:  frames,
	}
}
