package ili9342c

import (
	"fmt"

	"github.com/nwhirschfeld/periph.io-ili9342c/bitmap"
)

// Bitmap draws frame of b (0 when omitted) with its top-left corner at x, y.
// A bitmap running past the right edge is skipped.
func (d *Device) Bitmap(b *bitmap.Bitmap, x, y int, frame ...int) error {
	idx := 0
	if len(frame) > 0 {
		idx = frame[0]
	}
	if b.Frames > 0 && (idx < 0 || idx >= b.Frames) {
		return fmt.Errorf("%w: frame %d of %d", ErrRange, idx, b.Frames)
	}
	if b.Frames == 0 {
		idx = 0
	}
	buf, err := d.scratch(b.Width * b.Height * 2)
	if err != nil {
		return err
	}
	c := b.Pixels(idx)
	for i := 0; i < len(buf); i += 2 {
		put(buf, i, Color565(b.Color(c.ReadColor(b.BPP+1))))
	}
	if !d.fits(x, b.Width) {
		return nil
	}
	return d.BlitBuffer(buf, x, y, b.Width, b.Height)
}
