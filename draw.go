package ili9342c

import "fmt"

// scratch returns n bytes of pixel scratch: a prefix of the resident buffer
// when one is configured, otherwise a fresh slice that the caller drops
// when it returns.
func (d *Device) scratch(n int) ([]byte, error) {
	if d.buffer == nil {
		return make([]byte, n), nil
	}
	if n > len(d.buffer) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, n, len(d.buffer))
	}
	return d.buffer[:n], nil
}

// Fill fills the whole screen with c.
func (d *Device) Fill(c Color565) error {
	return d.FillRect(0, 0, d.width, d.height, c)
}

// FillRect fills a w×h rectangle. Nothing is drawn unless the rectangle is
// entirely on screen.
func (d *Device) FillRect(x, y, w, h int, c Color565) error {
	return d.stream(x, y, x+w-1, y+h-1, func(t *transaction) error {
		return t.fill(c, w*h)
	})
}

// Pixel draws a single pixel.
func (d *Device) Pixel(x, y int, c Color565) error {
	return d.stream(x, y, x, y, func(t *transaction) error {
		return t.data([]byte{byte(c >> 8), byte(c)})
	})
}

// HLine draws a horizontal run of w pixels, clipped at the right edge.
func (d *Device) HLine(x, y, w int, c Color565) error {
	if x+w > d.width {
		w = d.width - x
	}
	return d.FillRect(x, y, w, 1, c)
}

// VLine draws a vertical run of h pixels, clipped at the bottom edge.
func (d *Device) VLine(x, y, h int, c Color565) error {
	if y+h > d.height {
		h = d.height - y
	}
	return d.FillRect(x, y, 1, h, c)
}

// Rect draws the outline of a w×h rectangle.
func (d *Device) Rect(x, y, w, h int, c Color565) error {
	if err := d.HLine(x, y, w, c); err != nil {
		return err
	}
	if err := d.VLine(x, y, h, c); err != nil {
		return err
	}
	if err := d.HLine(x, y+h-1, w, c); err != nil {
		return err
	}
	return d.VLine(x+w-1, y, h, c)
}

// Line draws a line between two points. Consecutive pixels on the major
// axis are sent as one horizontal or vertical run; single pixel runs use
// Pixel.
func (d *Device) Line(x0, y0, x1, y1 int, c Color565) error {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx, dy := x1-x0, abs(y1-y0)
	e := dx >> 1
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}
	// run plots n pixels starting at major coordinate xs on minor line y.
	run := func(xs, y, n int) error {
		switch {
		case steep && n == 1:
			return d.Pixel(y, xs, c)
		case steep:
			return d.VLine(y, xs, n, c)
		case n == 1:
			return d.Pixel(xs, y, c)
		default:
			return d.HLine(xs, y, n, c)
		}
	}
	xs, n := x0, 0
	for ; x0 <= x1; x0++ {
		n++
		e -= dy
		if e < 0 {
			e += dx
			if err := run(xs, y0, n); err != nil {
				return err
			}
			n = 0
			y0 += ystep
			xs = x0 + 1
		}
	}
	if n > 0 {
		if steep {
			return d.VLine(y0, xs, n, c)
		}
		return d.HLine(xs, y0, n, c)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// BlitBuffer writes big-endian RGB565 pixels from buf into the w×h
// rectangle at x, y. At most w*h*2 bytes of buf are sent; buf is not
// copied.
func (d *Device) BlitBuffer(buf []byte, x, y, w, h int) error {
	n := min(len(buf), w*h*2)
	return d.stream(x, y, x+w-1, y+h-1, func(t *transaction) error {
		return t.blit(buf[:n])
	})
}
