package ili9342c

import (
	"fmt"

	"github.com/nwhirschfeld/periph.io-ili9342c/bitstream"
	"github.com/nwhirschfeld/periph.io-ili9342c/font"
)

// Char returns the single character string for code, for the text calls
// that take a string.
func Char(code byte) string {
	return string([]byte{code})
}

// textColors picks the foreground and background from the optional colour
// arguments; the defaults are white on black.
func textColors(colors []Color565) (fg, bg Color565) {
	fg, bg = White, Black
	if len(colors) > 0 {
		fg = colors[0]
	}
	if len(colors) > 1 {
		bg = colors[1]
	}
	return fg, bg
}

// fits reports whether a glyph spanning x to x+w-1 ends on screen.
func (d *Device) fits(x, w int) bool {
	x1 := x + w - 1
	return x1 >= 0 && x1 < d.width
}

// Text draws s with a fixed raster font. colors are the optional
// foreground and background. Characters outside the font are skipped.
// Glyphs running past the right edge are not drawn but the remaining
// characters are still processed.
func (d *Device) Text(f *font.FixedFont, s string, x, y int, colors ...Color565) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("ili9342c: text: %w", err)
	}
	fg, bg := textColors(colors)
	buf, err := d.scratch(f.Width * f.Height * 2)
	if err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		glyph := f.Glyph(s[i])
		if glyph == nil {
			continue
		}
		UnpackBitsTo565(glyph, buf, f.Width, fg, bg)
		if d.fits(x, f.Width) {
			if err := d.BlitBuffer(buf, x, y, f.Width, f.Height); err != nil {
				return err
			}
		}
		x += f.Width
	}
	return nil
}

// Write draws s with a proportional font and returns the width drawn.
// Characters missing from the font map are skipped. Drawing stops at the
// first glyph that would run past the right edge.
func (d *Device) Write(f *font.VariableFont, s string, x, y int, colors ...Color565) (int, error) {
	fg, bg := textColors(colors)
	buf, err := d.scratch(f.GlyphMax() * f.Height * 2)
	if err != nil {
		return 0, err
	}
	drawn := 0
	for i := 0; i < len(s); i++ {
		idx, ok := f.Index(s[i])
		if !ok {
			continue
		}
		w := f.Width(idx)
		if w*f.Height*2 > len(buf) {
			return drawn, fmt.Errorf("%w: glyph %q is wider than the font maximum", ErrResource, s[i])
		}
		c := bitstream.NewCursor(f.Bitmaps, f.BitOffset(idx))
		n := 0
		for p := 0; p < w*f.Height; p++ {
			col := bg
			if c.ReadColor(f.BPP+1) != 0 {
				col = fg
			}
			put(buf, n, col)
			n += 2
		}
		if !d.fits(x, w) {
			break
		}
		if err := d.BlitBuffer(buf[:n], x, y, w, f.Height); err != nil {
			return drawn, err
		}
		drawn += w
		x += w
	}
	return drawn, nil
}

// WriteLen returns the width s would take in f, without drawing.
func (d *Device) WriteLen(f *font.VariableFont, s string) int {
	return f.Measure(s)
}

// DrawVector draws s with a vector font, scaled by scale (1 when omitted).
func (d *Device) DrawVector(f *font.VectorFont, s string, x, y int, c Color565, scale ...float64) error {
	sc := 1.0
	if len(scale) > 0 {
		sc = scale[0]
	}
	for i := 0; i < len(s); i++ {
		g, ok := f.Glyph(s[i])
		if !ok {
			continue
		}
		left := font.Scale(g.Left, sc)
		right := font.Scale(g.Right, sc)
		penUp := true
		var fromX, fromY int
		for _, v := range g.Vertices {
			if v.PenUp {
				penUp = true
				continue
			}
			toX := x + font.Scale(v.X, sc) - left
			toY := y + font.Scale(v.Y, sc)
			if !penUp {
				if err := d.Line(fromX, fromY, toX, toY, c); err != nil {
					return err
				}
			}
			fromX, fromY = toX, toY
			penUp = false
		}
		x += right - left
	}
	return nil
}
