package font

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"github.com/nwhirschfeld/periph.io-ili9342c/bitstream"
)

// canvas records the pixels a tinyfont glyph sets. It implements
// drivers.Displayer.
type canvas struct {
	w, h int
	set  []bool
}

func (c *canvas) Size() (int16, int16) { return int16(c.w), int16(c.h) }

func (c *canvas) SetPixel(x, y int16, _ color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	c.set[int(y)*c.w+int(x)] = true
}

func (c *canvas) Display() error { return nil }

// VariableFromTinyfont rasterises the single byte characters of chars from f
// into a one bit per sample VariableFont. Each glyph cell is XAdvance wide and spans
// the tallest ascent plus the deepest descent of the set; ink outside the
// cell is dropped.
func VariableFromTinyfont(f tinyfont.Fonter, chars string) *VariableFont {
	ascent, descent := 0, 0
	for i := 0; i < len(chars); i++ {
		info := f.GetGlyph(rune(chars[i])).Info()
		ascent = max(ascent, -int(info.YOffset))
		descent = max(descent, int(info.Height)+int(info.YOffset))
	}
	vf := &VariableFont{
		Map:    chars,
		BPP:    1,
		Height: max(ascent+descent, 1),
	}
	var w bitstream.Writer
	offsets := make([]uint32, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		g := f.GetGlyph(rune(chars[i]))
		adv := int(g.Info().XAdvance)
		c := &canvas{w: adv, h: vf.Height, set: make([]bool, adv*vf.Height)}
		g.Draw(c, 0, int16(ascent), color.RGBA{A: 0xFF})

		offsets = append(offsets, w.Pos())
		for _, on := range c.set {
			if on {
				w.WriteBits(1, 1)
			} else {
				w.WriteBits(0, 1)
			}
		}
		vf.Widths = append(vf.Widths, byte(adv))
		vf.MaxWidth = max(vf.MaxWidth, adv)
	}
	vf.OffsetWidth = 2
	if w.Pos() > 0xFFFF {
		vf.OffsetWidth = 3
	}
	for _, off := range offsets {
		for b := vf.OffsetWidth - 1; b >= 0; b-- {
			vf.Offsets = append(vf.Offsets, byte(off>>(8*uint(b))))
		}
	}
	vf.Bitmaps = w.Bytes()
	return vf
}
