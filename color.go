package ili9342c

import (
	"image/color"
	"math/bits"

	"github.com/nwhirschfeld/periph.io-ili9342c/rgb565"
	"tinygo.org/x/drivers/pixel"
)

// Color565 is an RGB565 colour in host order. It goes on the wire high byte
// first.
type Color565 uint16

// Colors
const (
	Black   Color565 = 0x0000
	Blue    Color565 = 0x001F
	Red     Color565 = 0xF800
	Green   Color565 = 0x07E0
	Cyan    Color565 = 0x07FF
	Magenta Color565 = 0xF81F
	Yellow  Color565 = 0xFFE0
	White   Color565 = 0xFFFF
)

// RGBTo565 packs 8 bit channels into a Color565.
func RGBTo565(r, g, b uint8) Color565 {
	return Color565(rgb565.Pack(r, g, b))
}

// RGBATo565 converts any colour, ignoring alpha.
func RGBATo565(c color.Color) Color565 {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return RGBTo565(rgba.R, rgba.G, rgba.B)
}

// BE returns c in the wire byte order used by pixel images.
func (c Color565) BE() pixel.RGB565BE {
	return pixel.RGB565BE(bits.ReverseBytes16(uint16(c)))
}

// RGBA implements color.Color.
func (c Color565) RGBA() (r, g, b, a uint32) {
	return c.BE().RGBA().RGBA()
}

// ColorModel converts to Color565.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color565); ok {
		return c
	}
	return RGBATo565(c)
})

// put writes c big-endian at buf[i:i+2].
func put(buf []byte, i int, c Color565) {
	rgb565.Put(buf, i, uint16(c))
}

// UnpackBitsTo565 expands a 1 bit per pixel bitmap into big-endian RGB565
// pixels in out, most significant bit leftmost. Rows are width pixels long
// and start on a byte boundary; the padding bits of a row's last byte are
// ignored. It returns the number of bytes written, which stops short when
// out is full.
func UnpackBitsTo565(src []byte, out []byte, width int, fg, bg Color565) int {
	if width <= 0 {
		return 0
	}
	n, col := 0, 0
	for _, b := range src {
		for bit := 7; bit >= 0; bit-- {
			if n+2 > len(out) {
				return n
			}
			c := bg
			if b&(1<<uint(bit)) != 0 {
				c = fg
			}
			put(out, n, c)
			n += 2
			if col++; col >= width {
				col = 0
				break
			}
		}
	}
	return n
}
