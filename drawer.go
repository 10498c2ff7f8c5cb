package ili9342c

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

// band adapts a pixel.Image in wire format to draw.Image.
type band struct {
	img pixel.Image[pixel.RGB565BE]
}

func (b band) ColorModel() color.Model { return ColorModel }

func (b band) Bounds() image.Rectangle {
	w, h := b.img.Size()
	return image.Rect(0, 0, w, h)
}

func (b band) At(x, y int) color.Color {
	return b.img.Get(x, y).RGBA()
}

func (b band) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(b.Bounds()) {
		return
	}
	b.img.Set(x, y, RGBATo565(c).BE())
}

// ColorModel implements display.Drawer.
func (d *Device) ColorModel() color.Model {
	return ColorModel
}

// Draw implements display.Drawer. src is converted to RGB565 and sent in
// horizontal bands no larger than the scratch buffer.
func (d *Device) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	clipped := dst.Intersect(d.Bounds())
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	w, h := clipped.Dx(), clipped.Dy()
	rows := h
	if d.buffer != nil {
		rows = min(h, len(d.buffer)/(w*2))
	}
	buf, err := d.scratch(w * max(rows, 1) * 2)
	if err != nil {
		return err
	}
	for y := 0; y < h; y += rows {
		n := min(rows, h-y)
		b := band{pixel.NewImageFromBytes[pixel.RGB565BE](w, n, buf[:w*n*2])}
		draw.Draw(b, b.Bounds(), src, sp.Add(image.Pt(0, y)), draw.Src)
		if err := d.BlitBuffer(b.img.RawBuffer(), clipped.Min.X, clipped.Min.Y+y, w, n); err != nil {
			return err
		}
	}
	return nil
}

// SetPixel implements drivers.Displayer. The first failure is kept and
// returned by the next Display.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	if err := d.Pixel(int(x), int(y), RGBTo565(c.R, c.G, c.B)); err != nil && d.pixelErr == nil {
		d.pixelErr = err
	}
}

// Display implements drivers.Displayer. Drawing is unbuffered, so it only
// reports and clears the first SetPixel error since the last call.
func (d *Device) Display() error {
	err := d.pixelErr
	d.pixelErr = nil
	return err
}

// DrawRGBBitmap8 copies big-endian RGB565 data, as produced by
// pixel.Image[pixel.RGB565BE].RawBuffer, into the w×h rectangle at x, y.
func (d *Device) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	return d.BlitBuffer(data, int(x), int(y), int(w), int(h))
}

// FillRectangle fills a rectangle with an RGBA colour.
func (d *Device) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	return d.FillRect(int(x), int(y), int(w), int(h), RGBTo565(c.R, c.G, c.B))
}

var (
	_ display.Drawer    = &Device{}
	_ drivers.Displayer = &Device{}
)
