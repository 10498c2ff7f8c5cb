// Package jpegtile exposes a baseline JPEG decoder through a tile streaming
// interface: the caller supplies bytes through an input callback and
// receives the picture one minimum coded unit (MCU) at a time as RGB565
// big-endian pixels.
//
// Prepare walks the marker segments up to the start of scan and reports the
// picture geometry without decoding any pixels. Application and comment
// segments are skipped with the callback's skip form so the caller never
// buffers them.
//
// Decompress feeds the entropy coded data to image/jpeg as it is read; the
// compressed stream is never held in memory. image/jpeg decodes the whole
// frame before the first tile is emitted, so peak memory is the decoded
// planes (w*h bytes for grayscale, 1.5*w*h for 4:2:0 colour, 3*w*h for
// 4:4:4) plus the kept header segments and one tile of 2 bytes per MCU
// pixel. Tiles are converted straight from the planes without allocating
// per pixel.
package jpegtile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"github.com/nwhirschfeld/periph.io-ili9342c/rgb565"
)

// WorkSize is the minimum size of the work area handed to Prepare.
const WorkSize = 3100

var (
	// ErrFormat is returned for streams that are not baseline or progressive
	// JPEG.
	ErrFormat = errors.New("jpegtile: invalid JPEG stream")
	// ErrWorkArea is returned when the work area is smaller than WorkSize.
	ErrWorkArea = errors.New("jpegtile: work area too small")
	// ErrAborted is returned by Decompress when the output callback stops
	// the decode.
	ErrAborted = errors.New("jpegtile: aborted by output")
)

// Input reads up to n bytes into buf and returns the count. When buf is nil
// it must skip n bytes forward instead. A count of zero marks the end of
// the stream.
type Input func(buf []byte, n int) (int, error)

// Output receives one decoded tile. tile holds r.Dx()*r.Dy() RGB565 pixels,
// big-endian, row-major. Returning false aborts the decode.
type Output func(tile []byte, r image.Rectangle) bool

// ReaderInput adapts r to an Input, skipping with Seek.
func ReaderInput(r io.ReadSeeker) Input {
	return func(buf []byte, n int) (int, error) {
		if buf == nil {
			if _, err := r.Seek(int64(n), io.SeekCurrent); err != nil {
				return 0, err
			}
			return n, nil
		}
		return r.Read(buf[:n])
	}
}

// Decoder is a prepared JPEG session.
type Decoder struct {
	// Width and Height are the picture dimensions in pixels.
	Width, Height int
	// MCUWidth and MCUHeight are the MCU size in 8 pixel blocks.
	MCUWidth, MCUHeight int

	in     Input
	work   []byte
	header bytes.Buffer
	done   bool
}

// Prepare reads the stream headers through in. work is used as the read
// buffer for the rest of the session and must hold at least WorkSize bytes.
func Prepare(in Input, work []byte) (*Decoder, error) {
	if len(work) < WorkSize {
		return nil, ErrWorkArea
	}
	d := &Decoder{in: in, work: work}
	if err := d.readHeaders(); err != nil {
		return nil, err
	}
	return d, nil
}

// MCUSize returns the MCU size in pixels.
func (d *Decoder) MCUSize() image.Point {
	return image.Pt(d.MCUWidth*8, d.MCUHeight*8)
}

func (d *Decoder) readFull(buf []byte) error {
	for len(buf) > 0 {
		n, err := d.in(buf, len(buf))
		if n > 0 {
			buf = buf[n:]
			continue
		}
		if err == nil || err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (d *Decoder) readHeaders() error {
	b := d.work[:4]
	if err := d.readFull(b[:2]); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if b[0] != 0xFF || b[1] != 0xD8 {
		return ErrFormat
	}
	d.header.Write(b[:2])

	sof := false
	for {
		if err := d.readFull(b[:2]); err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if b[0] != 0xFF {
			return ErrFormat
		}
		marker := b[1]
		for marker == 0xFF {
			if err := d.readFull(b[1:2]); err != nil {
				return fmt.Errorf("%w: %v", ErrFormat, err)
			}
			marker = b[1]
		}
		switch {
		case marker == 0xD9:
			return ErrFormat
		case marker == 0x01 || marker >= 0xD0 && marker <= 0xD7:
			d.header.Write([]byte{0xFF, marker})
			continue
		}
		if err := d.readFull(b[2:4]); err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		n := int(binary.BigEndian.Uint16(b[2:4])) - 2
		if n < 0 {
			return ErrFormat
		}
		// APP0-APP13, APP15 and COM carry nothing the decoder needs. APP14
		// holds the Adobe colour transform and is kept.
		if marker >= 0xE0 && marker <= 0xEF && marker != 0xEE || marker == 0xFE {
			if n > 0 {
				if _, err := d.in(nil, n); err != nil {
					return err
				}
			}
			continue
		}
		if n > len(d.work)-4 {
			return ErrWorkArea
		}
		payload := d.work[4 : 4+n]
		if err := d.readFull(payload); err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		d.header.Write([]byte{0xFF, marker, b[2], b[3]})
		d.header.Write(payload)

		switch marker {
		case 0xC0, 0xC1, 0xC2:
			if err := d.parseFrame(payload); err != nil {
				return err
			}
			sof = true
		case 0xDA:
			if !sof {
				return ErrFormat
			}
			return nil
		}
	}
}

func (d *Decoder) parseFrame(p []byte) error {
	if len(p) < 6 {
		return ErrFormat
	}
	d.Height = int(binary.BigEndian.Uint16(p[1:3]))
	d.Width = int(binary.BigEndian.Uint16(p[3:5]))
	nc := int(p[5])
	if d.Width == 0 || d.Height == 0 || nc == 0 || len(p) < 6+3*nc {
		return ErrFormat
	}
	d.MCUWidth, d.MCUHeight = 1, 1
	if nc == 1 {
		return nil
	}
	for i := 0; i < nc; i++ {
		hv := p[6+3*i+1]
		if h := int(hv >> 4); h > d.MCUWidth {
			d.MCUWidth = h
		}
		if v := int(hv & 0x0F); v > d.MCUHeight {
			d.MCUHeight = v
		}
	}
	return nil
}

// inputReader turns an Input into an io.Reader for the entropy coded data.
type inputReader struct {
	in  Input
	err error
}

func (r *inputReader) Read(p []byte) (int, error) {
	n, err := r.in(p, len(p))
	if err != nil && err != io.EOF {
		r.err = err
	}
	if n == 0 && err == nil {
		err = io.EOF
	}
	return n, err
}

// pixelFunc returns the RGB565 value of the decoded pixel at x, y.
type pixelFunc func(x, y int) uint16

// pixels reads the decoded planes directly for the image types jpeg.Decode
// produces.
func pixels(img image.Image) pixelFunc {
	switch img := img.(type) {
	case *image.YCbCr:
		return func(x, y int) uint16 {
			yi, ci := img.YOffset(x, y), img.COffset(x, y)
			r, g, b := color.YCbCrToRGB(img.Y[yi], img.Cb[ci], img.Cr[ci])
			return rgb565.Pack(r, g, b)
		}
	case *image.Gray:
		return func(x, y int) uint16 {
			v := img.Pix[img.PixOffset(x, y)]
			return rgb565.Pack(v, v, v)
		}
	case *image.CMYK:
		return func(x, y int) uint16 {
			i := img.PixOffset(x, y)
			r, g, b := color.CMYKToRGB(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
			return rgb565.Pack(r, g, b)
		}
	}
	return func(x, y int) uint16 {
		c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
		return rgb565.Pack(c.R, c.G, c.B)
	}
}

// Decompress decodes the rest of the stream as it is read and calls out
// for every MCU tile in row-major order. Tiles on the right and bottom
// edges are clipped to the picture.
func (d *Decoder) Decompress(out Output) error {
	if d.done {
		return ErrFormat
	}
	d.done = true
	in := &inputReader{in: d.in}
	img, err := jpeg.Decode(io.MultiReader(&d.header, in))
	if in.err != nil {
		return in.err
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	b := img.Bounds()
	at := pixels(img)
	mcu := d.MCUSize()
	tile := make([]byte, mcu.X*mcu.Y*2)
	for ty := 0; ty < d.Height; ty += mcu.Y {
		for tx := 0; tx < d.Width; tx += mcu.X {
			r := image.Rect(tx, ty, min(tx+mcu.X, d.Width), min(ty+mcu.Y, d.Height))
			i := 0
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					rgb565.Put(tile, i, at(b.Min.X+x, b.Min.Y+y))
					i += 2
				}
			}
			if !out(tile[:i], r) {
				return ErrAborted
			}
		}
	}
	return nil
}
