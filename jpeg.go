package ili9342c

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/nwhirschfeld/periph.io-ili9342c/jpegtile"
)

// JPEGMode selects how a JPEG reaches the screen.
type JPEGMode int

const (
	// JPEGFast decodes into a frame sized buffer and sends it in one window.
	JPEGFast JPEGMode = iota
	// JPEGSlow sends every MCU tile as soon as it is decoded, needing only a
	// tile sized buffer. Tiles that would end off screen are dropped.
	JPEGSlow
)

func (m JPEGMode) String() string {
	if m == JPEGFast {
		return "fast"
	}
	return "slow"
}

// JPEGFile draws the JPEG file at path with its top-left corner at x, y.
func (d *Device) JPEGFile(path string, x, y int, mode JPEGMode) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.JPEG(f, x, y, mode)
}

// JPEG decodes src and draws it with its top-left corner at x, y.
func (d *Device) JPEG(src io.ReadSeeker, x, y int, mode JPEGMode) error {
	dec, err := jpegtile.Prepare(jpegtile.ReaderInput(src), make([]byte, jpegtile.WorkSize))
	if err != nil {
		return fmt.Errorf("%w: prepare: %v", ErrDecode, err)
	}
	if mode == JPEGFast {
		return d.jpegFast(dec, x, y)
	}
	return d.jpegSlow(dec, x, y)
}

func (d *Device) jpegFast(dec *jpegtile.Decoder, x, y int) error {
	stride := dec.Width * 2
	buf, err := d.scratch(stride * dec.Height)
	if err != nil {
		return err
	}
	err = dec.Decompress(func(tile []byte, r image.Rectangle) bool {
		w := r.Dx() * 2
		for row := 0; row < r.Dy(); row++ {
			copy(buf[(r.Min.Y+row)*stride+r.Min.X*2:], tile[row*w:(row+1)*w])
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("%w: decompress: %v", ErrDecode, err)
	}
	return d.BlitBuffer(buf, x, y, dec.Width, dec.Height)
}

func (d *Device) jpegSlow(dec *jpegtile.Decoder, x, y int) error {
	mcu := dec.MCUSize()
	buf, err := d.scratch(mcu.X * mcu.Y * 2)
	if err != nil {
		return err
	}
	var werr error
	err = dec.Decompress(func(tile []byte, r image.Rectangle) bool {
		dst := r.Add(image.Pt(x, y))
		if dst.Max.Y > d.height || dst.Max.X > d.width {
			return true
		}
		n := copy(buf, tile)
		werr = d.BlitBuffer(buf[:n], dst.Min.X, dst.Min.Y, r.Dx(), r.Dy())
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	if err != nil {
		return fmt.Errorf("%w: decompress: %v", ErrDecode, err)
	}
	return nil
}
