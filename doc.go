// Package ili9342c drives ILI9342C based 240×320 colour LCDs over SPI.
//
// The controller keeps its own frame memory. Every drawing call opens an
// address window (CASET, PASET, RAMWR) and streams RGB565 pixels into it,
// high byte first, so the driver needs no frame buffer of its own.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	SCK         → SPI Clock
//	MOSI        → SPI Data
//	DC          → GPIO (required)
//	CS          → GPIO (optional, or tied low)
//	RST         → GPIO (optional)
//	BL          → GPIO (optional backlight enable)
//
// # Basic Usage
//
//	if _, err := host.Init(); err != nil {
//		log.Fatal(err)
//	}
//	p, err := spireg.Open("SPI0.0")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//	dev, err := ili9342c.NewSPI(p, gpioreg.ByName("GPIO15"), ili9342c.Config{
//		Width:     240,
//		Height:    320,
//		Rotation:  drivers.Rotation90,
//		Reset:     gpioreg.ByName("GPIO33"),
//		Backlight: gpioreg.ByName("GPIO32"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := dev.Init(); err != nil {
//		log.Fatal(err)
//	}
//	dev.Text(font.FixedFromFace(basicfont.Face7x13), "hello", 10, 10, ili9342c.Yellow)
//
// # Clipping
//
// Drawing never fails because of coordinates. A window that is not inside
// the logical screen is dropped without any bus traffic. Glyphs and
// bitmaps whose right edge is past the screen are skipped whole; Write
// additionally stops at the first such glyph. In JPEGSlow mode tiles that
// end off screen are dropped while the rest of the picture is decoded.
//
// # Scratch Memory
//
// Text, bitmaps, JPEGs and Draw need scratch memory for pixel data. By
// default it is allocated per call. Config.BufferSize reserves one buffer
// at construction instead; calls that need more than it holds fail with
// ErrBufferTooSmall.
//
// A Device is not safe for concurrent use.
package ili9342c
