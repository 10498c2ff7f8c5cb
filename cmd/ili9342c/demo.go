package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"
	"tinygo.org/x/tinyfont/proggy"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
	"github.com/nwhirschfeld/periph.io-ili9342c/bitmap"
	"github.com/nwhirschfeld/periph.io-ili9342c/font"
)

func init() { rootCmd.AddCommand(demoCmd) }

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "draw a test card",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(demo)
	},
}

var bars = []ili9342c.Color565{
	ili9342c.White, ili9342c.Yellow, ili9342c.Cyan, ili9342c.Green,
	ili9342c.Magenta, ili9342c.Red, ili9342c.Blue, ili9342c.Black,
}

// checker returns a two-frame 16x16 checkerboard, the second frame inverted.
func checker() *bitmap.Bitmap {
	b := bitmap.Builder{
		Width:   16,
		Height:  16,
		BPP:     1,
		Palette: []uint16{uint16(ili9342c.Black), uint16(ili9342c.White)},
	}
	for frame := 0; frame < 2; frame++ {
		px := make([]uint8, 16*16)
		for i := range px {
			x, y := i%16, i/16
			px[i] = uint8((x/4+y/4+frame)%2)
		}
		b.Frame(px)
	}
	return b.Bitmap()
}

func demo(dev *ili9342c.Device) error {
	w, h := dev.Width(), dev.Height()
	if err := dev.Fill(ili9342c.Black); err != nil {
		return err
	}
	bw := w / len(bars)
	for i, c := range bars {
		if err := dev.FillRect(i*bw, 0, bw, h/3, c); err != nil {
			return err
		}
	}
	if err := dev.Rect(0, h/3, w, h-h/3, ili9342c.White); err != nil {
		return err
	}
	for x := 0; x < w; x += w / 8 {
		if err := dev.Line(w/2, h-1, x, h/3+1, ili9342c.Green); err != nil {
			return err
		}
	}
	f := font.FixedFromFace(basicfont.Face7x13)
	label := dev.String()
	if err := dev.Text(f, label, (w-len(label)*f.Width)/2, h/3+8, ili9342c.Yellow); err != nil {
		return err
	}
	vf := font.VariableFromTinyfont(&proggy.TinySZ8pt7b, printable)
	msg := "proportional text"
	if _, err := dev.Write(vf, msg, (w-dev.WriteLen(vf, msg))/2, h/3+8+f.Height+4, ili9342c.Cyan); err != nil {
		return err
	}
	cb := checker()
	for i := 0; i < 2; i++ {
		if err := dev.Bitmap(cb, 8+i*24, h/3+48, i); err != nil {
			return err
		}
	}
	return nil
}
