package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
)

func init() { rootCmd.AddCommand(showCmd) }

var showCmd = &cobra.Command{
	Use:   "show <image>",
	Short: "scale any image to fit the screen and draw it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return err
		}
		run(func(dev *ili9342c.Device) error {
			r := fit(img.Bounds().Size(), dev.Bounds())
			dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
			draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
			if err := dev.Fill(ili9342c.Black); err != nil {
				return err
			}
			return dev.Draw(r, dst, image.Point{})
		})
		return nil
	},
}

// fit returns the largest rectangle with the aspect ratio of size that is
// centred in bounds.
func fit(size image.Point, bounds image.Rectangle) image.Rectangle {
	if size.X <= 0 || size.Y <= 0 {
		return image.Rectangle{}
	}
	w, h := bounds.Dx(), bounds.Dy()
	if size.X*h > size.Y*w {
		h = size.Y * w / size.X
	} else {
		w = size.X * h / size.Y
	}
	origin := bounds.Min.Add(image.Pt((bounds.Dx()-w)/2, (bounds.Dy()-h)/2))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}
