package main

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
	"github.com/nwhirschfeld/periph.io-ili9342c/font"
)

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.Flags().IntVar(&textX, `x`, 0, `left edge`)
	textCmd.Flags().IntVar(&textY, `y`, 0, `top edge`)
	textCmd.Flags().StringVar(&textFg, `fg`, `white`, `foreground colour`)
	textCmd.Flags().StringVar(&textBg, `bg`, `black`, `background colour`)
}

var (
	textX, textY   int
	textFg, textBg string
)

var textCmd = &cobra.Command{
	Use:   "text <words...>",
	Short: "write text in the built-in 8x13 font",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fg, err := parseColor(textFg)
		if err != nil {
			return err
		}
		bg, err := parseColor(textBg)
		if err != nil {
			return err
		}
		f := font.FixedFromFace(basicfont.Face7x13)
		run(func(dev *ili9342c.Device) error {
			return dev.Text(f, strings.Join(args, " "), textX, textY, fg, bg)
		})
		return nil
	},
}
