package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
)

func init() {
	rootCmd.AddCommand(jpegCmd)
	jpegCmd.Flags().IntVar(&jpegX, `x`, 0, `left edge`)
	jpegCmd.Flags().IntVar(&jpegY, `y`, 0, `top edge`)
	jpegCmd.Flags().StringVarP(&jpegMode, `mode`, `m`, `fast`, `fast (one window) or slow (per tile)`)
}

var (
	jpegX, jpegY int
	jpegMode     string
)

var jpegCmd = &cobra.Command{
	Use:   "jpeg <file.jpg>",
	Short: "decode a baseline JPEG onto the screen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode ili9342c.JPEGMode
		switch jpegMode {
		case "fast":
			mode = ili9342c.JPEGFast
		case "slow":
			mode = ili9342c.JPEGSlow
		default:
			return fmt.Errorf("unknown mode %q", jpegMode)
		}
		run(func(dev *ili9342c.Device) error {
			return dev.JPEGFile(args[0], jpegX, jpegY, mode)
		})
		return nil
	},
}
