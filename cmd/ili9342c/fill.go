package main

import (
	"errors"

	"github.com/spf13/cobra"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
)

func init() { rootCmd.AddCommand(fillCmd) }

var fillCmd = &cobra.Command{
	Use:   "fill <colour> [x y w h]",
	Short: "fill the screen or a rectangle",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 5 {
			return errors.New("want a colour and optionally x y w h")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		rect, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		run(func(dev *ili9342c.Device) error {
			if len(rect) == 0 {
				return dev.Fill(c)
			}
			return dev.FillRect(rect[0], rect[1], rect[2], rect[3], c)
		})
		return nil
	},
}
