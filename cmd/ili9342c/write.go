package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"tinygo.org/x/tinyfont/proggy"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
	"github.com/nwhirschfeld/periph.io-ili9342c/font"
)

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().IntVar(&writeX, `x`, 0, `left edge`)
	writeCmd.Flags().IntVar(&writeY, `y`, 0, `top edge`)
	writeCmd.Flags().StringVar(&writeFg, `fg`, `white`, `foreground colour`)
	writeCmd.Flags().StringVar(&writeBg, `bg`, `black`, `background colour`)
}

var (
	writeX, writeY   int
	writeFg, writeBg string
)

// printable is the character map of the proportional font.
var printable = func() string {
	var b strings.Builder
	for c := byte(' '); c <= '~'; c++ {
		b.WriteByte(c)
	}
	return b.String()
}()

var writeCmd = &cobra.Command{
	Use:   "write <words...>",
	Short: "write text in a proportional font and report its width",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fg, err := parseColor(writeFg)
		if err != nil {
			return err
		}
		bg, err := parseColor(writeBg)
		if err != nil {
			return err
		}
		f := font.VariableFromTinyfont(&proggy.TinySZ8pt7b, printable)
		s := strings.Join(args, " ")
		run(func(dev *ili9342c.Device) error {
			n, err := dev.Write(f, s, writeX, writeY, fg, bg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "drew %d of %d pixels\n", n, dev.WriteLen(f, s))
			return nil
		})
		return nil
	},
}
