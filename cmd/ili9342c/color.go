package main

import (
	"fmt"
	"strconv"
	"strings"

	ili9342c "github.com/nwhirschfeld/periph.io-ili9342c"
)

var colorNames = map[string]ili9342c.Color565{
	"black":   ili9342c.Black,
	"blue":    ili9342c.Blue,
	"red":     ili9342c.Red,
	"green":   ili9342c.Green,
	"cyan":    ili9342c.Cyan,
	"magenta": ili9342c.Magenta,
	"yellow":  ili9342c.Yellow,
	"white":   ili9342c.White,
}

// parseColor accepts a colour name or #rrggbb.
func parseColor(s string) (ili9342c.Color565, error) {
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad colour %q", s)
	}
	return ili9342c.RGBTo565(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// parseInts parses every element of args as an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
