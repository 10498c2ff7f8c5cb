package font

import (
	"image"

	"golang.org/x/image/font/basicfont"
)

// FixedFromFace renders the printable ASCII range of a basic font face into
// a FixedFont. The glyph cell is the face width rounded up to a multiple of
// 8 by the face height; mask pixels with any coverage are set.
func FixedFromFace(face *basicfont.Face) *FixedFont {
	const first, last = 0x20, 0x7e
	width := (face.Width + 7) &^ 7
	height := face.Ascent + face.Descent
	f := &FixedFont{
		Width:  width,
		Height: height,
		First:  first,
		Last:   last,
		Data:   make([]byte, (last-first+1)*height*width/8),
	}
	rowBytes := f.RowBytes()
	for c := rune(first); c <= last; c++ {
		glyph, ok := faceGlyph(face, c)
		if !ok {
			continue
		}
		base := int(c-first) * height * rowBytes
		for y := 0; y < height; y++ {
			for x := 0; x < face.Width; x++ {
				_, _, _, a := face.Mask.At(glyph.X+x, glyph.Y+y).RGBA()
				if a == 0 {
					continue
				}
				f.Data[base+y*rowBytes+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return f
}

// faceGlyph returns the top-left corner of the mask cell for r.
func faceGlyph(face *basicfont.Face, r rune) (image.Point, bool) {
	h := face.Ascent + face.Descent
	for _, rr := range face.Ranges {
		if r >= rr.Low && r < rr.High {
			return image.Point{X: face.Mask.Bounds().Min.X, Y: face.Mask.Bounds().Min.Y + (int(r-rr.Low)+rr.Offset)*h}, true
		}
	}
	return image.Point{}, false
}
