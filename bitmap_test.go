package ili9342c

import (
	"image"
	"testing"

	"github.com/nwhirschfeld/periph.io-ili9342c/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFrames() *bitmap.Bitmap {
	b := bitmap.Builder{
		Width:   2,
		Height:  2,
		BPP:     2,
		Palette: []uint16{uint16(Black), uint16(Red), uint16(Green), uint16(Blue)},
	}
	b.Frame([]uint8{1, 2, 3, 0})
	b.Frame([]uint8{3, 3, 3, 3})
	return b.Bitmap()
}

func TestBitmap(t *testing.T) {
	r := newRig(t, Config{})
	require.NoError(t, r.dev.Bitmap(twoFrames(), 5, 6))
	assert.Equal(t, []image.Rectangle{image.Rect(5, 6, 7, 8)}, r.windows())
	assert.Equal(t, uint16(Red), r.panel.Pixel(5, 6))
	assert.Equal(t, uint16(Green), r.panel.Pixel(6, 6))
	assert.Equal(t, uint16(Blue), r.panel.Pixel(5, 7))
	assert.Equal(t, uint16(Black), r.panel.Pixel(6, 7))

	r.panel.Reset()
	require.NoError(t, r.dev.Bitmap(twoFrames(), 5, 6, 1))
	for _, p := range []image.Point{{5, 6}, {6, 6}, {5, 7}, {6, 7}} {
		assert.Equal(t, uint16(Blue), r.panel.Pixel(p.X, p.Y))
	}
}

func TestBitmapFrameRange(t *testing.T) {
	r := newRig(t, Config{})
	for _, idx := range []int{2, -1} {
		err := r.dev.Bitmap(twoFrames(), 0, 0, idx)
		assert.ErrorIs(t, err, ErrRange)
	}
	assert.Empty(t, r.panel.Ops)
}

func TestBitmapSingleFrame(t *testing.T) {
	b := bitmap.Builder{Width: 1, Height: 1, BPP: 1, Palette: []uint16{uint16(Black), uint16(Cyan)}}
	b.Frame([]uint8{1})
	bm := b.Bitmap()
	require.Zero(t, bm.Frames)

	r := newRig(t, Config{})
	require.NoError(t, r.dev.Bitmap(bm, 3, 3, 7))
	assert.Equal(t, uint16(Cyan), r.panel.Pixel(3, 3))
}

func TestBitmapRightEdge(t *testing.T) {
	r := newRig(t, Config{})
	require.NoError(t, r.dev.Bitmap(twoFrames(), 239, 0))
	assert.Empty(t, r.panel.Ops)
	require.NoError(t, r.dev.Bitmap(twoFrames(), 238, 0))
	assert.Len(t, r.windows(), 1)
}

func TestBitmapResidentBuffer(t *testing.T) {
	r := newRig(t, Config{BufferSize: 8})
	require.NoError(t, r.dev.Bitmap(twoFrames(), 0, 0))

	r = newRig(t, Config{BufferSize: 7})
	assert.ErrorIs(t, r.dev.Bitmap(twoFrames(), 0, 0), ErrBufferTooSmall)
	assert.Empty(t, r.panel.Ops)
}
