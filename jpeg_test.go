package ili9342c

import (
	"bytes"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// redJPEG encodes a solid red 64x64 picture, which uses 16x16 MCUs.
func redJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []byte{0xFF, 0, 0, 0xFF})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

func assertRed(t *testing.T, c uint16) {
	t.Helper()
	assert.GreaterOrEqual(t, c>>11, uint16(0x1C), "red %04x", c)
	assert.LessOrEqual(t, c>>5&0x3F, uint16(0x04), "green %04x", c)
}

func TestJPEGFast(t *testing.T) {
	r := newRig(t, Config{})
	require.NoError(t, r.dev.JPEG(bytes.NewReader(redJPEG(t)), 10, 20, JPEGFast))
	assert.Equal(t, []image.Rectangle{image.Rect(10, 20, 74, 84)}, r.windows())
	total := 0
	for _, n := range r.streamed() {
		total += n
	}
	assert.Equal(t, 64*64*2, total)
	assertRed(t, r.panel.Pixel(10, 20))
	assertRed(t, r.panel.Pixel(73, 83))
}

func TestJPEGFastResidentBuffer(t *testing.T) {
	r := newRig(t, Config{BufferSize: 64 * 64 * 2})
	require.NoError(t, r.dev.JPEG(bytes.NewReader(redJPEG(t)), 0, 0, JPEGFast))

	r = newRig(t, Config{BufferSize: 64*64*2 - 1})
	err := r.dev.JPEG(bytes.NewReader(redJPEG(t)), 0, 0, JPEGFast)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Empty(t, r.panel.Ops)
}

func TestJPEGSlow(t *testing.T) {
	r := newRig(t, Config{BufferSize: 16 * 16 * 2})
	require.NoError(t, r.dev.JPEG(bytes.NewReader(redJPEG(t)), 0, 0, JPEGSlow))
	ws := r.windows()
	require.Len(t, ws, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), ws[0])
	assert.Equal(t, image.Rect(16, 0, 32, 16), ws[1])
	assert.Equal(t, image.Rect(48, 48, 64, 64), ws[15])
	assertRed(t, r.panel.Pixel(63, 63))
}

func TestJPEGSlowDropsOffscreenTiles(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		n     int
		bound image.Rectangle
	}{
		{"right edge", 200, 0, 8, image.Rect(200, 0, 232, 64)},
		{"bottom edge", 0, 280, 8, image.Rect(0, 280, 64, 312)},
		{"corner", 200, 280, 4, image.Rect(200, 280, 232, 312)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, Config{})
			require.NoError(t, r.dev.JPEG(bytes.NewReader(redJPEG(t)), tt.x, tt.y, JPEGSlow))
			ws := r.windows()
			require.Len(t, ws, tt.n)
			for _, w := range ws {
				assert.True(t, w.In(tt.bound), "window %v outside %v", w, tt.bound)
			}
			assertRed(t, r.panel.Pixel(tt.bound.Max.X-1, tt.bound.Max.Y-1))
		})
	}
}

func TestJPEGFastRejectsOversize(t *testing.T) {
	// The whole picture does not fit, so fast mode sends nothing.
	for _, pt := range []image.Point{{200, 0}, {0, 280}} {
		r := newRig(t, Config{})
		require.NoError(t, r.dev.JPEG(bytes.NewReader(redJPEG(t)), pt.X, pt.Y, JPEGFast))
		assert.Empty(t, r.panel.Ops, pt.String())
	}
}

// gradientJPEG encodes a w×h colour gradient with 4:2:0 chroma.
func gradientJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			copy(img.Pix[i:], []byte{uint8(x), uint8(y), uint8(x + y), 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestJPEGSlowMemory(t *testing.T) {
	const w, h = 512, 512
	data := gradientJPEG(t, w, h)
	dev, err := New(stubBus{}, &gpiotest.Pin{N: "DC"}, Config{Width: 240, Height: 320, BufferSize: 512})
	require.NoError(t, err)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	require.NoError(t, dev.JPEG(bytes.NewReader(data), 0, 0, JPEGSlow))
	runtime.ReadMemStats(&after)

	// The decoded 4:2:0 planes take 1.5*w*h bytes; nothing may scale with
	// the pixel count beyond them.
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(3*w*h))
}

func TestJPEGGarbage(t *testing.T) {
	r := newRig(t, Config{})
	for _, mode := range []JPEGMode{JPEGFast, JPEGSlow} {
		err := r.dev.JPEG(bytes.NewReader([]byte("not a jpeg at all")), 0, 0, mode)
		assert.ErrorIs(t, err, ErrDecode, mode.String())
	}
	assert.Empty(t, r.panel.Ops)
}

func TestJPEGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.jpg")
	require.NoError(t, os.WriteFile(path, redJPEG(t), 0o644))

	r := newRig(t, Config{})
	require.NoError(t, r.dev.JPEGFile(path, 0, 0, JPEGFast))
	assert.Len(t, r.windows(), 1)

	err := r.dev.JPEGFile(filepath.Join(t.TempDir(), "missing.jpg"), 0, 0, JPEGFast)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestJPEGModeString(t *testing.T) {
	assert.Equal(t, "fast", JPEGFast.String())
	assert.Equal(t, "slow", JPEGSlow.String())
}
