package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFrames(t *testing.T) {
	b := Builder{Width: 3, Height: 2, BPP: 2, Palette: []uint16{0x0000, 0xF800, 0x07E0, 0x001F}}
	b.Frame([]uint8{0, 1, 2, 3, 2, 1})
	b.Frame([]uint8{3, 3, 3, 0, 0, 0})
	bm := b.Bitmap()
	require.NoError(t, bm.Validate())
	assert.Equal(t, 2, bm.Frames)
	assert.Equal(t, uint32(12), bm.FrameOffset(1))

	c := bm.Pixels(1)
	var got []uint8
	for i := 0; i < 6; i++ {
		got = append(got, c.ReadColor(bm.BPP+1))
	}
	assert.Equal(t, []uint8{3, 3, 3, 0, 0, 0}, got)
	assert.Equal(t, uint16(0x001F), bm.Color(3))
	assert.Equal(t, uint16(0), bm.Color(9))
}

func TestSingleFrameBuild(t *testing.T) {
	b := Builder{Width: 8, Height: 1, BPP: 1, Palette: []uint16{0, 0xFFFF}}
	b.Frame([]uint8{1, 0, 1, 0, 1, 0, 1, 0})
	bm := b.Bitmap()
	assert.Equal(t, 0, bm.Frames)
	assert.Equal(t, []byte{0xAA}, bm.Data)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		bm      Bitmap
		wantErr bool
	}{
		{"ok", Bitmap{Width: 4, Height: 2, BPP: 1, Data: []byte{0}}, false},
		{"two frames", Bitmap{Width: 4, Height: 2, BPP: 1, Data: []byte{0, 0}, Frames: 2}, false},
		{"short data", Bitmap{Width: 4, Height: 2, BPP: 2, Data: []byte{0}}, true},
		{"short frames", Bitmap{Width: 4, Height: 2, BPP: 1, Data: []byte{0}, Frames: 2}, true},
		{"zero depth", Bitmap{Width: 4, Height: 2, Data: []byte{0}}, true},
		{"empty", Bitmap{BPP: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bm.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
