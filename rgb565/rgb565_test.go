package rgb565

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint16
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 0xFF, 0xFF, 0xFF, 0xFFFF},
		{"red", 0xFF, 0, 0, 0xF800},
		{"green", 0, 0xFF, 0, 0x07E0},
		{"blue", 0, 0, 0xFF, 0x001F},
		{"low bits dropped", 0x07, 0x03, 0x07, 0x0000},
		{"mid grey", 0x80, 0x80, 0x80, 0x8410},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pack(tt.r, tt.g, tt.b))
		})
	}
}

func TestPut(t *testing.T) {
	buf := []byte{0, 0, 0, 0}
	Put(buf, 2, 0xF81F)
	assert.Equal(t, []byte{0, 0, 0xF8, 0x1F}, buf)
}
