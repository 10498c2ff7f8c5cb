// Package rgb565 packs 8 bit RGB channels into the panel's 16 bit pixel
// format.
package rgb565

// Pack keeps the top 5, 6 and 5 bits of r, g and b.
func Pack(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// Put writes v big-endian at buf[i:i+2].
func Put(buf []byte, i int, v uint16) {
	buf[i] = byte(v >> 8)
	buf[i+1] = byte(v)
}
