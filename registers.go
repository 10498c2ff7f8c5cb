package ili9342c

// Commands
const (
	NOP     = 0x00
	SWRESET = 0x01
	SLPIN   = 0x10
	SLPOUT  = 0x11
	PTLON   = 0x12
	NORON   = 0x13
	INVOFF  = 0x20
	INVON   = 0x21
	DISPOFF = 0x28
	DISPON  = 0x29
	CASET   = 0x2A
	PASET   = 0x2B
	RAMWR   = 0x2C
	RAMRD   = 0x2E
	VSCRDEF = 0x33
	MADCTL  = 0x36
	VSCSAD  = 0x37
	COLMOD  = 0x3A
)

// MADCTL bits
const (
	MADCTL_MY  = 0x80
	MADCTL_MX  = 0x40
	MADCTL_MV  = 0x20
	MADCTL_ML  = 0x10
	MADCTL_RGB = 0x08
	MADCTL_BGR = 0x00
	MADCTL_MH  = 0x04
)

// COLMOD values
const (
	COLOR_MODE_65K   = 0x50
	COLOR_MODE_262K  = 0x60
	COLOR_MODE_16BIT = 0x05
	COLOR_MODE_18BIT = 0x06
)

// Chunk sizes of the pixel stream, in pixels for fills and bytes for blits.
const (
	fillChunkPixels = 128
	blitChunkBytes  = 256
)

// Power-on timing.
const (
	resetPulseMs   = 50
	resetSettleMs  = 150
	swresetDelayMs = 150
	stepDelayMs    = 10
	displayOnMs    = 500
)
