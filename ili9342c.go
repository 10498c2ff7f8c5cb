package ili9342c

import (
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers"
)

// Clock provides the settle delays of the power-on sequence.
// clockwork.Clock satisfies it.
type Clock interface {
	Sleep(d time.Duration)
}

// Config is the configuration for the display.
type Config struct {
	// Width and Height are the physical dimensions; 240x320 and 320x240 are
	// supported.
	Width  int
	Height int
	// Rotation is applied by Init. Values 4 to 7 are the mirrored variants.
	Rotation drivers.Rotation
	// BufferSize allocates a resident scratch buffer of that many bytes,
	// used by every drawing call instead of a per-call allocation. Calls
	// that need more fail with ErrBufferTooSmall.
	BufferSize int

	// Reset, CS and Backlight are optional.
	Reset     gpio.PinOut
	CS        gpio.PinOut
	Backlight gpio.PinOut

	// Clock defaults to the real clock.
	Clock Clock
}

// Device is an open handle to an ILI9342C display.
type Device struct {
	bus   conn.Conn
	dc    gpio.PinOut
	rst   gpio.PinOut
	cs    gpio.PinOut
	bl    gpio.PinOut
	clock Clock

	displayWidth  int
	displayHeight int
	width         int
	height        int
	rotation      drivers.Rotation

	buffer []byte
	// pixelErr holds the first SetPixel failure until Display reports it.
	pixelErr error
}

// NewSPI connects to the display over p and returns a Device.
func NewSPI(p spi.Port, dc gpio.PinOut, cfg Config) (*Device, error) {
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9342c: connect: %w", err)
	}
	return New(c, dc, cfg)
}

// New returns a Device talking over bus. The bus must already be
// configured. Init is not called.
func New(bus conn.Conn, dc gpio.PinOut, cfg Config) (*Device, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("%w: dc pin is required", ErrConfiguration)
	}
	if !(cfg.Width == 240 && cfg.Height == 320) && !(cfg.Width == 320 && cfg.Height == 240) {
		return nil, fmt.Errorf("%w: unsupported display size %dx%d", ErrConfiguration, cfg.Width, cfg.Height)
	}
	if cfg.BufferSize < 0 {
		return nil, fmt.Errorf("%w: negative buffer size", ErrConfiguration)
	}
	d := &Device{
		bus:           bus,
		dc:            dc,
		rst:           optionalPin(cfg.Reset),
		cs:            optionalPin(cfg.CS),
		bl:            optionalPin(cfg.Backlight),
		clock:         cfg.Clock,
		displayWidth:  cfg.Width,
		displayHeight: cfg.Height,
	}
	if d.clock == nil {
		d.clock = clockwork.NewRealClock()
	}
	if cfg.BufferSize > 0 {
		d.buffer = make([]byte, cfg.BufferSize)
		log.Printf("ili9342c: using %d byte resident buffer", cfg.BufferSize)
	} else {
		log.Println("ili9342c: allocating scratch buffers per call")
	}
	d.setOrientation(cfg.Rotation)
	return d, nil
}

// nopPin stands in for pins that are not wired.
type nopPin struct {
	gpio.PinOut
}

func (nopPin) Out(gpio.Level) error { return nil }

func optionalPin(p gpio.PinOut) gpio.PinOut {
	if p == nil || p == gpio.INVALID {
		return nopPin{gpio.INVALID}
	}
	return p
}

func (d *Device) String() string {
	return fmt.Sprintf("ili9342c{%s, %dx%d}", d.bus, d.width, d.height)
}

func (d *Device) sleep(ms int) {
	d.clock.Sleep(time.Duration(ms) * time.Millisecond)
}

// HardReset pulses the reset line. It is a no-op apart from the delays when
// no reset pin is configured.
func (d *Device) HardReset() (err error) {
	t := d.begin()
	defer t.end(&err)
	if err = d.rst.Out(gpio.High); err != nil {
		return err
	}
	d.sleep(resetPulseMs)
	if err = d.rst.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep(resetPulseMs)
	if err = d.rst.Out(gpio.High); err != nil {
		return err
	}
	d.sleep(resetSettleMs)
	return nil
}

// SoftReset sends the software reset command.
func (d *Device) SoftReset() error {
	if err := d.Command(SWRESET); err != nil {
		return err
	}
	d.sleep(swresetDelayMs)
	return nil
}

// Sleep enters or leaves sleep mode.
func (d *Device) Sleep(enable bool) error {
	if enable {
		return d.Command(SLPIN)
	}
	return d.Command(SLPOUT)
}

// Invert enables or disables display inversion.
func (d *Device) Invert(enable bool) error {
	if enable {
		return d.Command(INVON)
	}
	return d.Command(INVOFF)
}

// SetBacklight switches the backlight pin, if any.
func (d *Device) SetBacklight(on bool) error {
	if on {
		return d.bl.Out(gpio.High)
	}
	return d.bl.Out(gpio.Low)
}

// Init runs the power-on sequence and clears the screen to black.
func (d *Device) Init() error {
	if err := d.HardReset(); err != nil {
		return err
	}
	if err := d.SoftReset(); err != nil {
		return err
	}
	if err := d.Command(SLPOUT); err != nil {
		return err
	}
	if err := d.Command(COLMOD, COLOR_MODE_65K|COLOR_MODE_16BIT); err != nil {
		return err
	}
	d.sleep(stepDelayMs)
	if err := d.SetRotation(d.rotation); err != nil {
		return err
	}
	if err := d.Command(INVON); err != nil {
		return err
	}
	d.sleep(stepDelayMs)
	if err := d.Command(NORON); err != nil {
		return err
	}
	d.sleep(stepDelayMs)
	if err := d.FillRect(0, 0, d.width, d.height, Black); err != nil {
		return err
	}
	if err := d.SetBacklight(true); err != nil {
		return err
	}
	if err := d.Command(DISPON); err != nil {
		return err
	}
	d.sleep(displayOnMs)
	return nil
}

// VScrollDefine sets the top fixed, scrolling and bottom fixed areas, in
// lines.
func (d *Device) VScrollDefine(tfa, vsa, bfa uint16) error {
	return d.Command(VSCRDEF,
		byte(tfa>>8), byte(tfa),
		byte(vsa>>8), byte(vsa),
		byte(bfa>>8), byte(bfa))
}

// VScrollSet sets the first line of the scrolling area.
func (d *Device) VScrollSet(offset uint16) error {
	return d.Command(VSCSAD, byte(offset>>8), byte(offset))
}

// Halt implements conn.Resource. It turns the display and the backlight
// off.
func (d *Device) Halt() error {
	if err := d.Command(DISPOFF); err != nil {
		return err
	}
	return d.SetBacklight(false)
}
