// Package panelsim models the command interface of an ILI9342C class
// controller in software.
//
// A Panel sits on the bus side of the driver: it implements conn.Conn,
// samples the DC and CS lines on every transfer and interprets the command
// stream into frame memory. Tests use it to observe exactly what the driver
// put on the wire; the command line tool uses it to render into a PNG when
// no hardware is attached.
package panelsim

import (
	"fmt"
	"image"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers/pixel"
)

const (
	cmdSWRESET = 0x01
	cmdSLPIN   = 0x10
	cmdSLPOUT  = 0x11
	cmdNORON   = 0x13
	cmdINVOFF  = 0x20
	cmdINVON   = 0x21
	cmdDISPOFF = 0x28
	cmdDISPON  = 0x29
	cmdCASET   = 0x2A
	cmdPASET   = 0x2B
	cmdRAMWR   = 0x2C
	cmdVSCRDEF = 0x33
	cmdMADCTL  = 0x36
	cmdVSCSAD  = 0x37
	cmdCOLMOD  = 0x3A

	madctlMY = 0x80
	madctlMX = 0x40
	madctlMV = 0x20
)

// paramLen is the parameter count of the commands the panel interprets.
var paramLen = map[byte]int{
	cmdCASET:   4,
	cmdPASET:   4,
	cmdVSCRDEF: 6,
	cmdMADCTL:  1,
	cmdVSCSAD:  2,
	cmdCOLMOD:  1,
}

// Line is a control line whose level the panel samples.
type Line interface {
	Read() gpio.Level
}

// Op is one bus transfer.
type Op struct {
	// Command is true when DC was low.
	Command bool
	// Selected is true when CS was asserted, or when there is no CS line.
	Selected bool
	Data     []byte
}

// Window is one memory write: the addressed rectangle and the number of
// pixel bytes streamed into it.
type Window struct {
	Rect  image.Rectangle
	Bytes int
}

// Panel is a simulated controller.
type Panel struct {
	mu sync.Mutex

	// DC and CS are sampled on every Tx. CS may be nil.
	DC Line
	CS Line

	width, height int
	mem           []uint16

	Ops     []Op
	Windows []Window
	// Dropped counts pixels addressed outside frame memory.
	Dropped int

	Resets    int
	Sleeping  bool
	Inverted  bool
	On        bool
	MADCTL    byte
	ColorMode byte
	// TFA, VSA and BFA are the vertical scroll area definition.
	TFA, VSA, BFA int
	ScrollStart   int

	cmd     byte
	params  []byte
	col     [2]int
	page    [2]int
	writing bool
	cx, cy  int
	pending []byte
}

// New returns a panel with width×height frame memory, sampling dc and cs.
func New(width, height int, dc, cs Line) *Panel {
	return &Panel{
		DC:       dc,
		CS:       cs,
		width:    width,
		height:   height,
		mem:      make([]uint16, width*height),
		Sleeping: true,
		col:      [2]int{0, width - 1},
		page:     [2]int{0, height - 1},
	}
}

func (p *Panel) String() string {
	return fmt.Sprintf("panelsim(%dx%d)", p.width, p.height)
}

// Duplex implements conn.Conn.
func (p *Panel) Duplex() conn.Duplex {
	return conn.Half
}

// Halt implements conn.Resource.
func (p *Panel) Halt() error {
	return nil
}

// Tx implements conn.Conn. Only the write side is modelled; r is zeroed.
func (p *Panel) Tx(w, r []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range r {
		r[i] = 0
	}
	op := Op{
		Command:  p.DC.Read() == gpio.Low,
		Selected: p.CS == nil || p.CS.Read() == gpio.Low,
		Data:     append([]byte(nil), w...),
	}
	p.Ops = append(p.Ops, op)
	if !op.Selected {
		return nil
	}
	if op.Command {
		for _, b := range w {
			p.command(b)
		}
		return nil
	}
	if p.writing {
		p.stream(w)
		return nil
	}
	p.params = append(p.params, w...)
	if n, ok := paramLen[p.cmd]; ok && len(p.params) >= n {
		p.apply(p.params[:n])
		p.params = p.params[:0]
	}
	return nil
}

func (p *Panel) command(c byte) {
	p.cmd = c
	p.params = p.params[:0]
	p.writing = false
	p.pending = p.pending[:0]
	switch c {
	case cmdSWRESET:
		p.Resets++
		p.Sleeping = true
		p.On = false
		p.Inverted = false
		p.MADCTL = 0
	case cmdSLPIN:
		p.Sleeping = true
	case cmdSLPOUT:
		p.Sleeping = false
	case cmdNORON:
		p.TFA, p.VSA, p.BFA, p.ScrollStart = 0, 0, 0, 0
	case cmdINVOFF:
		p.Inverted = false
	case cmdINVON:
		p.Inverted = true
	case cmdDISPOFF:
		p.On = false
	case cmdDISPON:
		p.On = true
	case cmdRAMWR:
		p.writing = true
		p.cx, p.cy = p.col[0], p.page[0]
		p.Windows = append(p.Windows, Window{Rect: image.Rect(p.col[0], p.page[0], p.col[1]+1, p.page[1]+1)})
	}
}

func (p *Panel) apply(b []byte) {
	be := func(i int) int { return int(b[i])<<8 | int(b[i+1]) }
	switch p.cmd {
	case cmdCASET:
		p.col = [2]int{be(0), be(2)}
	case cmdPASET:
		p.page = [2]int{be(0), be(2)}
	case cmdMADCTL:
		p.MADCTL = b[0]
	case cmdCOLMOD:
		p.ColorMode = b[0]
	case cmdVSCRDEF:
		p.TFA, p.VSA, p.BFA = be(0), be(2), be(4)
	case cmdVSCSAD:
		p.ScrollStart = be(0)
	}
}

func (p *Panel) stream(w []byte) {
	p.Windows[len(p.Windows)-1].Bytes += len(w)
	data := w
	if len(p.pending) > 0 {
		data = append(p.pending, w...)
		p.pending = p.pending[:0]
	}
	for ; len(data) >= 2; data = data[2:] {
		p.plot(uint16(data[0])<<8 | uint16(data[1]))
	}
	if len(data) == 1 {
		p.pending = append(p.pending, data[0])
	}
}

// plot stores v at the address cursor and advances it row-major within the
// window.
func (p *Panel) plot(v uint16) {
	x, y := p.cx, p.cy
	if p.MADCTL&madctlMV != 0 {
		x, y = y, x
	}
	if p.MADCTL&madctlMX != 0 {
		x = p.width - 1 - x
	}
	if p.MADCTL&madctlMY != 0 {
		y = p.height - 1 - y
	}
	if x >= 0 && x < p.width && y >= 0 && y < p.height {
		p.mem[y*p.width+x] = v
	} else {
		p.Dropped++
	}
	p.cx++
	if p.cx > p.col[1] {
		p.cx = p.col[0]
		p.cy++
		if p.cy > p.page[1] {
			p.cy = p.page[0]
		}
	}
}

// Bounds returns the frame memory rectangle.
func (p *Panel) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Pixel returns the RGB565 value stored at x, y of frame memory.
func (p *Panel) Pixel(x, y int) uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.mem[y*p.width+x]
}

// Image renders frame memory.
func (p *Panel) Image() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image.NewRGBA(p.Bounds())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			v := p.mem[y*p.width+x]
			// RGB565BE holds the wire bytes in memory order.
			img.SetRGBA(x, y, pixel.RGB565BE(v<<8|v>>8).RGBA())
		}
	}
	return img
}

// Commands returns the command bytes sent, in order.
func (p *Panel) Commands() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []byte
	for _, op := range p.Ops {
		if op.Command {
			out = append(out, op.Data...)
		}
	}
	return out
}

// Reset forgets the recorded transfers and windows, keeping frame memory
// and controller state.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Ops = nil
	p.Windows = nil
	p.Dropped = 0
}

var _ conn.Conn = &Panel{}
