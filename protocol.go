package ili9342c

import "periph.io/x/conn/v3/gpio"

// transaction is one chip select bracket. The DC line is only driven when
// the transfer mode changes.
type transaction struct {
	d    *Device
	mode gpio.Level
	set  bool
	err  error
}

// begin asserts CS. Callers defer end.
func (d *Device) begin() *transaction {
	t := &transaction{d: d}
	t.err = d.cs.Out(gpio.Low)
	return t
}

// end releases CS and stores the first error of the bracket in *errp if it
// holds nil.
func (t *transaction) end(errp *error) {
	if err := t.d.cs.Out(gpio.High); t.err == nil {
		t.err = err
	}
	if *errp == nil {
		*errp = t.err
	}
}

func (t *transaction) write(dc gpio.Level, b []byte) error {
	if t.err != nil {
		return t.err
	}
	if !t.set || t.mode != dc {
		if t.err = t.d.dc.Out(dc); t.err != nil {
			return t.err
		}
		t.mode, t.set = dc, true
	}
	t.err = t.d.bus.Tx(b, nil)
	return t.err
}

func (t *transaction) command(cmd byte) error {
	return t.write(gpio.Low, []byte{cmd})
}

func (t *transaction) data(b []byte) error {
	return t.write(gpio.High, b)
}

// fill streams n pixels of c from a 128 pixel chunk. The window must have
// been opened by the caller.
func (t *transaction) fill(c Color565, n int) error {
	var chunk [fillChunkPixels * 2]byte
	hi, lo := byte(c>>8), byte(c)
	for i := 0; i < len(chunk); i += 2 {
		chunk[i], chunk[i+1] = hi, lo
	}
	for ; n >= fillChunkPixels; n -= fillChunkPixels {
		if err := t.data(chunk[:]); err != nil {
			return err
		}
	}
	if n > 0 {
		return t.data(chunk[:n*2])
	}
	return nil
}

// blit streams buf in 256 byte chunks.
func (t *transaction) blit(buf []byte) error {
	for len(buf) > blitChunkBytes {
		if err := t.data(buf[:blitChunkBytes]); err != nil {
			return err
		}
		buf = buf[blitChunkBytes:]
	}
	if len(buf) > 0 {
		return t.data(buf)
	}
	return nil
}

// Command sends cmd followed by its parameters, if any, in one chip select
// bracket.
func (d *Device) Command(cmd byte, data ...byte) (err error) {
	t := d.begin()
	defer t.end(&err)
	if err = t.command(cmd); err != nil {
		return err
	}
	if len(data) > 0 {
		return t.data(data)
	}
	return nil
}

// Data sends parameter or pixel bytes without a command.
func (d *Device) Data(data []byte) (err error) {
	if len(data) == 0 {
		return nil
	}
	t := d.begin()
	defer t.end(&err)
	return t.data(data)
}

// setWindow opens the x0,y0-x1,y1 rectangle for a memory write. It reports
// false without touching the bus when the rectangle is not inside the
// logical screen.
func (d *Device) setWindow(x0, y0, x1, y1 int) (bool, error) {
	if x0 < 0 || x0 > x1 || x1 >= d.width || y0 < 0 || y0 > y1 || y1 >= d.height {
		return false, nil
	}
	if err := d.Command(CASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return false, err
	}
	if err := d.Command(PASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return false, err
	}
	if err := d.Command(RAMWR); err != nil {
		return false, err
	}
	return true, nil
}

// SetWindow opens an address window and primes a memory write. Subsequent
// Data calls fill it row-major. An invalid window is ignored and reported
// as false.
func (d *Device) SetWindow(x0, y0, x1, y1 int) (bool, error) {
	return d.setWindow(x0, y0, x1, y1)
}

// stream opens a window and runs fn inside one data transaction. Nothing is
// sent when the window is invalid.
func (d *Device) stream(x0, y0, x1, y1 int, fn func(t *transaction) error) (err error) {
	ok, err := d.setWindow(x0, y0, x1, y1)
	if err != nil || !ok {
		return err
	}
	t := d.begin()
	defer t.end(&err)
	return fn(t)
}
