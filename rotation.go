package ili9342c

import (
	"image"

	"tinygo.org/x/drivers"
)

// orientation is the MADCTL value of a rotation and whether it exchanges
// rows and columns.
type orientation struct {
	madctl byte
	swap   bool
}

var orientations = [8]orientation{
	drivers.Rotation0:         {MADCTL_RGB, false},
	drivers.Rotation90:        {MADCTL_RGB | MADCTL_MX | MADCTL_MV, true},
	drivers.Rotation180:       {MADCTL_RGB | MADCTL_MX | MADCTL_MY, false},
	drivers.Rotation270:       {MADCTL_RGB | MADCTL_MV | MADCTL_MY, true},
	drivers.Rotation0Mirror:   {MADCTL_RGB | MADCTL_MX, false},
	drivers.Rotation90Mirror:  {MADCTL_RGB | MADCTL_MV, true},
	drivers.Rotation180Mirror: {MADCTL_RGB | MADCTL_MY, false},
	drivers.Rotation270Mirror: {MADCTL_RGB | MADCTL_MX | MADCTL_MY | MADCTL_MV, true},
}

// setOrientation updates the logical size for r without bus traffic.
func (d *Device) setOrientation(r drivers.Rotation) orientation {
	d.rotation = r % 8
	o := orientations[d.rotation]
	if o.swap {
		d.width, d.height = d.displayHeight, d.displayWidth
	} else {
		d.width, d.height = d.displayWidth, d.displayHeight
	}
	return o
}

// SetRotation changes the rotation of the device (clock-wise). Rotations 4
// to 7 are mirrored; values above 7 wrap.
func (d *Device) SetRotation(r drivers.Rotation) error {
	o := d.setOrientation(r)
	return d.Command(MADCTL, o.madctl)
}

// Rotation returns the current rotation.
func (d *Device) Rotation() drivers.Rotation {
	return d.rotation
}

// Width returns the logical width for the current rotation.
func (d *Device) Width() int {
	return d.width
}

// Height returns the logical height for the current rotation.
func (d *Device) Height() int {
	return d.height
}

// Size implements drivers.Displayer.
func (d *Device) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

// Bounds implements display.Drawer.
func (d *Device) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}
