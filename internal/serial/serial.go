// Package serial emulates the serial port as seen by a program polling
// it. Transfers complete at once rather than bit by bit.
package serial

import (
	"io"

	"github.com/thelolagemann/go-dmg/internal/types"
)

// Bus is the memory the controller reads SB and SC from.
type Bus interface {
	Read(address uint16) uint8
	SetMem(address uint16, value uint8)
}

// Device is a device that can be attached to the Controller.
type Device interface {
	// Exchange receives the byte sent by the Game Boy and
	// returns the byte sent back.
	Exchange(out uint8) uint8
}

// nullDevice acts as if nothing is plugged in: the line is
// pulled high, so every bit received is 1.
type nullDevice struct{}

func (nullDevice) Exchange(uint8) uint8 { return 0xFF }

// Writer is a Device writing every byte it receives to an io.Writer,
// as test ROMs report their results over the serial port.
type Writer struct {
	io.Writer
}

// Exchange writes out and answers as if nothing is plugged in.
func (w Writer) Exchange(out uint8) uint8 {
	_, _ = w.Write([]byte{out})
	return 0xFF
}

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from the attached device.
type Controller struct {
	AttachedDevice Device
}

// NewController creates a new Controller. By default, the Controller is
// attached to a nullDevice, which acts as if there is no device attached.
func NewController() *Controller {
	return &Controller{AttachedDevice: nullDevice{}}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Poll completes a transfer requested with the internal clock. The byte
// in SB is exchanged with the device, the transfer request bit of SC
// is cleared and the serial interrupt is requested. It reports whether
// a transfer took place.
func (c *Controller) Poll(b Bus) bool {
	sc := b.Read(types.SC)
	if sc&(types.Bit7|types.Bit0) != types.Bit7|types.Bit0 {
		return false
	}

	b.SetMem(types.SB, c.AttachedDevice.Exchange(b.Read(types.SB)))
	b.SetMem(types.SC, sc&^types.Bit7)
	b.SetMem(types.IF, b.Read(types.IF)|types.Bit3)
	return true
}
