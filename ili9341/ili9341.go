package ili9341

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flavioheleno/glcd"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Native panel size, in Landscape0.
const (
	Width  = 240
	Height = 320
)

const (
	resetDelay = 5 * time.Millisecond
	wakeDelay  = 120 * time.Millisecond
)

// State is the lifecycle state of the controller.
type State uint8

const (
	StateReset State = iota
	StateInitializing
	StateSleeping
	StateAwake
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "Reset"
	case StateInitializing:
		return "Initializing"
	case StateSleeping:
		return "Sleeping"
	case StateAwake:
		return "Awake"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

var errHalted = errors.New("ili9341: halted")

// Opts is the configuration for the ILI9341 display.
type Opts struct {
	// Optional pins
	RST       gpio.PinOut // Reset, active low
	CS        gpio.PinOut // Chip select, active low; nil when the SPI port drives it
	Backlight gpio.PinOut // Backlight enable, active high

	// Bus is held for the duration of each batch. Share it with the other
	// drivers on the same SPI bus. Defaults to a private mutex.
	Bus sync.Locker

	// Clock times the mandatory controller delays. Defaults to the real clock.
	Clock clockwork.Clock

	// Orientation applied by Init (default: Landscape0)
	Orientation glcd.Orientation

	// Hz is the SPI clock (default: 10MHz)
	Hz physic.Frequency
}

// Dev is the device handle for the ILI9341 display.
//
// There is no local framebuffer: every drawing call is written to the
// controller before it returns. Drawing methods have no error return; the
// first bus error is kept and reported by Err and by the next control method.
//
// A Dev must be used from one goroutine at a time.
type Dev struct {
	glcd.ColorCanvas

	// Communication
	c     conn.Conn
	dc    gpio.PinOut
	rst   gpio.PinOut
	cs    gpio.PinOut
	bl    gpio.PinOut
	bus   sync.Locker
	clock clockwork.Clock
	maxTx int

	// State
	orientation glcd.Orientation
	state       State
	on          bool
	depth       int
	err         error
	halted      bool

	// Scratch buffers, so that drawing does not allocate.
	cmd    [1]byte
	window [4]byte
	buf    []byte
}

// NewSPI creates a new ILI9341 device connected via SPI and initializes it.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers, MSB
// first. The dc (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ili9341: dc pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	hz := opts.Hz
	if hz == 0 {
		hz = 10 * physic.MegaHertz
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9341: %w", err)
	}
	d, err := newDev(c, dc, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	d := &Dev{
		c:           c,
		dc:          dc,
		rst:         opts.RST,
		cs:          opts.CS,
		bl:          opts.Backlight,
		bus:         opts.Bus,
		clock:       opts.Clock,
		maxTx:       4096,
		orientation: opts.Orientation,
	}
	if d.bus == nil {
		d.bus = &sync.Mutex{}
	}
	if d.clock == nil {
		d.clock = clockwork.NewRealClock()
	}
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		d.maxTx = l.MaxTxSize()
	}
	// Keep pixel chunks whole.
	d.maxTx &^= 1
	d.buf = make([]byte, d.maxTx)
	d.ColorCanvas.Attach(d)

	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ili9341: failed to set RST high: %w", err)
		}
	}
	if d.cs != nil {
		if err := d.cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ili9341: failed to set CS high: %w", err)
		}
	}
	if d.bl != nil {
		if err := d.bl.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("ili9341: failed to set backlight low: %w", err)
		}
	}
	return d, nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.Size()
	return fmt.Sprintf("ili9341.Dev{%dx%d %s}", w, h, d.orientation)
}

// State returns the lifecycle state of the controller.
func (d *Dev) State() State {
	return d.state
}

// On reports whether the display output is enabled.
func (d *Dev) On() bool {
	return d.on
}

// Err returns the first error encountered by a drawing method, if any. Init
// clears it.
func (d *Dev) Err() error {
	return d.err
}

// fail records err as the sticky error and returns it.
func (d *Dev) fail(err error) error {
	if err != nil && d.err == nil {
		d.err = err
	}
	return err
}

// Init resets the controller, writes the register table, wakes it up and
// turns the display on. The reset is a hard reset when a RST pin is
// configured.
func (d *Dev) Init() error {
	if d.halted {
		return errHalted
	}
	d.err = nil
	if err := d.Reset(d.rst != nil); err != nil {
		return err
	}
	d.state = StateInitializing

	defer d.Batch()()
	for _, s := range initSequence {
		if err := d.command(s.cmd, s.data...); err != nil {
			return err
		}
	}
	d.state = StateSleeping
	if err := d.command(LeaveSleep); err != nil {
		return err
	}
	d.clock.Sleep(wakeDelay)
	d.state = StateAwake
	if err := d.command(InversionOff); err != nil {
		return err
	}
	if err := d.command(DisplayOn); err != nil {
		return err
	}
	d.on = true
	return d.SetOrientation(d.orientation)
}

// Reset resets the controller. A hard reset pulses the RST pin and requires
// one; a soft reset sends SoftwareReset.
func (d *Dev) Reset(hard bool) error {
	if d.halted {
		return errHalted
	}
	if hard {
		if d.rst == nil {
			return errors.New("ili9341: hard reset requires a RST pin")
		}
		for _, l := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
			if err := d.rst.Out(l); err != nil {
				return fmt.Errorf("ili9341: failed to drive RST: %w", err)
			}
			d.clock.Sleep(resetDelay)
		}
	} else {
		release := d.Batch()
		err := d.command(SoftwareReset)
		release()
		if err != nil {
			return err
		}
		d.clock.Sleep(resetDelay)
	}
	d.state = StateReset
	d.on = false
	return nil
}

// control sends one command in its own batch.
func (d *Dev) control(cmd Command, data ...byte) error {
	if d.halted {
		return errHalted
	}
	if d.err != nil {
		return d.err
	}
	defer d.Batch()()
	return d.command(cmd, data...)
}

// TurnOn enables the display output.
func (d *Dev) TurnOn() error {
	if err := d.control(DisplayOn); err != nil {
		return err
	}
	d.on = true
	return nil
}

// TurnOff disables the display output. The frame memory is kept.
func (d *Dev) TurnOff() error {
	if err := d.control(DisplayOff); err != nil {
		return err
	}
	d.on = false
	return nil
}

// EnableSleep puts the controller to sleep or wakes it up.
func (d *Dev) EnableSleep(enable bool) error {
	if enable {
		if err := d.control(EnterSleep); err != nil {
			return err
		}
		d.clock.Sleep(resetDelay)
		d.state = StateSleeping
		return nil
	}
	if err := d.control(LeaveSleep); err != nil {
		return err
	}
	d.clock.Sleep(wakeDelay)
	d.state = StateAwake
	return nil
}

// SetIdle switches to the reduced color idle mode.
func (d *Dev) SetIdle(enable bool) error {
	if enable {
		return d.control(IdleModeOn)
	}
	return d.control(IdleModeOff)
}

// SetInvert inverts the display colors.
func (d *Dev) SetInvert(invert bool) error {
	if invert {
		return d.control(InversionOn)
	}
	return d.control(InversionOff)
}

// SetBrightness writes the brightness register. Most modules wire the
// backlight to a pin instead, see EnableBacklight.
func (d *Dev) SetBrightness(level byte) error {
	return d.control(WriteBrightness, level)
}

// EnableBacklight drives the backlight pin.
func (d *Dev) EnableBacklight(enable bool) error {
	if d.halted {
		return errHalted
	}
	if d.bl == nil {
		return errors.New("ili9341: no backlight pin")
	}
	l := gpio.Low
	if enable {
		l = gpio.High
	}
	if err := d.bl.Out(l); err != nil {
		return fmt.Errorf("ili9341: failed to drive backlight: %w", err)
	}
	return nil
}

// ICModel reads the IC model from the ReadID4 register, 0x9341 for a genuine
// controller.
func (d *Dev) ICModel() (uint16, error) {
	var b [4]byte
	if err := d.read(ReadID4, b[:]); err != nil {
		return 0, err
	}
	return uint16(b[2])<<8 | uint16(b[3]), nil
}

// Orientation returns the current orientation.
func (d *Dev) Orientation() glcd.Orientation {
	return d.orientation
}

// SetOrientation rotates the display. Width and Height swap for the
// portrait orientations.
func (d *Dev) SetOrientation(o glcd.Orientation) error {
	madctl := byte(madctlBGR)
	switch o {
	case glcd.Landscape0:
	case glcd.Portrait90:
		madctl |= madctlMV | madctlMX
	case glcd.Landscape180:
		madctl |= madctlMX | madctlMY
	case glcd.Portrait270:
		madctl |= madctlMV | madctlMY
	default:
		return fmt.Errorf("ili9341: invalid orientation %d", o)
	}
	if err := d.control(MemoryAccessCtrl, madctl); err != nil {
		return err
	}
	d.orientation = o
	return nil
}

// SetScrollArea defines the vertical scroll area: topFixed rows at the top
// and bottomFixed rows at the bottom do not scroll.
func (d *Dev) SetScrollArea(topFixed, bottomFixed, firstRow uint16) error {
	return d.control(VerticalScrollDefinition,
		byte(topFixed>>8), byte(topFixed),
		byte(firstRow>>8), byte(firstRow),
		byte(bottomFixed>>8), byte(bottomFixed))
}

// ScrollTo sets the frame memory row shown first in the scroll area.
func (d *Dev) ScrollTo(row uint16) error {
	return d.control(VerticalScrollStartAddr, byte(row>>8), byte(row))
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt, the device will not accept further commands.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.err = nil
	release := d.Batch()
	err := d.command(DisplayOff)
	if err == nil {
		err = d.command(EnterSleep)
	}
	release()
	d.halted = true
	d.on = false
	d.state = StateSleeping
	return err
}

// command sends cmd with DC low, then its parameters with DC high. The caller
// holds the batch.
func (d *Dev) command(cmd Command, data ...byte) error {
	if d.halted {
		return errHalted
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return d.fail(fmt.Errorf("ili9341: failed to drive DC: %w", err))
	}
	d.cmd[0] = byte(cmd)
	if err := d.c.Tx(d.cmd[:], nil); err != nil {
		return d.fail(fmt.Errorf("ili9341: command 0x%02X: %w", byte(cmd), err))
	}
	if len(data) == 0 {
		return nil
	}
	return d.data(data)
}

// data sends parameters or pixels with DC high, split at the bus limit.
func (d *Dev) data(b []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return d.fail(fmt.Errorf("ili9341: failed to drive DC: %w", err))
	}
	for len(b) > 0 {
		n := min(len(b), d.maxTx)
		if err := d.c.Tx(b[:n], nil); err != nil {
			return d.fail(fmt.Errorf("ili9341: write: %w", err))
		}
		b = b[n:]
	}
	return nil
}

// read sends cmd and reads len(b) bytes with DC high.
func (d *Dev) read(cmd Command, b []byte) error {
	if d.halted {
		return errHalted
	}
	if d.err != nil {
		return d.err
	}
	defer d.Batch()()
	if err := d.command(cmd); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return d.fail(fmt.Errorf("ili9341: failed to drive DC: %w", err))
	}
	if err := d.c.Tx(make([]byte, len(b)), b); err != nil {
		return d.fail(fmt.Errorf("ili9341: read 0x%02X: %w", byte(cmd), err))
	}
	return nil
}
