// Package monochrome implements 1bpp framebuffers for graphic displays.
//
// Vertical packs eight rows of one column in a byte, the page layout of
// controllers such as the SSD1306, PCD8544 or ST7565. Horizontal packs eight
// columns of one row in a byte, grouped by column band.
//
// Both embed a glcd.Canvas for drawing and implement draw.Image, so they work
// with golang.org/x/image/font.Drawer and image/draw as well. Update sends
// the buffer to the optional sink.
package monochrome

import (
	"fmt"
	"image/color"

	"periph.io/x/conn/v3"
)

// Bit is a 1bpp color.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA implements color.Color.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// BitModel converts colors to Bit. A color is On when its luminance is at
// least one half.
var BitModel = color.ModelFunc(toBit)

func toBit(c color.Color) color.Color {
	return convert(c)
}

func convert(c color.Color) Bit {
	if b, ok := c.(Bit); ok {
		return b
	}
	y := color.Gray16Model.Convert(c).(color.Gray16).Y
	return Bit(y >= 0x8000)
}

// Opts is the configuration of a framebuffer.
type Opts struct {
	// W and H are the dimensions in pixels.
	W int
	H int
	// Sink receives the whole buffer on Update. It may be nil.
	Sink conn.Conn
}

// DefaultOpts is used when nil options are passed.
var DefaultOpts = Opts{W: 128, H: 64}

func (o *Opts) validate() error {
	if o.W <= 0 || o.H <= 0 {
		return fmt.Errorf("monochrome: invalid size %dx%d", o.W, o.H)
	}
	if o.W > 0x7FFF || o.H > 0x7FFF {
		return fmt.Errorf("monochrome: size %dx%d too large", o.W, o.H)
	}
	return nil
}

// flush writes buf to sink.
func flush(sink conn.Conn, buf []byte) error {
	if sink == nil {
		return nil
	}
	if err := sink.Tx(buf, nil); err != nil {
		return fmt.Errorf("monochrome: flush: %w", err)
	}
	return nil
}
