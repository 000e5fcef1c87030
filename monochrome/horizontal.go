package monochrome

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/glcd"
	"periph.io/x/conn/v3"
)

// Horizontal is a row-major 1bpp framebuffer. Byte (x/8)*H+y holds columns
// x&^7 to (x&^7)+7 of row y, least significant bit on the left.
type Horizontal struct {
	glcd.Canvas
	w, h int
	buf  []byte
	sink conn.Conn
}

var _ draw.Image = (*Horizontal)(nil)

// NewHorizontal returns a cleared row-major framebuffer.
func NewHorizontal(opts *Opts) (*Horizontal, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	d := &Horizontal{
		w:    opts.W,
		h:    opts.H,
		buf:  make([]byte, ((opts.W+7)/8)*opts.H),
		sink: opts.Sink,
	}
	d.Attach(d)
	return d, nil
}

func (d *Horizontal) String() string {
	return fmt.Sprintf("monochrome.Horizontal{%dx%d}", d.w, d.h)
}

// Bytes returns the framebuffer. It is not a copy.
func (d *Horizontal) Bytes() []byte {
	return d.buf
}

func (d *Horizontal) Size() (w, h int16) {
	return int16(d.w), int16(d.h)
}

func (d *Horizontal) index(p glcd.Point) int {
	return int(p.X>>3)*d.h + int(p.Y)
}

func (d *Horizontal) SetPixelFast(p glcd.Point) {
	d.buf[d.index(p)] |= 1 << (p.X & 7)
}

func (d *Horizontal) ClearPixelFast(p glcd.Point) {
	d.buf[d.index(p)] &^= 1 << (p.X & 7)
}

func (d *Horizontal) PixelFast(p glcd.Point) bool {
	return d.buf[d.index(p)]&(1<<(p.X&7)) != 0
}

func (d *Horizontal) SetClipRegion(glcd.Point, int16, int16) {}

// DrawHorizontalLineFast writes each covered byte of the row once.
func (d *Horizontal) DrawHorizontalLineFast(start glcd.Point, length int16) {
	x, end := int(start.X), int(start.X)+int(length)
	for x < end {
		band := x >> 3
		hi := min(8, end-band*8)
		d.buf[band*d.h+int(start.Y)] |= byte(0xFF)<<(x&7) & (byte(0xFF) >> (8 - hi))
		x = band*8 + hi
	}
}

// DrawVerticalLineFast walks consecutive bytes of one column band.
func (d *Horizontal) DrawVerticalLineFast(start glcd.Point, length int16) {
	mask := byte(1) << (start.X & 7)
	i := d.index(start)
	for n := 0; n < int(length); n++ {
		d.buf[i+n] |= mask
	}
}

func (d *Horizontal) ClearFast() {
	clear(d.buf)
}

func (d *Horizontal) Flush() error {
	return flush(d.sink, d.buf)
}

func (d *Horizontal) ColorModel() color.Model {
	return BitModel
}

func (d *Horizontal) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

func (d *Horizontal) At(x, y int) color.Color {
	return Bit(d.Pixel(glcd.Point{X: int16(x), Y: int16(y)}))
}

func (d *Horizontal) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(d.Bounds()) {
		return
	}
	p := glcd.Point{X: int16(x), Y: int16(y)}
	if convert(c) {
		d.SetPixelFast(p)
	} else {
		d.ClearPixelFast(p)
	}
}
