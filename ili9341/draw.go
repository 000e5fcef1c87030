package ili9341

import (
	"image"
	"image/color"

	"github.com/flavioheleno/glcd"
	"github.com/flavioheleno/glcd/rgb565"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

var _ display.Drawer = (*Dev)(nil)
var _ glcd.ColorPixeler = (*Dev)(nil)

// Size implements glcd.Pixeler.
func (d *Dev) Size() (w, h int16) {
	if d.orientation.Swapped() {
		return Height, Width
	}
	return Width, Height
}

// drawable reports whether pixel data can be sent.
func (d *Dev) drawable() bool {
	return !d.halted && d.err == nil
}

// setWindow sets the column and page address window and sends cmd, either
// MemoryWrite or MemoryRead.
func (d *Dev) setWindow(cmd Command, start glcd.Point, w, h int16) error {
	x0, x1 := uint16(start.X), uint16(start.X+w-1)
	d.window = [4]byte{byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}
	if err := d.command(ColumnAddressSet, d.window[:]...); err != nil {
		return err
	}
	y0, y1 := uint16(start.Y), uint16(start.Y+h-1)
	d.window = [4]byte{byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}
	if err := d.command(PageAddressSet, d.window[:]...); err != nil {
		return err
	}
	return d.command(cmd)
}

// fill streams n pixels of color c.
func (d *Dev) fill(c rgb565.Color, n int) {
	hi, lo := c.Bytes()
	chunk := min(2*n, len(d.buf))
	for i := 0; i < chunk; i += 2 {
		d.buf[i], d.buf[i+1] = hi, lo
	}
	for n > 0 {
		m := min(2*n, chunk)
		if d.data(d.buf[:m]) != nil {
			return
		}
		n -= m / 2
	}
}

// SetClipRegion implements glcd.Pixeler. It opens the address window for
// the pixels that follow.
func (d *Dev) SetClipRegion(start glcd.Point, w, h int16) {
	if d.drawable() {
		d.setWindow(MemoryWrite, start, w, h)
	}
}

// SetPixelFast implements glcd.Pixeler.
func (d *Dev) SetPixelFast(p glcd.Point) {
	d.pixel(p, d.Color())
}

// ClearPixelFast implements glcd.Pixeler.
func (d *Dev) ClearPixelFast(p glcd.Point) {
	d.pixel(p, d.BackgroundColor())
}

func (d *Dev) pixel(p glcd.Point, c rgb565.Color) {
	if !d.drawable() {
		return
	}
	defer d.Batch()()
	if d.setWindow(MemoryWrite, p, 1, 1) == nil {
		d.fill(c, 1)
	}
}

// PixelFast implements glcd.Pixeler. A pixel is set when it differs from the
// background color.
func (d *Dev) PixelFast(p glcd.Point) bool {
	return d.ColorAtFast(p) != d.BackgroundColor()
}

// ColorAtFast implements glcd.ColorPixeler by reading the frame memory back.
// The controller returns 18-bit colors, which are truncated to RGB565.
func (d *Dev) ColorAtFast(p glcd.Point) rgb565.Color {
	if !d.drawable() {
		return d.BackgroundColor()
	}
	defer d.Batch()()
	if d.setWindow(MemoryRead, p, 1, 1) != nil {
		return d.BackgroundColor()
	}
	if err := d.dc.Out(gpio.High); err != nil {
		d.fail(err)
		return d.BackgroundColor()
	}
	// One dummy byte, then red, green and blue in the upper 6 bits.
	var w, r [4]byte
	if err := d.c.Tx(w[:], r[:]); err != nil {
		d.fail(err)
		return d.BackgroundColor()
	}
	return rgb565.Color(uint16(r[1]>>3)<<11 | uint16(r[2]>>2)<<5 | uint16(r[3]>>3))
}

// DrawHorizontalLineFast implements glcd.HorizontalLiner.
func (d *Dev) DrawHorizontalLineFast(start glcd.Point, length int16) {
	d.fillWindow(start, length, 1)
}

// DrawVerticalLineFast implements glcd.VerticalLiner.
func (d *Dev) DrawVerticalLineFast(start glcd.Point, length int16) {
	d.fillWindow(start, 1, length)
}

// fillWindow opens the window of a pre-clipped rectangle and fills it with
// the foreground color.
func (d *Dev) fillWindow(start glcd.Point, w, h int16) {
	if !d.drawable() {
		return
	}
	defer d.Batch()()
	if d.setWindow(MemoryWrite, start, w, h) == nil {
		d.fill(d.Color(), int(w)*int(h))
	}
}

// FillRectangleFast implements glcd.RectangleFiller. The window was opened by
// SetClipRegion.
func (d *Dev) FillRectangleFast(start glcd.Point, w, h int16) {
	if d.drawable() {
		d.fill(d.Color(), int(w)*int(h))
	}
}

// ClearFast implements glcd.Clearer.
func (d *Dev) ClearFast() {
	if !d.drawable() {
		return
	}
	w, h := d.Size()
	if d.setWindow(MemoryWrite, glcd.Point{}, w, h) == nil {
		d.fill(d.BackgroundColor(), int(w)*int(h))
	}
}

// DrawImageFast implements glcd.ImageDrawer. The visible part is streamed
// row by row into the window opened by SetClipRegion.
func (d *Dev) DrawImageFast(ic glcd.ImageClip) {
	if !d.drawable() {
		return
	}
	fh, fl := d.Color().Bytes()
	bh, bl := d.BackgroundColor().Bytes()
	n := 0
	for y := ic.Min.Y; y < ic.Max.Y; y++ {
		for x := ic.Min.X; x < ic.Max.X; x++ {
			if ic.Bit(int(x-ic.Start.X), int(y-ic.Start.Y)) {
				d.buf[n], d.buf[n+1] = fh, fl
			} else {
				d.buf[n], d.buf[n+1] = bh, bl
			}
			n += 2
			if n == len(d.buf) {
				if d.data(d.buf) != nil {
					return
				}
				n = 0
			}
		}
	}
	if n > 0 {
		d.data(d.buf[:n])
	}
}

// visible returns the on-screen part of the w x h rectangle at start.
func (d *Dev) visible(start glcd.Point, w, h int) (image.Rectangle, bool) {
	r := image.Rect(int(start.X), int(start.Y), int(start.X)+w, int(start.Y)+h)
	r = r.Intersect(d.Bounds())
	return r, !r.Empty()
}

// DrawRaw draws a w x h block of colors, row by row. Parts outside the
// display are skipped and a short pix draws nothing.
func (d *Dev) DrawRaw(start glcd.Point, w, h uint16, pix []rgb565.Color) {
	if len(pix) < int(w)*int(h) {
		return
	}
	d.stream(start, int(w), int(h), func(i int) (byte, byte) {
		return pix[i].Bytes()
	})
}

// DrawBitmap draws a w x h RGB565 bitmap stored little endian, two bytes per
// pixel, as produced by most image converters. Parts outside the display are
// skipped and short data draws nothing.
func (d *Dev) DrawBitmap(start glcd.Point, w, h uint16, data []byte) {
	if len(data) < 2*int(w)*int(h) {
		return
	}
	d.stream(start, int(w), int(h), func(i int) (byte, byte) {
		return data[2*i+1], data[2*i]
	})
}

// stream writes the visible part of a w x h block at start. px returns the
// wire bytes of source pixel i.
func (d *Dev) stream(start glcd.Point, w, h int, px func(i int) (hi, lo byte)) {
	r, ok := d.visible(start, w, h)
	if !ok || !d.drawable() {
		return
	}
	defer d.Batch()()
	if d.setWindow(MemoryWrite, glcd.FromImage(r.Min), int16(r.Dx()), int16(r.Dy())) != nil {
		return
	}
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y-int(start.Y))*w + r.Min.X - int(start.X)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+1 {
			d.buf[n], d.buf[n+1] = px(i)
			n += 2
			if n == len(d.buf) {
				if d.data(d.buf) != nil {
					return
				}
				n = 0
			}
		}
	}
	if n > 0 {
		d.data(d.buf[:n])
	}
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds implements display.Drawer. It follows the orientation.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.Size()
	return image.Rect(0, 0, int(w), int(h))
}

// Draw implements display.Drawer. The src image is positioned at src point
// sp within the destination rectangle.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	if d.err != nil {
		return d.err
	}
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))
	start := glcd.FromImage(r.Min)

	// Fast path: the source already has the wire format.
	if img, ok := src.(*rgb565.Image); ok && (image.Rectangle{Min: sp, Max: sp.Add(r.Size())}).In(img.Rect) {
		defer d.Batch()()
		if err := d.setWindow(MemoryWrite, start, int16(r.Dx()), int16(r.Dy())); err != nil {
			return err
		}
		for y := 0; y < r.Dy(); y++ {
			i := img.PixOffset(sp.X, sp.Y+y)
			if err := d.data(img.Pix[i : i+2*r.Dx()]); err != nil {
				return err
			}
		}
		return nil
	}

	d.stream(start, r.Dx(), r.Dy(), func(i int) (byte, byte) {
		x, y := i%r.Dx(), i/r.Dx()
		return rgb565.Model.Convert(src.At(sp.X+x, sp.Y+y)).(rgb565.Color).Bytes()
	})
	return d.err
}
