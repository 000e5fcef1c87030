package monochrome

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/glcd"
	"periph.io/x/conn/v3"
)

// Vertical is a column-major 1bpp framebuffer. Byte x+(y/8)*W holds rows
// y&^7 to (y&^7)+7 of column x, least significant bit on top.
type Vertical struct {
	glcd.Canvas
	w, h int
	buf  []byte
	sink conn.Conn
}

var _ draw.Image = (*Vertical)(nil)

// NewVertical returns a cleared column-major framebuffer.
func NewVertical(opts *Opts) (*Vertical, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	v := &Vertical{
		w:    opts.W,
		h:    opts.H,
		buf:  make([]byte, opts.W*((opts.H+7)/8)),
		sink: opts.Sink,
	}
	v.Attach(v)
	return v, nil
}

func (v *Vertical) String() string {
	return fmt.Sprintf("monochrome.Vertical{%dx%d}", v.w, v.h)
}

// Bytes returns the framebuffer. It is not a copy.
func (v *Vertical) Bytes() []byte {
	return v.buf
}

// Size implements glcd.Pixeler.
func (v *Vertical) Size() (w, h int16) {
	return int16(v.w), int16(v.h)
}

// SetPixelFast implements glcd.Pixeler.
func (v *Vertical) SetPixelFast(p glcd.Point) {
	v.buf[int(p.X)+int(p.Y>>3)*v.w] |= 1 << (p.Y & 7)
}

// ClearPixelFast implements glcd.Pixeler.
func (v *Vertical) ClearPixelFast(p glcd.Point) {
	v.buf[int(p.X)+int(p.Y>>3)*v.w] &^= 1 << (p.Y & 7)
}

// PixelFast implements glcd.Pixeler.
func (v *Vertical) PixelFast(p glcd.Point) bool {
	return v.buf[int(p.X)+int(p.Y>>3)*v.w]&(1<<(p.Y&7)) != 0
}

// SetClipRegion implements glcd.Pixeler. The whole buffer is always
// addressable, so it does nothing.
func (v *Vertical) SetClipRegion(glcd.Point, int16, int16) {}

// DrawHorizontalLineFast sets one bit in each byte of the run.
func (v *Vertical) DrawHorizontalLineFast(start glcd.Point, length int16) {
	mask := byte(1) << (start.Y & 7)
	row := v.buf[int(start.Y>>3)*v.w:]
	for x := int(start.X); x < int(start.X)+int(length); x++ {
		row[x] |= mask
	}
}

// DrawVerticalLineFast masks the partial first and last pages and fills the
// pages in between. Bits outside the line are preserved.
func (v *Vertical) DrawVerticalLineFast(start glcd.Point, length int16) {
	x, y0, y1 := int(start.X), int(start.Y), int(start.Y)+int(length)
	first, last := y0>>3, (y1-1)>>3
	m0 := byte(0xFF) << (y0 & 7)
	m1 := byte(0xFF) >> (7 - (y1-1)&7)
	if first == last {
		v.buf[first*v.w+x] |= m0 & m1
		return
	}
	v.buf[first*v.w+x] |= m0
	for p := first + 1; p < last; p++ {
		v.buf[p*v.w+x] = 0xFF
	}
	v.buf[last*v.w+x] |= m1
}

// FillRectangleFast fills each covered page of a column with one masked
// write.
func (v *Vertical) FillRectangleFast(start glcd.Point, width, height int16) {
	for x := start.X; x < start.X+width; x++ {
		v.DrawVerticalLineFast(glcd.Point{X: x, Y: start.Y}, height)
	}
}

// DrawImageFast copies the visible part of a packed image. Image and buffer
// share the same packing, so when the image starts on a page boundary whole
// bytes are copied. Otherwise each page is assembled from the two image bytes
// it straddles. Only the bits of the visible rows are replaced.
func (v *Vertical) DrawImageFast(ic glcd.ImageClip) {
	sx, sy := int(ic.Start.X), int(ic.Start.Y)
	bands := (ic.Height + 7) / 8
	first, last := int(ic.Min.Y)>>3, (int(ic.Max.Y)-1)>>3
	aligned := sy&7 == 0

	for x := int(ic.Min.X); x < int(ic.Max.X); x++ {
		c := x - sx
		for p := first; p <= last; p++ {
			r0, r1 := max(p*8, int(ic.Min.Y)), min(p*8+8, int(ic.Max.Y))
			m := byte(0xFF) << (r0 & 7) & (byte(0xFF) >> (7 - (r1-1)&7))

			off := p*8 - sy
			var val byte
			switch {
			case aligned:
				val = ic.Data[(off>>3)*ic.Width+c]
			case off < 0:
				val = ic.Data[c] << -off
			default:
				band, shift := off>>3, off&7
				val = ic.Data[band*ic.Width+c] >> shift
				if band+1 < bands {
					val |= ic.Data[(band+1)*ic.Width+c] << (8 - shift)
				}
			}

			i := p*v.w + x
			if m == 0xFF {
				v.buf[i] = val
			} else {
				v.buf[i] = v.buf[i]&^m | val&m
			}
		}
	}
}

// ClearFast implements glcd.Clearer.
func (v *Vertical) ClearFast() {
	clear(v.buf)
}

// Flush implements glcd.Flusher.
func (v *Vertical) Flush() error {
	return flush(v.sink, v.buf)
}

// ColorModel implements image.Image.
func (v *Vertical) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (v *Vertical) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.w, v.h)
}

// At implements image.Image.
func (v *Vertical) At(x, y int) color.Color {
	return Bit(v.Pixel(glcd.Point{X: int16(x), Y: int16(y)}))
}

// Set implements draw.Image.
func (v *Vertical) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(v.Bounds()) {
		return
	}
	p := glcd.Point{X: int16(x), Y: int16(y)}
	if convert(c) {
		v.SetPixelFast(p)
	} else {
		v.ClearPixelFast(p)
	}
}
