// Package rgb565 provides the 16-bit 5-6-5 color format used by color TFT controllers.
//
// Pixels are stored big-endian, two bytes per pixel, which is the order the
// controllers expect on the bus.
package rgb565

import (
	"fmt"
	"image"
	"image/color"
)

// Color is a 16-bit packed RGB color: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Named colors, following the HTML color names.
const (
	Black   Color = 0x0000
	Navy    Color = 0x0010
	Blue    Color = 0x001F
	Green   Color = 0x0400
	Teal    Color = 0x0410
	Lime    Color = 0x07E0
	Cyan    Color = 0x07FF
	Maroon  Color = 0x8000
	Purple  Color = 0x8010
	Olive   Color = 0x8400
	Gray    Color = 0x8410
	Silver  Color = 0xC618
	Red     Color = 0xF800
	Magenta Color = 0xF81F
	Orange  Color = 0xFD20
	Yellow  Color = 0xFFE0
	White   Color = 0xFFFF
)

// New packs 8-bit red, green and blue components into a Color.
// The low bits that do not fit are dropped.
func New(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// Components returns the 8-bit red, green and blue components.
// The missing low bits are filled by replicating the high bits so that
// White maps to 0xFF, 0xFF, 0xFF.
func (c Color) Components() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA converts the Color to standard RGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Components()
	// Scale 8-bit value to 16-bit: 0xFF * 0x101 = 0xFFFF
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

// Bytes returns the wire representation, high byte first.
func (c Color) Bytes() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}

func (c Color) String() string {
	return fmt.Sprintf("RGB565(0x%04X)", uint16(c))
}

// toRGB565 converts any color.Color to Color.
func toRGB565(c color.Color) color.Color {
	return convert(c)
}

func convert(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit values, keep the top 5/6/5 bits
	return Color(uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11))
}

// Model converts colors to Color.
var Model = color.ModelFunc(toRGB565)

// Image is a 16-bit RGB565 image. Each pixel takes two bytes, high byte first,
// so Pix rows can be sent to a controller without conversion.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// Opaque reports whether the image is fully opaque, which is always the case.
func (p *Image) Opaque() bool {
	return true
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the Color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	i := p.PixOffset(x, y)
	return Color(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, convert(c))
}

// SetRGB565 sets the Color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i], p.Pix[i+1] = c.Bytes()
}

// PixOffset returns the index of the high byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
