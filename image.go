package glcd

import "math/bits"

// ImageClip describes the visible part of a packed 1bpp image placed on a
// surface.
//
// Images are stored in vertical bytes: byte x+(y/8)*Width holds rows y&^7 to
// (y&^7)+7 of column x, least significant bit on top.
type ImageClip struct {
	// Start is where the upper left corner of the whole image lands. It
	// may be off screen.
	Start Point
	// Width and Height are the dimensions of the whole image.
	Width, Height int
	// Min and Max bound the visible rectangle in surface coordinates, Max
	// exclusive. The rectangle is never empty and lies inside the surface.
	Min, Max Point
	Data     []byte
}

// Bit reports whether pixel (x, y) of the image, in image coordinates, is set.
func (ic *ImageClip) Bit(x, y int) bool {
	return ic.Data[x+(y>>3)*ic.Width]&(1<<(y&7)) != 0
}

// clipImage computes the visible part of the image. It reports false when
// nothing is visible or data is too short for the dimensions.
func (c *Canvas) clipImage(start Point, width, height uint16, data []byte) (ImageClip, bool) {
	w, h := int(width), int(height)
	if len(data) < w*((h+7)/8) {
		return ImageClip{}, false
	}
	sw, sh := c.size()
	x0, y0 := max(int(start.X), 0), max(int(start.Y), 0)
	x1, y1 := min(int(start.X)+w, sw), min(int(start.Y)+h, sh)
	if x0 >= x1 || y0 >= y1 {
		return ImageClip{}, false
	}
	return ImageClip{
		Start:  start,
		Width:  w,
		Height: h,
		Min:    Point{X: int16(x0), Y: int16(y0)},
		Max:    Point{X: int16(x1), Y: int16(y1)},
		Data:   data,
	}, true
}

// DrawImage draws an image stored with a two byte header: width then height,
// followed by the packed pixels.
func (c *Canvas) DrawImage(start Point, image []byte) {
	if len(image) < 2 {
		return
	}
	c.DrawImageRaw(start, uint16(image[0]), uint16(image[1]), image[2:])
}

// DrawImageRaw draws a packed 1bpp image. Set bits become foreground pixels,
// clear bits background pixels. Parts outside the surface are skipped and a
// buffer shorter than width*ceil(height/8) draws nothing.
func (c *Canvas) DrawImageRaw(start Point, width, height uint16, data []byte) {
	ic, ok := c.clipImage(start, width, height, data)
	if !ok {
		return
	}
	defer c.batch()()
	c.px.SetClipRegion(ic.Min, ic.Max.X-ic.Min.X, ic.Max.Y-ic.Min.Y)
	if d, ok := c.px.(ImageDrawer); ok {
		d.DrawImageFast(ic)
		return
	}

	sy0 := int(ic.Min.Y) - int(start.Y)
	for x := ic.Min.X; x < ic.Max.X; x++ {
		i := int(x) - int(start.X) + (sy0>>3)*ic.Width
		mask := byte(1) << (sy0 & 7)
		for y := ic.Min.Y; y < ic.Max.Y; y++ {
			if data[i]&mask != 0 {
				c.px.SetPixelFast(Point{X: x, Y: y})
			} else {
				c.px.ClearPixelFast(Point{X: x, Y: y})
			}
			mask = bits.RotateLeft8(mask, 1)
			if mask == 1 {
				i += ic.Width
			}
		}
	}
}
