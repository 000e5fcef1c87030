package glcd

import "github.com/flavioheleno/glcd/font"

// Canvas implements the drawing primitives on top of a Pixeler. Surfaces
// embed a Canvas and Attach themselves to it, so every shape, image and text
// routine is written once.
//
// All coordinates are clipped: drawing partially or completely off screen is
// not an error.
type Canvas struct {
	px     Pixeler
	font   *font.Font
	cursor Point
}

// NewCanvas returns a Canvas drawing on px.
func NewCanvas(px Pixeler) *Canvas {
	c := &Canvas{}
	c.Attach(px)
	return c
}

// Attach makes the Canvas draw on px and selects the default font when none
// is set.
func (c *Canvas) Attach(px Pixeler) {
	c.px = px
	if c.font == nil {
		c.font = font.FixedWidth5x8
	}
}

// Pixeler returns the surface the Canvas draws on.
func (c *Canvas) Pixeler() Pixeler {
	return c.px
}

// Width returns the current width of the surface.
func (c *Canvas) Width() int16 {
	w, _ := c.px.Size()
	return w
}

// Height returns the current height of the surface.
func (c *Canvas) Height() int16 {
	_, h := c.px.Size()
	return h
}

func (c *Canvas) size() (w, h int) {
	sw, sh := c.px.Size()
	return int(sw), int(sh)
}

func (c *Canvas) onScreen(x, y int) bool {
	w, h := c.size()
	return x >= 0 && y >= 0 && x < w && y < h
}

// batch acquires the bus of hardware surfaces for the duration of a
// primitive.
func (c *Canvas) batch() func() {
	if b, ok := c.px.(Batcher); ok {
		return b.Batch()
	}
	return func() {}
}

// SetPixel sets p to the foreground. Off-screen points are ignored.
func (c *Canvas) SetPixel(p Point) {
	c.setPixel(int(p.X), int(p.Y))
}

// ClearPixel sets p to the background. Off-screen points are ignored.
func (c *Canvas) ClearPixel(p Point) {
	if c.onScreen(int(p.X), int(p.Y)) {
		c.px.ClearPixelFast(p)
	}
}

// Pixel reports whether p is set. Off-screen points read as clear.
func (c *Canvas) Pixel(p Point) bool {
	if !c.onScreen(int(p.X), int(p.Y)) {
		return false
	}
	return c.px.PixelFast(p)
}

func (c *Canvas) setPixel(x, y int) {
	if c.onScreen(x, y) {
		c.px.SetPixelFast(Point{X: int16(x), Y: int16(y)})
	}
}

// Clear sets every pixel to the background.
func (c *Canvas) Clear() {
	defer c.batch()()
	if cl, ok := c.px.(Clearer); ok {
		cl.ClearFast()
		return
	}
	w, h := c.px.Size()
	c.px.SetClipRegion(Point{}, w, h)
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			c.px.ClearPixelFast(Point{X: x, Y: y})
		}
	}
}

// Update transfers the local buffer to the display. It is a no-op for
// surfaces that write through.
func (c *Canvas) Update() error {
	if f, ok := c.px.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// hline draws length pixels to the right of (x, y), clipped.
func (c *Canvas) hline(x, y, length int) {
	w, h := c.size()
	if y < 0 || y >= h || length <= 0 {
		return
	}
	x0, x1 := max(x, 0), min(x+length, w)
	if x0 >= x1 {
		return
	}
	if l, ok := c.px.(HorizontalLiner); ok {
		l.DrawHorizontalLineFast(Point{X: int16(x0), Y: int16(y)}, int16(x1-x0))
		return
	}
	for ; x0 < x1; x0++ {
		c.px.SetPixelFast(Point{X: int16(x0), Y: int16(y)})
	}
}

// vline draws length pixels below (x, y), clipped.
func (c *Canvas) vline(x, y, length int) {
	w, h := c.size()
	if x < 0 || x >= w || length <= 0 {
		return
	}
	y0, y1 := max(y, 0), min(y+length, h)
	if y0 >= y1 {
		return
	}
	if l, ok := c.px.(VerticalLiner); ok {
		l.DrawVerticalLineFast(Point{X: int16(x), Y: int16(y0)}, int16(y1-y0))
		return
	}
	for ; y0 < y1; y0++ {
		c.px.SetPixelFast(Point{X: int16(x), Y: int16(y0)})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawLine draws a line from a to b, both ends included.
func (c *Canvas) DrawLine(a, b Point) {
	defer c.batch()()
	x0, y0, x1, y1 := int(a.X), int(a.Y), int(b.X), int(b.Y)
	switch {
	case x0 == x1:
		c.vline(x0, min(y0, y1), abs(y1-y0)+1)
		return
	case y0 == y1:
		c.hline(min(x0, x1), y0, abs(x1-x0)+1)
		return
	}

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx, dy := x1-x0, abs(y1-y0)
	e := dx / 2
	step := 1
	if y0 > y1 {
		step = -1
	}
	for x, y := x0, y0; x <= x1; x++ {
		if steep {
			c.setPixel(y, x)
		} else {
			c.setPixel(x, y)
		}
		e -= dy
		if e < 0 {
			y += step
			e += dx
		}
	}
}

// DrawRectangle draws the outline of the width x height rectangle whose
// upper left corner is start.
func (c *Canvas) DrawRectangle(start Point, width, height int16) {
	if width <= 0 || height <= 0 {
		return
	}
	defer c.batch()()
	x, y, w, h := int(start.X), int(start.Y), int(width), int(height)
	c.hline(x, y, w)
	c.hline(x, y+h-1, w)
	c.vline(x, y, h)
	c.vline(x+w-1, y, h)
}

// FillRectangle sets every pixel of the width x height rectangle whose upper
// left corner is start.
func (c *Canvas) FillRectangle(start Point, width, height int16) {
	sw, sh := c.size()
	x0, y0 := max(int(start.X), 0), max(int(start.Y), 0)
	x1, y1 := min(int(start.X)+int(width), sw), min(int(start.Y)+int(height), sh)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	defer c.batch()()
	p, w, h := Point{X: int16(x0), Y: int16(y0)}, int16(x1-x0), int16(y1-y0)
	c.px.SetClipRegion(p, w, h)
	if f, ok := c.px.(RectangleFiller); ok {
		f.FillRectangleFast(p, w, h)
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.px.SetPixelFast(Point{X: int16(x), Y: int16(y)})
		}
	}
}

// DrawRoundedRectangle draws a rectangle outline with quarter circle corners
// of the given radius. The footprint matches DrawRectangle with the same
// arguments. A zero radius draws a plain rectangle.
func (c *Canvas) DrawRoundedRectangle(start Point, width, height, radius int16) {
	if radius <= 0 {
		c.DrawRectangle(start, width, height)
		return
	}
	if width <= 0 || height <= 0 {
		return
	}
	defer c.batch()()
	x0, y0 := int(start.X), int(start.Y)
	x1, y1 := x0+int(width)-1, y0+int(height)-1
	r := int(radius)

	c.hline(x0+r, y0, int(width)-2*r)
	c.hline(x0+r, y1, int(width)-2*r)
	c.vline(x0, y0+r, int(height)-2*r)
	c.vline(x1, y0+r, int(height)-2*r)

	// Corner centers.
	lx, rx := x0+r, x1-r
	ty, by := y0+r, y1-r
	f := 3 - 2*r
	for x, y := 0, r; x <= y; x++ {
		c.setPixel(lx-x, ty-y)
		c.setPixel(lx-y, ty-x)
		c.setPixel(rx+x, ty-y)
		c.setPixel(rx+y, ty-x)
		c.setPixel(lx-x, by+y)
		c.setPixel(lx-y, by+x)
		c.setPixel(rx+x, by+y)
		c.setPixel(rx+y, by+x)
		if f < 0 {
			f += 4*x + 6
		} else {
			f += 4*(x-y) + 10
			y--
		}
	}
}

// DrawCircle draws the outline of a circle. A zero radius draws nothing.
func (c *Canvas) DrawCircle(center Point, radius int16) {
	if radius <= 0 {
		return
	}
	defer c.batch()()
	cx, cy := int(center.X), int(center.Y)
	e := -int(radius)
	x, y := int(radius), 0
	for x > y {
		c.plot4(cx, cy, x, y)
		c.plot4(cx, cy, y, x)
		e += y
		y++
		e += y
		if e >= 0 {
			x--
			e -= 2 * x
		}
	}
	c.plot4(cx, cy, x, y)
}

// FillCircle fills the disc of the given radius. The disc contains the
// outline drawn by DrawCircle and is symmetric around its center. A zero
// radius sets the center pixel only.
func (c *Canvas) FillCircle(center Point, radius int16) {
	if radius < 0 {
		return
	}
	defer c.batch()()
	cx, cy := int(center.X), int(center.Y)
	r := int(radius)
	d := r
	for x, y := 0, r; x <= y; x++ {
		for d < 0 {
			d += 2*y - 1
			y--
		}
		if x > y {
			break
		}
		c.vline(cx+x, cy-y, 2*y+1)
		c.vline(cx-x, cy-y, 2*y+1)
		c.vline(cx+y, cy-x, 2*x+1)
		c.vline(cx-y, cy-x, 2*x+1)
		d -= 2*x + 1
	}
}

// DrawEllipse draws the outline of an axis aligned ellipse. It matches
// DrawCircle when both radii are equal.
func (c *Canvas) DrawEllipse(center Point, rx, ry int16) {
	if rx < 0 || ry < 0 {
		return
	}
	defer c.batch()()
	cx, cy := int(center.X), int(center.Y)
	rx2, ry2 := int(rx)*int(rx), int(ry)*int(ry)
	x, y := 0, int(ry)
	fx, fy := 0, 2*rx2*y

	// Region 1, slope above -1.
	p := ry2 - rx2*int(ry) + (rx2+2)/4
	c.plot4(cx, cy, x, y)
	for fx < fy {
		x++
		fx += 2 * ry2
		if p < 0 {
			p += fx + ry2
		} else {
			y--
			fy -= 2 * rx2
			p += fx + ry2 - fy
		}
		c.plot4(cx, cy, x, y)
	}

	p = (ry2*(4*x*x+4*x+1)/2 + 2*(rx2*(y-1)*(y-1)) - 2*(rx2*ry2) + 1) / 2
	for y > 0 {
		y--
		fy -= 2 * rx2
		if p >= 0 {
			p += rx2 - fy
		} else {
			x++
			fx += 2 * ry2
			p += fx + rx2 - fy
		}
		c.plot4(cx, cy, x, y)
	}
}

// plot4 sets the four mirror images of (x, y) around (cx, cy), each once.
func (c *Canvas) plot4(cx, cy, x, y int) {
	c.setPixel(cx+x, cy+y)
	c.setPixel(cx-x, cy-y)
	if x != 0 {
		c.setPixel(cx-x, cy+y)
	}
	if y != 0 {
		c.setPixel(cx+x, cy-y)
	}
}
