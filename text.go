package glcd

import (
	"io"

	"github.com/flavioheleno/glcd/font"
)

var _ io.Writer = (*Canvas)(nil)
var _ io.ByteWriter = (*Canvas)(nil)
var _ io.StringWriter = (*Canvas)(nil)

// SetFont selects the font used by Write. A nil font restores the default.
func (c *Canvas) SetFont(f *font.Font) {
	if f == nil {
		f = font.FixedWidth5x8
	}
	c.font = f
}

// Font returns the current font.
func (c *Canvas) Font() *font.Font {
	return c.font
}

// FontHeight returns the height of the current font in pixels.
func (c *Canvas) FontHeight() int16 {
	return int16(c.font.Height())
}

// StringWidth returns the width s occupies in the current font.
func (c *Canvas) StringWidth(s string) int16 {
	return int16(c.font.StringWidth(s))
}

// SetCursor moves the text cursor, the upper left corner of the next glyph.
func (c *Canvas) SetCursor(p Point) {
	c.cursor = p
}

// SetCursorX moves the text cursor horizontally.
func (c *Canvas) SetCursorX(x int16) {
	c.cursor.X = x
}

// SetCursorY moves the text cursor vertically.
func (c *Canvas) SetCursorY(y int16) {
	c.cursor.Y = y
}

// Cursor returns the text cursor.
func (c *Canvas) Cursor() Point {
	return c.cursor
}

// WriteByte draws one character at the cursor and advances it. '\n' moves
// the cursor to the start of the next line. Characters missing from the font
// are skipped.
func (c *Canvas) WriteByte(ch byte) error {
	if ch == '\n' {
		c.cursor.X = 0
		c.cursor.Y += c.FontHeight()
		return nil
	}
	w, data, ok := c.font.Glyph(ch)
	if !ok {
		return nil
	}
	h := c.font.Height()
	c.DrawImageRaw(c.cursor, uint16(w), uint16(h), data)
	sp := c.font.Spacing()
	for x := int16(0); x < int16(sp); x++ {
		for y := int16(0); y < int16(h); y++ {
			c.ClearPixel(Point{X: c.cursor.X + int16(w) + x, Y: c.cursor.Y + y})
		}
	}
	c.cursor.X += int16(w) + int16(sp)
	return nil
}

// Write draws p as text. It never fails.
func (c *Canvas) Write(p []byte) (int, error) {
	defer c.batch()()
	for _, ch := range p {
		c.WriteByte(ch)
	}
	return len(p), nil
}

// WriteString is like Write for a string.
func (c *Canvas) WriteString(s string) (int, error) {
	defer c.batch()()
	for i := 0; i < len(s); i++ {
		c.WriteByte(s[i])
	}
	return len(s), nil
}
