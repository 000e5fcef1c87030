package glcd

import "github.com/flavioheleno/glcd/rgb565"

// ColorCanvas is a Canvas for color surfaces. Set pixels take the foreground
// color, cleared pixels the background color.
//
// The surface reads the colors back from the ColorCanvas it is attached to
// when it writes a pixel.
type ColorCanvas struct {
	Canvas
	cpx        ColorPixeler
	foreground rgb565.Color
	background rgb565.Color
}

// Attach makes the ColorCanvas draw on px and resets the colors to white on
// black.
func (c *ColorCanvas) Attach(px ColorPixeler) {
	c.Canvas.Attach(px)
	c.cpx = px
	c.foreground = rgb565.White
	c.background = rgb565.Black
}

// SetColor sets the foreground color.
func (c *ColorCanvas) SetColor(col rgb565.Color) {
	c.foreground = col
}

// Color returns the foreground color.
func (c *ColorCanvas) Color() rgb565.Color {
	return c.foreground
}

// SetBackgroundColor sets the background color.
func (c *ColorCanvas) SetBackgroundColor(col rgb565.Color) {
	c.background = col
}

// BackgroundColor returns the background color.
func (c *ColorCanvas) BackgroundColor() rgb565.Color {
	return c.background
}

// ColorAt returns the color at p, or the background color off screen.
func (c *ColorCanvas) ColorAt(p Point) rgb565.Color {
	if !c.onScreen(int(p.X), int(p.Y)) {
		return c.background
	}
	return c.cpx.ColorAtFast(p)
}
