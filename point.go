package glcd

import (
	"fmt"
	"image"
)

// Point is a position on a surface. Coordinates are signed so that shapes
// can start off screen; they are clipped when drawn.
type Point struct {
	X, Y int16
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int16) Point {
	return Point{X: x, Y: y}
}

// FromImage converts an image.Point. Values outside the int16 range wrap.
func FromImage(p image.Point) Point {
	return Point{X: int16(p.X), Y: int16(p.Y)}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Image returns p as an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Orientation is the display-wide rotation, clockwise.
type Orientation uint8

const (
	Landscape0 Orientation = iota
	Portrait90
	Landscape180
	Portrait270
)

// Swapped reports whether width and height are swapped relative to
// Landscape0.
func (o Orientation) Swapped() bool {
	return o == Portrait90 || o == Portrait270
}

func (o Orientation) String() string {
	switch o {
	case Landscape0:
		return "Landscape0"
	case Portrait90:
		return "Portrait90"
	case Landscape180:
		return "Landscape180"
	case Portrait270:
		return "Portrait270"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}
