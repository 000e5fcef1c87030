package glcd

import (
	"image/color"

	"github.com/flavioheleno/glcd/rgb565"
	"tinygo.org/x/drivers"
)

// Displayer returns a view of the canvas usable by packages written against
// the TinyGo display interface, such as tinyfont. Pixels with a luminance of
// at least one half are set, darker ones cleared.
func (c *Canvas) Displayer() drivers.Displayer {
	return &displayer{c: c}
}

// Displayer returns a view of the canvas usable by packages written against
// the TinyGo display interface. Each pixel is drawn in its own color, the
// current foreground color is left unchanged.
func (c *ColorCanvas) Displayer() drivers.Displayer {
	return &displayer{c: &c.Canvas, cc: c}
}

type displayer struct {
	c  *Canvas
	cc *ColorCanvas
}

func (d *displayer) Size() (x, y int16) {
	return d.c.px.Size()
}

func (d *displayer) SetPixel(x, y int16, col color.RGBA) {
	p := Point{X: x, Y: y}
	if d.cc != nil {
		fg := d.cc.foreground
		d.cc.foreground = rgb565.Model.Convert(col).(rgb565.Color)
		d.c.SetPixel(p)
		d.cc.foreground = fg
		return
	}
	if color.GrayModel.Convert(col).(color.Gray).Y >= 0x80 {
		d.c.SetPixel(p)
	} else {
		d.c.ClearPixel(p)
	}
}

func (d *displayer) Display() error {
	return d.c.Update()
}

// Rotation returns the TinyGo rotation matching o.
func (o Orientation) Rotation() drivers.Rotation {
	switch o {
	case Portrait90:
		return drivers.Rotation90
	case Landscape180:
		return drivers.Rotation180
	case Portrait270:
		return drivers.Rotation270
	}
	return drivers.Rotation0
}

// OrientationFromRotation converts a TinyGo rotation. Mirrored rotations map
// to their unmirrored counterpart.
func OrientationFromRotation(r drivers.Rotation) Orientation {
	switch r % 4 {
	case drivers.Rotation90:
		return Portrait90
	case drivers.Rotation180:
		return Landscape180
	case drivers.Rotation270:
		return Portrait270
	}
	return Landscape0
}
