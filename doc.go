// Package glcd draws on small graphic displays.
//
// A display is anything that implements Pixeler: it knows its size and how to
// set, clear and read a single pixel. Canvas implements every drawing
// primitive on top of that, with clipping, so a driver only provides storage.
//
// # Surfaces
//
// - monochrome.Horizontal and monochrome.Vertical are 1bpp framebuffers
// with row-major and column-major bit packing. Update flushes them.
// - ili9341.Dev writes through to an ILI9341 TFT controller on SPI. It has no
// local framebuffer.
//
// # Accelerators
//
// A surface can speed up common operations by implementing any of
// HorizontalLiner, VerticalLiner, RectangleFiller, ImageDrawer, Clearer,
// Batcher or Flusher. Canvas discovers them with type assertions and clips
// the arguments before calling them, so the Fast methods never check bounds.
//
// # Drawing
//
// Surfaces embed a Canvas, so the primitives are available directly:
//
//	dev.DrawLine(glcd.Pt(0, 0), glcd.Pt(127, 63))
//	dev.FillCircle(glcd.Pt(64, 32), 10)
//	dev.SetCursor(glcd.Pt(0, 56))
//	fmt.Fprintf(dev, "%d fps", fps)
//	if err := dev.Update(); err != nil {
//		log.Fatal(err)
//	}
//
// Text uses column-banded bitmap fonts from package font; FixedWidth5x8 is
// the default.
//
// # Images
//
// Images are packed in vertical bytes like the fonts: byte x+(y/8)*width holds
// eight rows of column x, least significant bit on top. DrawImage expects a
// two byte width, height header before the pixels.
package glcd
