package glcd

import "github.com/flavioheleno/glcd/rgb565"

// Pixeler is the storage capability every surface provides. The drawing
// algorithms of Canvas only depend on it.
//
// The Fast methods do not check their arguments: the caller must pass
// points inside Size. Canvas clips before calling them.
type Pixeler interface {
	// Size returns the current width and height in pixels.
	Size() (w, h int16)
	// SetPixelFast sets the pixel to the foreground.
	SetPixelFast(p Point)
	// ClearPixelFast sets the pixel to the background.
	ClearPixelFast(p Point)
	// PixelFast reports whether the pixel is set.
	PixelFast(p Point) bool
	// SetClipRegion announces the rectangle the next bulk write covers.
	// Buffered surfaces may ignore it.
	SetClipRegion(start Point, width, height int16)
}

// ColorPixeler is a Pixeler that can read back colors.
type ColorPixeler interface {
	Pixeler
	ColorAtFast(p Point) rgb565.Color
}

// HorizontalLiner draws a pre-clipped horizontal run of set pixels.
type HorizontalLiner interface {
	DrawHorizontalLineFast(start Point, length int16)
}

// VerticalLiner draws a pre-clipped vertical run of set pixels.
type VerticalLiner interface {
	DrawVerticalLineFast(start Point, length int16)
}

// RectangleFiller fills a pre-clipped rectangle with the foreground. Canvas
// calls SetClipRegion with the same rectangle right before.
type RectangleFiller interface {
	FillRectangleFast(start Point, width, height int16)
}

// ImageDrawer blits the visible part of a packed 1bpp image. Canvas calls
// SetClipRegion with the visible rectangle right before.
type ImageDrawer interface {
	DrawImageFast(ic ImageClip)
}

// Batcher is implemented by surfaces that talk to hardware. Batch acquires
// the bus and returns the function releasing it. Nested calls are reference
// counted: only the outermost release gives the bus back.
type Batcher interface {
	Batch() (release func())
}

// Clearer sets every pixel of the surface to the background at once.
type Clearer interface {
	ClearFast()
}

// Flusher transfers a local buffer to the physical display.
type Flusher interface {
	Flush() error
}
