// Package rgb565 provides the 16-bit 5-6-5 color format used by color TFT controllers.
//
// A Color packs red in the top 5 bits, green in the middle 6 bits and blue in the
// low 5 bits. On the wire every pixel is sent as two bytes, high byte first.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0       1
//	Colors: Red     Blue
//	Values: 0xF800  0x001F
//	Bytes:  F8 00   00 1F
//
// This package provides:
//
// - Color: a packed 16-bit color with named HTML colors (White, Black, Red, ...)
// - Model: a color model converting standard Go colors to Color
// - Image: an image.Image whose Pix slice can be streamed to a controller as is
//
// Example usage:
//
//	// Create a 320x240 image
//	img := rgb565.NewImage(image.Rect(0, 0, 320, 240))
//
//	// Set a pixel
//	img.SetRGB565(10, 20, rgb565.Orange)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Navy), image.Point{}, draw.Src)
package rgb565
