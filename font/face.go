package font

import (
	"errors"
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes the characters first..last of face into a Font.
//
// A pixel is set when the glyph mask coverage is at least one half. The glyph
// width is the rounded advance of the face, which already contains the
// inter-character gap, so spacing is usually 0 for faces.
func FromFace(name string, face xfont.Face, first, last byte, spacing uint8) (*Font, error) {
	if face == nil {
		return nil, errors.New("font: nil face")
	}
	if last < first {
		return nil, fmt.Errorf("font: empty range %#x..%#x", first, last)
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("font: unsupported face height %d", height)
	}
	bands := (height + 7) / 8
	dot := fixed.P(0, ascent)

	n := int(last) - int(first) + 1
	widths := make([]uint8, n)
	var data []byte
	for i := 0; i < n; i++ {
		r := rune(int(first) + i)
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		w := advance.Round()
		if w < 0 || w > 255 {
			return nil, fmt.Errorf("font: glyph %q advance %d out of range", r, w)
		}
		widths[i] = uint8(w)
		glyph := make([]byte, w*bands)
		for x := 0; x < w; x++ {
			for y := 0; y < height; y++ {
				p := image.Pt(x, y)
				if !p.In(dr) {
					continue
				}
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					glyph[x+(y/8)*w] |= 1 << (y % 8)
				}
			}
		}
		data = append(data, glyph...)
	}
	return New(name, uint8(height), spacing, first, widths, data)
}
