// Package font holds bitmap fonts for monochrome and color displays.
//
// Glyphs are stored column by column in 8-row bands, the same packing used
// for images: the byte at index x + band*width holds rows band*8..band*8+7
// of column x, bit 0 being the topmost row.
package font

import (
	"errors"
	"fmt"
)

// Font is a read-only bitmap glyph table addressed by character code.
type Font struct {
	name    string
	height  uint8
	spacing uint8
	first   byte
	widths  []uint8
	offsets []int
	data    []byte
}

// New creates a font from per-glyph widths and concatenated glyph data.
//
// Glyph i describes character first+i and uses widths[i]*ceil(height/8) bytes
// of data. spacing is the number of empty columns written after each glyph.
func New(name string, height, spacing uint8, first byte, widths []uint8, data []byte) (*Font, error) {
	if height == 0 {
		return nil, errors.New("font: height must be at least 1")
	}
	if len(widths) == 0 {
		return nil, errors.New("font: no glyphs")
	}
	if int(first)+len(widths) > 256 {
		return nil, fmt.Errorf("font: %d glyphs starting at %#x exceed the byte range", len(widths), first)
	}
	bands := (int(height) + 7) / 8
	offsets := make([]int, len(widths))
	n := 0
	for i, w := range widths {
		offsets[i] = n
		n += int(w) * bands
	}
	if n != len(data) {
		return nil, fmt.Errorf("font: glyph data is %d bytes, widths require %d", len(data), n)
	}
	return &Font{
		name:    name,
		height:  height,
		spacing: spacing,
		first:   first,
		widths:  widths,
		offsets: offsets,
		data:    data,
	}, nil
}

// MustNew is like New but panics on error. It is meant for package level
// font tables.
func MustNew(name string, height, spacing uint8, first byte, widths []uint8, data []byte) *Font {
	f, err := New(name, height, spacing, first, widths, data)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the font name.
func (f *Font) Name() string {
	return f.name
}

// Height returns the glyph height in pixels.
func (f *Font) Height() uint8 {
	return f.height
}

// Spacing returns the number of blank columns after each glyph.
func (f *Font) Spacing() uint8 {
	return f.spacing
}

// First returns the first character code in the table.
func (f *Font) First() byte {
	return f.first
}

// Len returns the number of glyphs.
func (f *Font) Len() int {
	return len(f.widths)
}

// Glyph returns the width and the packed column data of character c.
// ok is false when the font has no glyph for c.
func (f *Font) Glyph(c byte) (width uint8, data []byte, ok bool) {
	if c < f.first || int(c-f.first) >= len(f.widths) {
		return 0, nil, false
	}
	i := int(c - f.first)
	width = f.widths[i]
	n := int(width) * ((int(f.height) + 7) / 8)
	return width, f.data[f.offsets[i] : f.offsets[i]+n], true
}

// StringWidth returns the width in pixels of s, including the spacing after
// every glyph. Characters without a glyph are not counted.
func (f *Font) StringWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		if gw, _, ok := f.Glyph(s[i]); ok {
			w += int(gw) + int(f.spacing)
		}
	}
	return w
}

func (f *Font) String() string {
	return fmt.Sprintf("font.Font{%s %dpx, %d glyphs}", f.name, f.height, len(f.widths))
}
