package monochrome

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/flavioheleno/glcd"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
)

// surface is what both framebuffers provide.
type surface interface {
	draw.Image
	glcd.Pixeler
	SetPixel(p glcd.Point)
	Pixel(p glcd.Point) bool
	DrawLine(a, b glcd.Point)
	FillRectangle(start glcd.Point, w, h int16)
	DrawImageRaw(start glcd.Point, w, h uint16, data []byte)
	Clear()
	Update() error
	Bytes() []byte
}

func newSurfaces(t *testing.T, opts *Opts) map[string]surface {
	t.Helper()
	v, err := NewVertical(opts)
	if err != nil {
		t.Fatalf("NewVertical() = %v", err)
	}
	h, err := NewHorizontal(opts)
	if err != nil {
		t.Fatalf("NewHorizontal() = %v", err)
	}
	return map[string]surface{"vertical": v, "horizontal": h}
}

// pattern fills s with a checkerboard-like pattern so that preserved and
// replaced bits can be told apart.
func pattern(s surface) func(x, y int) bool {
	f := func(x, y int) bool { return (x*7+y*3)%5 < 2 }
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.Set(x, y, Bit(f(x, y)))
		}
	}
	return f
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"valid 84x48", &Opts{W: 84, H: 48}, false},
		{"odd sizes", &Opts{W: 13, H: 7}, false},
		{"width zero", &Opts{W: 0, H: 8}, true},
		{"negative height", &Opts{W: 8, H: -1}, true},
		{"too large", &Opts{W: 40000, H: 8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errV := NewVertical(tt.opts)
			_, errH := NewHorizontal(tt.opts)
			if (errV != nil) != tt.wantErr || (errH != nil) != tt.wantErr {
				t.Errorf("errors = %v, %v, wantErr %v", errV, errH, tt.wantErr)
			}
		})
	}
}

func TestPacking(t *testing.T) {
	v, _ := NewVertical(&Opts{W: 16, H: 20})
	if len(v.Bytes()) != 16*3 {
		t.Fatalf("vertical buffer = %d bytes, want 48", len(v.Bytes()))
	}
	v.SetPixel(glcd.Pt(3, 10))
	if v.Bytes()[3+1*16] != 0x04 {
		t.Errorf("vertical byte = 0x%02X, want 0x04", v.Bytes()[3+16])
	}

	h, _ := NewHorizontal(&Opts{W: 20, H: 16})
	if len(h.Bytes()) != 3*16 {
		t.Fatalf("horizontal buffer = %d bytes, want 48", len(h.Bytes()))
	}
	h.SetPixel(glcd.Pt(10, 3))
	if h.Bytes()[1*16+3] != 0x04 {
		t.Errorf("horizontal byte = 0x%02X, want 0x04", h.Bytes()[16+3])
	}

	if got := v.String(); got != "monochrome.Vertical{16x20}" {
		t.Errorf("String() = %q", got)
	}
	if got := h.String(); got != "monochrome.Horizontal{20x16}" {
		t.Errorf("String() = %q", got)
	}
}

func TestLinesPreserveNeighbours(t *testing.T) {
	for name, s := range newSurfaces(t, &Opts{W: 24, H: 24}) {
		for start := 0; start < 20; start++ {
			for length := 1; start+length <= 24; length++ {
				f := pattern(s)
				s.DrawLine(glcd.Pt(5, int16(start)), glcd.Pt(5, int16(start+length-1)))
				s.DrawLine(glcd.Pt(int16(start), 9), glcd.Pt(int16(start+length-1), 9))

				for y := 0; y < 24; y++ {
					for x := 0; x < 24; x++ {
						want := f(x, y) ||
							(x == 5 && y >= start && y < start+length) ||
							(y == 9 && x >= start && x < start+length)
						if got := s.Pixel(glcd.Pt(int16(x), int16(y))); got != want {
							t.Fatalf("%s: line from %d len %d: Pixel(%d,%d) = %v, want %v",
								name, start, length, x, y, got, want)
						}
					}
				}
			}
		}
	}
}

func TestFillRectangle(t *testing.T) {
	for name, s := range newSurfaces(t, &Opts{W: 16, H: 16}) {
		s.FillRectangle(glcd.Pt(2, 2), 4, 4)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				want := x >= 2 && x < 6 && y >= 2 && y < 6
				if got := s.Pixel(glcd.Pt(int16(x), int16(y))); got != want {
					t.Fatalf("%s: Pixel(%d,%d) = %v, want %v", name, x, y, got, want)
				}
			}
		}
	}
}

func TestDrawImageOffsets(t *testing.T) {
	const w, h = 10, 13
	data := make([]byte, w*2)
	for i := range data {
		data[i] = byte(i*53 + 7)
	}
	bit := func(x, y int) bool { return data[x+(y/8)*w]&(1<<(y%8)) != 0 }

	for name, s := range newSurfaces(t, &Opts{W: 16, H: 24}) {
		for sy := -14; sy <= 25; sy++ {
			for sx := -3; sx <= 8; sx += 11 {
				f := pattern(s)
				s.DrawImageRaw(glcd.Pt(int16(sx), int16(sy)), w, h, data)

				for y := 0; y < 24; y++ {
					for x := 0; x < 16; x++ {
						ix, iy := x-sx, y-sy
						want := f(x, y)
						if ix >= 0 && iy >= 0 && ix < w && iy < h {
							want = bit(ix, iy)
						}
						if got := s.Pixel(glcd.Pt(int16(x), int16(y))); got != want {
							t.Fatalf("%s: image at (%d,%d): Pixel(%d,%d) = %v, want %v",
								name, sx, sy, x, y, got, want)
						}
					}
				}
			}
		}
	}
}

// The aligned copy and the shifted merge must agree with the per-pixel path.
func TestDrawImageFastMatchesGeneric(t *testing.T) {
	data := []byte{0xA5, 0x3C, 0xFF, 0x00, 0x81, 0x7E, 0x18, 0xE7}
	for off := -7; off <= 16; off++ {
		v, _ := NewVertical(&Opts{W: 4, H: 24})
		ref, _ := NewVertical(&Opts{W: 4, H: 24})
		pattern(v)
		pattern(ref)

		v.DrawImageRaw(glcd.Pt(0, int16(off)), 4, 16, data)
		c := glcd.NewCanvas(pixelsOnly{ref})
		c.DrawImageRaw(glcd.Pt(0, int16(off)), 4, 16, data)

		if !bytes.Equal(v.Bytes(), ref.Bytes()) {
			t.Errorf("offset %d: fast %x, generic %x", off, v.Bytes(), ref.Bytes())
		}
	}
}

// pixelsOnly hides the accelerators of a Vertical.
type pixelsOnly struct {
	v *Vertical
}

func (p pixelsOnly) Size() (int16, int16)                   { return p.v.Size() }
func (p pixelsOnly) SetPixelFast(pt glcd.Point)             { p.v.SetPixelFast(pt) }
func (p pixelsOnly) ClearPixelFast(pt glcd.Point)           { p.v.ClearPixelFast(pt) }
func (p pixelsOnly) PixelFast(pt glcd.Point) bool           { return p.v.PixelFast(pt) }
func (p pixelsOnly) SetClipRegion(glcd.Point, int16, int16) {}

func TestDrawImage(t *testing.T) {
	for name, s := range newSurfaces(t, &Opts{W: 32, H: 16}) {
		src := image.NewGray(image.Rect(0, 0, 4, 4))
		src.SetGray(1, 2, color.Gray{Y: 0xFF})
		draw.Draw(s, image.Rect(8, 8, 12, 12), src, image.Point{}, draw.Src)

		if !s.Pixel(glcd.Pt(9, 10)) {
			t.Errorf("%s: draw.Draw did not set (9,10)", name)
		}
		if s.Pixel(glcd.Pt(8, 8)) {
			t.Errorf("%s: draw.Draw set (8,8)", name)
		}
		if s.At(9, 10) != On || s.At(100, 100) != Off {
			t.Errorf("%s: At() mismatch", name)
		}
		s.Set(-1, 3, On)
	}
}

func TestFontDrawer(t *testing.T) {
	for name, s := range newSurfaces(t, &Opts{W: 64, H: 16}) {
		d := xfont.Drawer{
			Dst:  s,
			Src:  image.NewUniform(On),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(0, 11),
		}
		d.DrawString("Hi")

		n := 0
		for _, b := range s.Bytes() {
			for ; b != 0; b &= b - 1 {
				n++
			}
		}
		if n == 0 {
			t.Errorf("%s: no pixels drawn", name)
		}
		if got := d.Dot.X.Round(); got != 14 {
			t.Errorf("%s: dot advanced to %d, want 14", name, got)
		}
	}
}

func TestBitModel(t *testing.T) {
	tests := []struct {
		c    color.Color
		want Bit
	}{
		{color.White, On},
		{color.Black, Off},
		{color.Gray{Y: 0x7F}, Off},
		{color.Gray{Y: 0x80}, On},
		{On, On},
		{color.RGBA{R: 0xFF, A: 0xFF}, Off},
	}
	for _, tt := range tests {
		if got := BitModel.Convert(tt.c); got != tt.want {
			t.Errorf("Convert(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
	if On.String() != "On" || Off.String() != "Off" {
		t.Error("String() mismatch")
	}
}

func TestUpdate(t *testing.T) {
	rec := &conntest.Record{}
	for name, s := range newSurfaces(t, &Opts{W: 16, H: 8, Sink: rec}) {
		rec.Ops = nil
		s.SetPixel(glcd.Pt(0, 0))
		if err := s.Update(); err != nil {
			t.Fatalf("%s: Update() = %v", name, err)
		}
		if len(rec.Ops) != 1 || !bytes.Equal(rec.Ops[0].W, s.Bytes()) {
			t.Errorf("%s: sink got %v, want the buffer", name, rec.Ops)
		}

		s.Clear()
		for i, b := range s.Bytes() {
			if b != 0 {
				t.Fatalf("%s: byte %d = 0x%02X after Clear", name, i, b)
			}
		}
	}

	for name, s := range newSurfaces(t, &Opts{W: 8, H: 8}) {
		if err := s.Update(); err != nil {
			t.Errorf("%s: Update() without sink = %v", name, err)
		}
	}

	for name, s := range newSurfaces(t, &Opts{W: 8, H: 8, Sink: failConn{}}) {
		err := s.Update()
		if err == nil || !strings.HasPrefix(err.Error(), "monochrome: flush") || !errors.Is(err, errBus) {
			t.Errorf("%s: Update() = %v, want wrapped bus error", name, err)
		}
	}
}

var errBus = errors.New("bus error")

type failConn struct{}

func (failConn) String() string           { return "fail" }
func (failConn) Tx(w, r []byte) error     { return errBus }
func (failConn) Duplex() conn.Duplex      { return conn.Half }
