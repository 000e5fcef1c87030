package rgb565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 0xFF, 0xFF, 0xFF, White},
		{"red", 0xFF, 0, 0, Red},
		{"lime", 0, 0xFF, 0, Lime},
		{"blue", 0, 0, 0xFF, Blue},
		{"orange", 0xFF, 0xA5, 0x00, Orange},
		{"gray", 0x80, 0x80, 0x80, Gray},
		{"silver", 0xC0, 0xC0, 0xC0, Silver},
		{"low bits dropped", 0x07, 0x03, 0x07, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("New(%#x, %#x, %#x) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		wr, wg, wb uint32
	}{
		{"black", Black, 0, 0, 0},
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", Red, 0xFFFF, 0, 0},
		{"lime", Lime, 0, 0xFFFF, 0},
		{"blue", Blue, 0, 0, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wr || g != tt.wg || b != tt.wb || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.wr, tt.wg, tt.wb)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	hi, lo := Color(0xABCD).Bytes()
	if hi != 0xAB || lo != 0xCD {
		t.Errorf("Bytes() = (0x%02X, 0x%02X), want (0xAB, 0xCD)", hi, lo)
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color(0x1234), 0x1234},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"rgba", color.RGBA{0x88, 0x88, 0x88, 0xFF}, New(0x88, 0x88, 0x88)},
		{"nrgba red", color.NRGBA{0xFF, 0, 0, 0xFF}, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Color)
			if got != tt.want {
				t.Errorf("Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewImage(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"320x240", image.Rect(0, 0, 320, 240), 640, 153600},
		{"3x2", image.Rect(0, 0, 3, 2), 6, 12},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
		{"empty", image.Rect(0, 0, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImageWireOrder(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 1))
	img.SetRGB565(0, 0, Red)
	img.SetRGB565(1, 0, Blue)

	want := []byte{0xF8, 0x00, 0x00, 0x1F}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestImageSetGet(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 3, 2))
	colors := [][3]Color{
		{Red, Lime, Blue},
		{White, Orange, Teal},
	}
	for y, row := range colors {
		for x, c := range row {
			img.SetRGB565(x, y, c)
		}
	}
	for y, row := range colors {
		for x, want := range row {
			if got := img.RGB565At(x, y); got != want {
				t.Errorf("RGB565At(%d, %d) = %v, want %v", x, y, got, want)
			}
			if got := img.At(x, y).(Color); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 2, 2))

	img.SetRGB565(-1, 0, White)
	img.SetRGB565(0, 2, White)
	for i, b := range img.Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after out of bounds writes, want 0", i, b)
		}
	}
	if got := img.RGB565At(5, 5); got != Black {
		t.Errorf("RGB565At(5, 5) = %v, want Black", got)
	}
}

func TestImageOffsetRect(t *testing.T) {
	img := NewImage(image.Rect(100, 50, 102, 52))
	img.SetRGB565(101, 51, Magenta)

	if got := img.RGB565At(101, 51); got != Magenta {
		t.Errorf("RGB565At(101, 51) = %v, want Magenta", got)
	}
	if off := img.PixOffset(101, 51); off != 6 {
		t.Errorf("PixOffset(101, 51) = %d, want 6", off)
	}
}

func TestImageDraw(t *testing.T) {
	img := NewImage(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0xFF, 0xFF}), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGB565At(x, y); got != Blue {
				t.Fatalf("RGB565At(%d, %d) = %v, want Blue", x, y, got)
			}
		}
	}
	if !img.Opaque() {
		t.Error("Opaque() = false, want true")
	}
	if img.ColorModel() != Model {
		t.Error("ColorModel() did not return Model")
	}
}
