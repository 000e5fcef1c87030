package glcd

import "testing"

// testImage returns a w x h packed image with a deterministic pattern.
func testImage(w, h int) []byte {
	data := make([]byte, w*((h+7)/8))
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	return data
}

func TestDrawImageRaw(t *testing.T) {
	const w, h = 10, 13
	data := testImage(w, h)
	ic := ImageClip{Width: w, Data: data}

	starts := []Point{{0, 0}, {3, 5}, {-4, -6}, {12, 9}, {-9, 2}, {6, -12}, {0, 3}}
	for _, start := range starts {
		g := newGrid(t, 16, 16)
		for i := range g.pix {
			g.pix[i] = true
		}
		c := NewCanvas(g)
		c.DrawImageRaw(start, w, h, data)

		for y := int16(0); y < 16; y++ {
			for x := int16(0); x < 16; x++ {
				ix, iy := int(x)-int(start.X), int(y)-int(start.Y)
				want := true
				if ix >= 0 && iy >= 0 && ix < w && iy < h {
					want = ic.Bit(ix, iy)
				}
				if got := c.Pixel(Pt(x, y)); got != want {
					t.Fatalf("start %v: Pixel(%d,%d) = %v, want %v", start, x, y, got, want)
				}
			}
		}
	}
}

func TestDrawImageRawInvisible(t *testing.T) {
	data := testImage(8, 8)
	for _, start := range []Point{{-8, 0}, {0, -8}, {16, 0}, {0, 16}} {
		g := newGrid(t, 16, 16)
		NewCanvas(g).DrawImageRaw(start, 8, 8, data)
		if g.count() != 0 || len(g.clip) != 0 {
			t.Errorf("start %v: image drawn off screen", start)
		}
	}
}

func TestDrawImageRawShortData(t *testing.T) {
	g := newGrid(t, 16, 16)
	NewCanvas(g).DrawImageRaw(Pt(0, 0), 8, 9, make([]byte, 15))
	if len(g.clip) != 0 {
		t.Error("short image data was drawn")
	}
}

func TestDrawImage(t *testing.T) {
	g := newGrid(t, 8, 8)
	c := NewCanvas(g)
	// 3x2 image: a diagonal.
	c.DrawImage(Pt(1, 1), []byte{3, 2, 0x01, 0x02, 0x00})

	want := map[Point]bool{{1, 1}: true, {2, 2}: true}
	if !equalSets(g.set(), want) {
		t.Errorf("set pixels = %v, want %v", g.set(), want)
	}
	if len(g.clip) != 1 || g.clip[0] != (clipRegion{Pt(1, 1), 3, 2}) {
		t.Errorf("clip regions = %v, want one 3x2 at (1,1)", g.clip)
	}

	c.DrawImage(Pt(0, 0), []byte{3})
	c.DrawImage(Pt(0, 0), nil)
}
