package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestPaletteFill(t *testing.T) {
	p := NewPalette(color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	buf := make([]byte, 8)
	p.Fill(buf, []uint8{1, 0})

	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestPaletteDiagram(t *testing.T) {
	img := Mono.Diagram([]string{"010", "11"})
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, black}, {1, 0, white}, {2, 0, black},
		{0, 1, white}, {1, 1, white}, {2, 1, black},
	}
	for _, c := range cases {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestPaletteDiagramEmpty(t *testing.T) {
	if b := Mono.Diagram(nil).Bounds(); !b.Empty() {
		t.Fatalf("expected empty image, got %v", b)
	}
}

func TestGlyphs(t *testing.T) {
	if got := Blocks.Row([]uint8{0, 1, 1, 0}); got != ".##." {
		t.Fatalf("Row = %q", got)
	}
	if got := Digits.Bits("0110"); got != "0110" {
		t.Fatalf("Bits = %q", got)
	}

	var out bytes.Buffer
	if err := Blocks.WriteDiagram(&out, []string{"010", "111"}); err != nil {
		t.Fatalf("WriteDiagram: %v", err)
	}
	if out.String() != ".#.\n###\n" {
		t.Fatalf("diagram = %q", out.String())
	}
}
