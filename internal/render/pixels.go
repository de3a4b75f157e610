package render

import (
	"image"
	"image/color"
)

// Palette maps binary cells to RGBA pixels.
type Palette struct {
	on, off [4]byte
}

// Mono draws live cells white on black.
var Mono = NewPalette(color.White, color.Black)

// NewPalette converts on and off to 8-bit RGBA once.
func NewPalette(on, off color.Color) Palette {
	return Palette{on: rgba8(on), off: rgba8(off)}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Fill writes one pixel per cell into buf, which must hold 4*len(cells)
// bytes.
func (p Palette) Fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := &p.off
		if c != 0 {
			px = &p.on
		}
		copy(buf[4*i:4*i+4], px[:])
	}
}

// Diagram draws '0'/'1' rows as a space-time image, one pixel per cell and
// the first row at the top. Rows shorter than the first are padded with
// dead cells.
func (p Palette) Diagram(rows []string) *image.RGBA {
	if len(rows) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	w := len(rows[0])
	img := image.NewRGBA(image.Rect(0, 0, w, len(rows)))
	cells := make([]uint8, w)
	for y, row := range rows {
		for x := range cells {
			cells[x] = 0
			if x < len(row) && row[x] == '1' {
				cells[x] = 1
			}
		}
		p.Fill(img.Pix[y*img.Stride:], cells)
	}
	return img
}
