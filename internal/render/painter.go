//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tspugh/cellular-automata-ml/internal/core"
)

// Painter uploads a sim's cells into one ebiten image per frame.
type Painter struct {
	size    core.Size
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewPainter allocates a painter for a sim of the given size.
func NewPainter(size core.Size, palette Palette) *Painter {
	return &Painter{
		size:    size,
		palette: palette,
		img:     ebiten.NewImage(size.W, size.H),
		buf:     make([]byte, 4*size.W*size.H),
	}
}

// Draw paints cells onto dst scaled by scale. Cells of the wrong size are
// ignored.
func (p *Painter) Draw(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != p.size.W*p.size.H {
		return
	}
	p.palette.Fill(p.buf, cells)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
