package render

import (
	"io"
	"strings"
)

// Glyphs selects the characters used for live and dead cells.
type Glyphs struct {
	On, Off rune
}

var (
	// Blocks draws live cells as '#' and dead ones as '.'.
	Blocks = Glyphs{On: '#', Off: '.'}
	// Digits draws cells as '1' and '0'.
	Digits = Glyphs{On: '1', Off: '0'}
)

// Row renders one row of binary cells.
func (g Glyphs) Row(cells []uint8) string {
	var b strings.Builder
	b.Grow(len(cells))
	for _, c := range cells {
		if c != 0 {
			b.WriteRune(g.On)
			continue
		}
		b.WriteRune(g.Off)
	}
	return b.String()
}

// Bits renders a '0'/'1' string, such as a recorded generation.
func (g Glyphs) Bits(bits string) string {
	return strings.Map(func(r rune) rune {
		if r == '1' {
			return g.On
		}
		return g.Off
	}, bits)
}

// WriteDiagram writes one line per row, oldest first.
func (g Glyphs) WriteDiagram(w io.Writer, rows []string) error {
	for _, row := range rows {
		if _, err := io.WriteString(w, g.Bits(row)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
