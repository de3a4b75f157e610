package elementary

// Record is an immutable snapshot of one past generation.
type Record struct {
	generation int
	cells      string
	rule       string
}

func newRecord(generation int, row []uint8, descriptor string) Record {
	return Record{generation: generation, cells: RowString(row), rule: descriptor}
}

// Generation returns the generation index the snapshot was taken at.
func (r Record) Generation() int { return r.generation }

// Cells returns the row as a string of '0' and '1'.
func (r Record) Cells() string { return r.cells }

// Rule returns the descriptor of the rule that advanced this row.
func (r Record) Rule() string { return r.rule }

// Bits returns a fresh copy of the row.
func (r Record) Bits() []uint8 {
	row := make([]uint8, len(r.cells))
	for i := 0; i < len(r.cells); i++ {
		row[i] = r.cells[i] - '0'
	}
	return row
}

// RowString renders a row of bits as '0'/'1' characters.
func RowString(row []uint8) string {
	buf := make([]byte, len(row))
	for i, b := range row {
		buf[i] = '0' + b
	}
	return string(buf)
}
