package elementary

// Summary describes the course of a run.
type Summary struct {
	// Generations is the number of archived rows.
	Generations int
	// Live holds the live cell count of every archived row followed by the
	// current row.
	Live []int
	// Density is the fraction of live cells in the current row.
	Density float64
	// CycleStart is the first generation of the earliest repeated row, or -1.
	CycleStart int
	// Period is the distance between the two occurrences, or 0.
	Period int
}

// Analyze summarises history followed by the current row.
func Analyze(history []Record, current []uint8) Summary {
	s := Summary{Generations: len(history), CycleStart: -1}
	seen := make(map[string]int, len(history)+1)
	observe := func(gen int, row string) {
		live := 0
		for i := 0; i < len(row); i++ {
			if row[i] == '1' {
				live++
			}
		}
		s.Live = append(s.Live, live)
		if s.CycleStart >= 0 {
			return
		}
		if first, ok := seen[row]; ok {
			s.CycleStart = first
			s.Period = gen - first
			return
		}
		seen[row] = gen
	}
	for _, rec := range history {
		observe(rec.Generation(), rec.Cells())
	}
	observe(len(history), RowString(current))
	if len(current) > 0 {
		s.Density = float64(s.Live[len(s.Live)-1]) / float64(len(current))
	}
	return s
}

// Summarize analyses the lattice's history and current row.
func Summarize(l *Lattice) Summary {
	return Analyze(l.history, l.cells)
}
