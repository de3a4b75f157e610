package elementary

import (
	"fmt"
	"math/big"
	"slices"
)

// MinLength is the smallest supported row length.
const MinLength = 2

// Lattice is a finite row of binary cells evolving under a Rule. Every
// Advance step archives the outgoing row, so len(History()) always equals
// Generation().
//
// A Lattice is not safe for concurrent use.
type Lattice struct {
	cells      []uint8
	rule       Rule
	generation int
	history    []Record
}

// NewLattice returns an all-zero lattice of the given length. A nil rule
// selects DefaultRule. The lattice keeps its own copy of rule.
func NewLattice(length int, rule *Rule) (*Lattice, error) {
	if length < MinLength {
		return nil, fmt.Errorf("%w: lattice length must be at least %d, got %d", ErrConfiguration, MinLength, length)
	}
	if rule == nil {
		rule = DefaultRule()
	}
	return &Lattice{cells: make([]uint8, length), rule: *rule}, nil
}

// ReplaceRule swaps the rule used by later advances. History is untouched.
func (l *Lattice) ReplaceRule(rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: rule must not be nil", ErrConfiguration)
	}
	l.rule = *rule
	return nil
}

// Rule returns a copy of the active rule.
func (l *Lattice) Rule() *Rule {
	r := l.rule
	return &r
}

// Len returns the number of cells.
func (l *Lattice) Len() int { return len(l.cells) }

// Generation returns the number of completed advance steps.
func (l *Lattice) Generation() int { return l.generation }

// Cells returns a copy of the current row.
func (l *Lattice) Cells() []uint8 { return slices.Clone(l.cells) }

// String renders the current row as '0'/'1' characters.
func (l *Lattice) String() string { return RowString(l.cells) }

// History returns the archived generations, oldest first.
func (l *Lattice) History() []Record { return slices.Clone(l.history) }

// SeedFromInt sets the row from seed using EncodeSeed. Zero is a valid
// seed and yields an all-zero row.
func (l *Lattice) SeedFromInt(seed int64) error {
	if seed < 0 {
		return fmt.Errorf("%w: seed must not be negative, got %d", ErrSeedOutOfRange, seed)
	}
	return l.SeedFromBig(big.NewInt(seed))
}

// SeedFromBig sets the row from an arbitrarily large seed.
func (l *Lattice) SeedFromBig(seed *big.Int) error {
	row, err := EncodeSeed(seed, len(l.cells))
	if err != nil {
		return err
	}
	l.cells = row
	return nil
}

// SetCells replaces the current row with a copy of row.
func (l *Lattice) SetCells(row []uint8) error {
	if len(row) != len(l.cells) {
		return fmt.Errorf("%w: row has %d cells, lattice has %d", ErrConfiguration, len(row), len(l.cells))
	}
	for i, b := range row {
		if b > 1 {
			return fmt.Errorf("%w: cell %d is %d, expected 0 or 1", ErrConfiguration, i, b)
		}
	}
	l.cells = slices.Clone(row)
	return nil
}

// Advance applies the rule iterations times and returns the lattice so calls
// can be chained. A negative count is rejected before any step runs. A step
// that fails leaves the lattice as it was after the previous step.
func (l *Lattice) Advance(iterations int) (*Lattice, error) {
	if iterations < 0 {
		return l, fmt.Errorf("%w: iterations must not be negative, got %d", ErrConfiguration, iterations)
	}
	for i := 0; i < iterations; i++ {
		if err := l.step(); err != nil {
			return l, fmt.Errorf("advance generation %d: %w", l.generation, err)
		}
	}
	return l, nil
}

func (l *Lattice) step() error {
	next, err := l.rule.Next(l.cells)
	if err != nil {
		return err
	}
	l.history = append(l.history, newRecord(l.generation, l.cells, l.rule.Descriptor()))
	l.cells = next
	l.generation++
	return nil
}
