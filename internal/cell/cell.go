// Package cell provides a typed single-value container with ordering.
package cell

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrEmptyCell is returned when comparing a cell that holds no value.
var ErrEmptyCell = errors.New("cell holds no value")

// Cell holds at most one value of type T and an optional position. A
// negative position means unplaced and is normalised to -1.
type Cell[T cmp.Ordered] struct {
	value    T
	ok       bool
	position int
}

// New returns a cell holding v at position.
func New[T cmp.Ordered](v T, position int) Cell[T] {
	c := Empty[T](position)
	c.value, c.ok = v, true
	return c
}

// Empty returns a cell with no value.
func Empty[T cmp.Ordered](position int) Cell[T] {
	if position < 0 {
		position = -1
	}
	return Cell[T]{position: position}
}

// Value returns the held value and whether one is present.
func (c Cell[T]) Value() (T, bool) { return c.value, c.ok }

// Position returns the cell position, -1 when unplaced.
func (c Cell[T]) Position() int { return c.position }

// IsEmpty reports whether the cell holds no value.
func (c Cell[T]) IsEmpty() bool { return !c.ok }

// Set stores v.
func (c *Cell[T]) Set(v T) {
	c.value, c.ok = v, true
}

// Clear drops the held value.
func (c *Cell[T]) Clear() {
	var zero T
	c.value, c.ok = zero, false
}

// Compare orders c against other like cmp.Compare. Both must hold values.
func (c Cell[T]) Compare(other Cell[T]) (int, error) {
	if !c.ok || !other.ok {
		return 0, ErrEmptyCell
	}
	return cmp.Compare(c.value, other.value), nil
}

// Equal reports whether both cells hold equal values.
func (c Cell[T]) Equal(other Cell[T]) (bool, error) {
	n, err := c.Compare(other)
	return n == 0, err
}

// Less reports whether c holds a smaller value than other.
func (c Cell[T]) Less(other Cell[T]) (bool, error) {
	n, err := c.Compare(other)
	return n < 0, err
}

// String renders the cell as Cell(value) or Cell(<empty>).
func (c Cell[T]) String() string {
	if !c.ok {
		return "Cell(<empty>)"
	}
	return fmt.Sprintf("Cell(%v)", c.value)
}
