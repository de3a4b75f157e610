package elementary

import (
	"fmt"
	"strconv"

	"github.com/tspugh/cellular-automata-ml/internal/core"
)

// RuleBits is the number of entries in an elementary rule table.
const RuleBits = 8

// DefaultRuleCode is the Wolfram code used when no rule is supplied.
const DefaultRuleCode = 30

// Neighborhood is the (left, center, right) window around a cell.
type Neighborhood [3]uint8

// Code returns 4*left + 2*center + right.
func (n Neighborhood) Code() int {
	return int(n[0])<<2 | int(n[1])<<1 | int(n[2])
}

// Rule maps each of the eight neighborhoods to the center cell's next state
// and supplies the virtual neighbours at the row's edges.
//
// The boundary is fixed at construction. The table is set as a whole by
// SetInt or SetString; entry k holds the output for the neighborhood whose
// code is k, which is character 7-k of the bit string.
type Rule struct {
	boundary Boundary
	table    [RuleBits]uint8
	set      bool
	bits     core.BitSource
}

// RuleOption customises a Rule at construction.
type RuleOption func(*Rule)

// WithBitSource sets the source drawn from by random boundaries.
func WithBitSource(src core.BitSource) RuleOption {
	return func(r *Rule) { r.bits = src }
}

// NewRule returns an unset rule with the given boundary. Random boundaries
// without an explicit bit source get an RNG seeded from crypto/rand.
func NewRule(b Boundary, opts ...RuleOption) (*Rule, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	r := &Rule{boundary: b}
	for _, opt := range opts {
		opt(r)
	}
	if r.bits == nil && b.Mode == BoundaryRandom {
		seed, err := core.NewSeed()
		if err != nil {
			return nil, err
		}
		r.bits = core.NewRNG(seed)
	}
	return r, nil
}

// DefaultRule returns Rule 30 with both edges fixed at 0.
func DefaultRule() *Rule {
	r := &Rule{boundary: Fixed(0, 0)}
	r.setCode(DefaultRuleCode)
	return r
}

// SetInt replaces the table with the Wolfram code (0..255).
func (r *Rule) SetInt(code int) error {
	if code < 0 || code > 255 {
		return fmt.Errorf("%w: rule code must be between 0 and 255, got %d", ErrConfiguration, code)
	}
	return r.SetString(fmt.Sprintf("%08b", code))
}

// SetString replaces the table from eight '0'/'1' characters, most
// significant (neighborhood 7) first.
func (r *Rule) SetString(bits string) error {
	if len(bits) != RuleBits {
		return fmt.Errorf("%w: rule string must be %d characters long, got %q", ErrConfiguration, RuleBits, bits)
	}
	var table [RuleBits]uint8
	for i := 0; i < RuleBits; i++ {
		switch bits[i] {
		case '0':
		case '1':
			table[RuleBits-1-i] = 1
		default:
			return fmt.Errorf("%w: rule string must contain only 0s and 1s, got %q", ErrConfiguration, bits)
		}
	}
	r.table = table
	r.set = true
	return nil
}

// Set accepts either an eight character bit string or a decimal code.
func (r *Rule) Set(s string) error {
	if len(s) == RuleBits {
		return r.SetString(s)
	}
	code, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: rule must be a code 0-255 or %d bits, got %q", ErrConfiguration, RuleBits, s)
	}
	return r.SetInt(code)
}

// ParseRule builds a rule with boundary b from a Wolfram code or an eight
// character bit string.
func ParseRule(s string, b Boundary, opts ...RuleOption) (*Rule, error) {
	r, err := NewRule(b, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.Set(s); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rule) setCode(code uint8) {
	for k := 0; k < RuleBits; k++ {
		r.table[k] = (code >> k) & 1
	}
	r.set = true
}

// Apply returns the next state of the center cell of n.
func (r *Rule) Apply(n Neighborhood) (uint8, error) {
	if !r.set {
		return 0, ErrUnsetRule
	}
	for _, b := range n {
		if b > 1 {
			return 0, fmt.Errorf("%w: neighborhood must be binary, got %v", ErrConfiguration, n)
		}
	}
	return r.table[n.Code()], nil
}

// Next computes the row that follows row. The left boundary is evaluated
// before the right one.
func (r *Rule) Next(row []uint8) ([]uint8, error) {
	if !r.set {
		return nil, ErrUnsetRule
	}
	n := len(row)
	if n < MinLength {
		return nil, fmt.Errorf("%w: row length must be at least %d, got %d", ErrConfiguration, MinLength, n)
	}
	left := r.Left(row)
	right := r.Right(row)

	next := make([]uint8, n)
	var err error
	if next[0], err = r.Apply(Neighborhood{left, row[0], row[1]}); err != nil {
		return nil, err
	}
	for i := 1; i < n-1; i++ {
		if next[i], err = r.Apply(Neighborhood{row[i-1], row[i], row[i+1]}); err != nil {
			return nil, err
		}
	}
	if next[n-1], err = r.Apply(Neighborhood{row[n-2], row[n-1], right}); err != nil {
		return nil, err
	}
	return next, nil
}

// Left returns the virtual neighbour to the left of row[0].
func (r *Rule) Left(row []uint8) uint8 {
	switch r.boundary.Mode {
	case BoundaryPeriodic:
		return row[len(row)-1]
	case BoundaryRandom:
		return r.bits.Bit()
	default:
		return r.boundary.Left
	}
}

// Right returns the virtual neighbour to the right of row[len(row)-1].
func (r *Rule) Right(row []uint8) uint8 {
	switch r.boundary.Mode {
	case BoundaryPeriodic:
		return row[0]
	case BoundaryRandom:
		return r.bits.Bit()
	default:
		return r.boundary.Right
	}
}

// Boundary returns the boundary policy.
func (r *Rule) Boundary() Boundary { return r.boundary }

// IsSet reports whether a table has been assigned.
func (r *Rule) IsSet() bool { return r.set }

// Table returns a copy of the lookup table indexed by neighborhood code.
func (r *Rule) Table() [RuleBits]uint8 { return r.table }

// Code returns the Wolfram code of the table.
func (r *Rule) Code() (uint8, bool) {
	if !r.set {
		return 0, false
	}
	var code uint8
	for k := 0; k < RuleBits; k++ {
		code |= r.table[k] << k
	}
	return code, true
}

// Bits returns the table as an eight character string, neighborhood 7
// first. It is empty for an unset rule.
func (r *Rule) Bits() string {
	if !r.set {
		return ""
	}
	buf := make([]byte, RuleBits)
	for i := range buf {
		buf[i] = '0' + r.table[RuleBits-1-i]
	}
	return string(buf)
}

// Descriptor returns "bl3_<boundary>_<bits>", e.g. "bl3_[0,0]_00011110".
func (r *Rule) Descriptor() string {
	bits := r.Bits()
	if bits == "" {
		bits = "unset"
	}
	return "bl3_" + r.boundary.String() + "_" + bits
}
