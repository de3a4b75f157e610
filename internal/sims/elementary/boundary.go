package elementary

import (
	"fmt"
	"strings"
)

// BoundaryMode selects how the virtual neighbours outside the row are made.
type BoundaryMode uint8

const (
	// BoundaryFixed uses a constant bit on each side.
	BoundaryFixed BoundaryMode = iota
	// BoundaryPeriodic wraps around to the opposite end of the row.
	BoundaryPeriodic
	// BoundaryRandom draws a fresh bit for every evaluation.
	BoundaryRandom
)

// Boundary is a validated boundary policy. Left and Right are only
// meaningful for BoundaryFixed.
type Boundary struct {
	Mode        BoundaryMode
	Left, Right uint8
}

// Fixed returns a boundary that always supplies left and right.
func Fixed(left, right uint8) Boundary {
	return Boundary{Mode: BoundaryFixed, Left: left, Right: right}
}

// Constant returns a fixed boundary with the same bit on both edges.
func Constant(bit uint8) Boundary { return Fixed(bit, bit) }

// Periodic returns a wrap-around boundary.
func Periodic() Boundary { return Boundary{Mode: BoundaryPeriodic} }

// Random returns a boundary that draws independent random bits.
func Random() Boundary { return Boundary{Mode: BoundaryRandom} }

// Validate checks that the mode is known and fixed edges are bits.
func (b Boundary) Validate() error {
	switch b.Mode {
	case BoundaryFixed:
		if b.Left > 1 || b.Right > 1 {
			return fmt.Errorf("%w: fixed boundary bits must be 0 or 1, got [%d,%d]", ErrConfiguration, b.Left, b.Right)
		}
	case BoundaryPeriodic, BoundaryRandom:
	default:
		return fmt.Errorf("%w: unknown boundary mode %d", ErrConfiguration, b.Mode)
	}
	return nil
}

// String renders the canonical boundary string used in descriptors.
func (b Boundary) String() string {
	switch b.Mode {
	case BoundaryPeriodic:
		return "periodic"
	case BoundaryRandom:
		return "random"
	default:
		return fmt.Sprintf("[%d,%d]", b.Left, b.Right)
	}
}

// ParseBoundary accepts a single bit ("0", "1"), a pair ("[0,1]" or "0,1"),
// "random" or "periodic". Anything else is an ErrConfiguration.
func ParseBoundary(in string) (Boundary, error) {
	s := strings.TrimSpace(in)
	switch s {
	case "random":
		return Random(), nil
	case "periodic":
		return Periodic(), nil
	case "0", "1":
		return Constant(s[0] - '0'), nil
	}

	inner := s
	if strings.HasPrefix(inner, "[") && strings.HasSuffix(inner, "]") {
		inner = inner[1 : len(inner)-1]
	}
	parts := strings.Split(inner, ",")
	if len(parts) == 2 {
		left, lok := parseBit(parts[0])
		right, rok := parseBit(parts[1])
		if lok && rok {
			return Fixed(left, right), nil
		}
	}
	return Boundary{}, fmt.Errorf("%w: boundary must be 0, 1, a pair of bits, \"random\" or \"periodic\", got %q", ErrConfiguration, in)
}

func parseBit(s string) (uint8, bool) {
	switch strings.TrimSpace(s) {
	case "0":
		return 0, true
	case "1":
		return 1, true
	}
	return 0, false
}
