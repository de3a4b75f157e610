package elementary

import "errors"

// Sentinel errors returned (wrapped) by this package. Test with errors.Is.
var (
	// ErrConfiguration reports an invalid boundary, rule, length or
	// iteration count.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrSeedOutOfRange reports a seed that does not fit the lattice length.
	ErrSeedOutOfRange = errors.New("seed out of range")
	// ErrUnsetRule reports use of a Rule whose table was never set.
	ErrUnsetRule = errors.New("rule has not been set")
)
