package elementary

import (
	"fmt"
	"math/big"
)

// MaxSeed returns 2^length - 1, the largest seed a row of length cells holds.
func MaxSeed(length int) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(length))
	return max.Sub(max, big.NewInt(1))
}

// EncodeSeed expands seed into a row of length bits. Position 0 holds the
// most significant bit and position length-1 the least significant one.
func EncodeSeed(seed *big.Int, length int) ([]uint8, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: row length must be positive, got %d", ErrConfiguration, length)
	}
	if seed == nil || seed.Sign() < 0 || seed.BitLen() > length {
		return nil, fmt.Errorf("%w: seed %v does not fit in %d bits", ErrSeedOutOfRange, seed, length)
	}
	row := make([]uint8, length)
	for i := range row {
		row[i] = uint8(seed.Bit(length - 1 - i))
	}
	return row, nil
}

// DecodeSeed is the inverse of EncodeSeed.
func DecodeSeed(row []uint8) (*big.Int, error) {
	seed := new(big.Int)
	for i, b := range row {
		if b > 1 {
			return nil, fmt.Errorf("%w: cell %d is %d, expected 0 or 1", ErrConfiguration, i, b)
		}
		seed.Lsh(seed, 1)
		if b == 1 {
			seed.SetBit(seed, 0, 1)
		}
	}
	return seed, nil
}
