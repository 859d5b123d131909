package domain

import "strconv"

// RandomByte is a single value drawn from a random source.
type RandomByte uint8

// String renders the value as decimal digits without leading zeros.
func (b RandomByte) String() string {
	return strconv.FormatUint(uint64(b), 10)
}
