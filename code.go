package huffpack

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a Code can hold.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit, i.e. the edge taken from
	// the root of the tree.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code %s cannot grow past %d bits", hc, maxBitsPerCode)
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a prefix of hc.  Every Code has itself
// and the empty Code as prefixes.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
