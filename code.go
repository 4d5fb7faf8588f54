package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size low-order bits, so that
	// Bits reads naturally when printed in binary.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) == 0 {
		return Code{}, fmt.Errorf("empty code")
	}
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is %d bits long, max %d", str, len(str), MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q contains invalid character %q", str, str[i])
		}
	}
	return hc, nil
}

// Append returns this Code extended by one bit.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the i'th bit of the sequence, counting from 0.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	digits := strconv.FormatUint(hc.Bits, 2)
	if n := int(hc.Size) - len(digits); n > 0 {
		digits = strings.Repeat("0", n) + digits
	}
	return digits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
