package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol is returned by Pack when a byte has no code in the
	// CodeTable, i.e. the table was built from some other input.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrTruncatedStream is returned when the packed stream runs out of
	// bits before the expected number of symbols has been decoded.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrCorruptStream is returned when decoding reaches a state that a
	// well-formed tree, code table, or frame cannot produce.
	ErrCorruptStream = errors.New("corrupt stream")
)

// UnknownSymbolError identifies the byte that Pack could not encode.
type UnknownSymbolError struct {
	Symbol Symbol

	// Offset is the position of the byte within the input.
	Offset int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v: byte 0x%02x at offset %d has no code", ErrUnknownSymbol, byte(err.Symbol), err.Offset)
}

// Is returns true for ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

var _ error = (*UnknownSymbolError)(nil)

func truncatedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrTruncatedStream}, args...)...)
}

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrCorruptStream}, args...)...)
}
