package huffpack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no symbols from which to
	// build a Huffman tree.
	ErrEmptyInput = errors.New("empty input: no symbols to build a Huffman tree")

	// ErrCorruptHeader is returned when the container header is malformed.
	// This includes a header whose counts total less than the number of
	// symbols in the bitstream.
	ErrCorruptHeader = errors.New("corrupt container header")

	// ErrDeserialization is returned when the header bytes do not parse as
	// a frequency table.
	ErrDeserialization = errors.New("malformed frequency table")

	// ErrMissingCode is returned when a symbol has no code in the table
	// that was derived from its own input.
	ErrMissingCode = errors.New("symbol has no Huffman code")

	// ErrTruncatedStream is returned when the bitstream ends in the middle
	// of a code, or yields fewer symbols than the header promises.
	ErrTruncatedStream = errors.New("truncated bitstream")

	// ErrInvalidCode is returned when the bitstream contains a bit
	// sequence longer than any code in the table.
	ErrInvalidCode = errors.New("bitstream contains an unknown code")

	// ErrCountOverflow is returned when a symbol occurs more often than a
	// uint32 count can record.
	ErrCountOverflow = errors.New("symbol count overflows uint32")
)

// IOError records a failed file operation and the path it was applied to.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error fulfills the error interface.
func (err *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", err.Op, err.Path, err.Err)
}

// Unwrap returns the underlying cause.
func (err *IOError) Unwrap() error {
	return err.Err
}

var _ error = (*IOError)(nil)
