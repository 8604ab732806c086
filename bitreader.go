package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitReader reads a packed bitstream, most significant bit first, and
// matches it against an InverseCodeTable.
type BitReader struct {
	r     *bitio.Reader
	table *InverseCodeTable
	nbits uint64
}

// NewBitReader returns a BitReader that reads exactly nbits payload bits
// from r.  Any bits after those are never examined.
func NewBitReader(r io.Reader, table *InverseCodeTable, nbits uint64) *BitReader {
	return &BitReader{r: bitio.NewReader(r), table: table, nbits: nbits}
}

// ReadSymbol reads bits until they form a complete code and returns its
// symbol.  It returns io.EOF if the payload is exhausted on a symbol
// boundary, and ErrTruncatedStream if it is exhausted mid-code.
func (br *BitReader) ReadSymbol() (Symbol, error) {
	var acc Code
	for {
		if br.nbits == 0 {
			if acc.Size == 0 {
				return InvalidSymbol, io.EOF
			}
			return InvalidSymbol, fmt.Errorf("%d leftover bits %s: %w", acc.Size, acc, ErrTruncatedStream)
		}

		bit, err := br.r.ReadBool()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return InvalidSymbol, err
		}
		br.nbits--

		acc = acc.Append(bit)
		if symbol := br.table.Lookup(acc); symbol != InvalidSymbol {
			return symbol, nil
		}
		if acc.Size >= br.table.MaxSize() {
			return InvalidSymbol, fmt.Errorf("bits %s: %w", acc, ErrInvalidCode)
		}
	}
}

// DecodeBits unpacks payload into symbols.  All 8 bits of every byte are
// payload except in the last byte, whose low-order padding bits are
// discarded.
func DecodeBits(payload []byte, table *InverseCodeTable, padding byte) ([]byte, error) {
	if padding > 7 {
		return nil, fmt.Errorf("padding %d out of range [0, 7]: %w", padding, ErrCorruptHeader)
	}
	if table.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if len(payload) == 0 {
		if padding != 0 {
			return nil, fmt.Errorf("padding %d with an empty payload: %w", padding, ErrCorruptHeader)
		}
		return []byte{}, nil
	}

	nbits := uint64(len(payload))*8 - uint64(padding)
	br := NewBitReader(bytes.NewReader(payload), table, nbits)

	out := make([]byte, 0, nbits/uint64(table.MaxSize()))
	for {
		symbol, err := br.ReadSymbol()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, byte(symbol))
	}
}
