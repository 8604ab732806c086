package huffpack

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// entrySize is the serialized size of one FrequencyEntry.
const entrySize = 5

// FrequencyEntry pairs a symbol with the number of times it occurs.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint32
}

// FrequencyTable records the number of occurrences of each byte value.
// Symbols with a count of 0 are absent from the table.
//
// The zero value is an empty table, ready to use.
type FrequencyTable struct {
	counts [NumSymbols]uint32
}

// CountFrequencies counts the occurrences of every byte in data.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	var ft FrequencyTable
	for _, ch := range data {
		if ft.counts[ch] == math.MaxUint32 {
			return FrequencyTable{}, fmt.Errorf("symbol %d: %w", ch, ErrCountOverflow)
		}
		ft.counts[ch]++
	}
	return ft, nil
}

// Set assigns the count for a symbol.  A count of 0 removes the symbol.
func (ft *FrequencyTable) Set(symbol Symbol, count uint32) {
	assert.Assertf(symbol >= 0 && symbol <= MaxSymbol, "symbol %d out of range [0, %d]", symbol, MaxSymbol)
	ft.counts[symbol] = count
}

// Count returns the number of occurrences of a symbol, or 0 if it is absent.
func (ft FrequencyTable) Count(symbol Symbol) uint32 {
	if symbol < 0 || symbol > MaxSymbol {
		return 0
	}
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols in the table.
func (ft FrequencyTable) Len() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input that
// the table describes.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft.counts {
		sum += uint64(count)
	}
	return sum
}

// Entries returns the non-zero entries of the table, sorted ascending by
// symbol.
func (ft FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, 0, NumSymbols)
	for symbol, count := range ft.counts {
		if count != 0 {
			out = append(out, FrequencyEntry{Symbol(symbol), count})
		}
	}
	return out
}

// MarshalBinary serializes the table as a sequence of (symbol, count) pairs,
// one byte of symbol followed by a little-endian uint32 count, sorted
// ascending by symbol.
func (ft FrequencyTable) MarshalBinary() ([]byte, error) {
	entries := ft.Entries()
	out := make([]byte, len(entries)*entrySize)
	for index, entry := range entries {
		i := index * entrySize
		out[i] = byte(entry.Symbol)
		binary.LittleEndian.PutUint32(out[i+1:], entry.Count)
	}
	return out, nil
}

// UnmarshalBinary parses the format written by MarshalBinary.  Entries must
// be in strictly ascending symbol order and must not have a count of 0.
func (ft *FrequencyTable) UnmarshalBinary(raw []byte) error {
	if len(raw)%entrySize != 0 {
		return fmt.Errorf("length %d is not a multiple of %d: %w", len(raw), entrySize, ErrDeserialization)
	}

	var tmp FrequencyTable
	last := InvalidSymbol
	for i := 0; i < len(raw); i += entrySize {
		symbol := Symbol(raw[i])
		count := binary.LittleEndian.Uint32(raw[i+1:])
		if symbol <= last {
			return fmt.Errorf("entry at offset %d: symbol %d follows symbol %d: %w", i, symbol, last, ErrDeserialization)
		}
		if count == 0 {
			return fmt.Errorf("entry at offset %d: symbol %d has a count of 0: %w", i, symbol, ErrDeserialization)
		}
		tmp.counts[symbol] = count
		last = symbol
	}

	*ft = tmp
	return nil
}

// String returns a short human-readable description of the table.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols, %d bytes total)", ft.Len(), ft.Total())
}

// GoString returns the list of entries, in ascending symbol order.
func (ft FrequencyTable) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{")
	for index, entry := range ft.Entries() {
		if index > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d:%d", entry.Symbol, entry.Count)
	}
	buf.WriteString("}")
	return buf.String()
}

var (
	_ fmt.Stringer               = FrequencyTable{}
	_ fmt.GoStringer             = FrequencyTable{}
	_ encoding.BinaryMarshaler   = FrequencyTable{}
	_ encoding.BinaryUnmarshaler = (*FrequencyTable)(nil)
)
