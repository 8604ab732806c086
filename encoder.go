package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder holds the Huffman code for one frequency table.
type Encoder struct {
	freq  FrequencyTable
	codes *CodeTable
}

// Init initializes this Encoder.  The argument lists the number of
// occurrences of each symbol; symbols with a count of 0 receive no code.
//
// Init returns ErrEmptyInput if the table has no symbols at all.
//
func (e *Encoder) Init(freq FrequencyTable) error {
	tree, err := BuildTree(freq)
	if err != nil {
		return err
	}
	codes, _ := GenerateCodes(tree)
	*e = Encoder{freq: freq, codes: codes}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.  The boolean is
// false if the symbol has no code.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.codes.Lookup(symbol)
}

// Frequencies returns the frequency table that this Encoder was built from.
func (e Encoder) Frequencies() FrequencyTable {
	return e.freq
}

// Codes returns the symbol-to-code table.
func (e Encoder) Codes() *CodeTable {
	return e.codes
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Only symbols with a code are listed.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc, found := e.codes.Lookup(symbol); found {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
