package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder holds the inverse Huffman code for one frequency table.
//
// The tree is rebuilt from the frequency table with the same algorithm the
// Encoder uses, so an Encoder and a Decoder initialized from equal tables
// agree on every code.
//
type Decoder struct {
	freq  FrequencyTable
	table *InverseCodeTable
}

// Init initializes this Decoder from a frequency table.  It returns
// ErrEmptyInput if the table has no symbols at all.
func (d *Decoder) Init(freq FrequencyTable) error {
	tree, err := BuildTree(freq)
	if err != nil {
		return err
	}
	_, table := GenerateCodes(tree)
	*d = Decoder{freq: freq, table: table}
	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.  It returns
// InvalidSymbol if hc is not exactly one of the codes.
func (d Decoder) Decode(hc Code) Symbol {
	return d.table.Lookup(hc)
}

// Frequencies returns the frequency table that this Decoder was built from.
func (d Decoder) Frequencies() FrequencyTable {
	return d.freq
}

// Table returns the code-to-symbol table.
func (d Decoder) Table() *InverseCodeTable {
	return d.table
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.table.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.table.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.MaxSize())
	keys := make(byCode, 0, d.table.Len())
	if d.table != nil {
		for hc := range d.table.symbols {
			keys = append(keys, hc)
		}
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.Decode(hc))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
