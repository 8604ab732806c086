package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each symbol to its Huffman code.  Symbols that do not
// appear in the tree have a zero-size Code.  A nil *CodeTable is empty.
type CodeTable struct {
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// InverseCodeTable maps each Huffman code back to its symbol.  A nil
// *InverseCodeTable is empty.
type InverseCodeTable struct {
	symbols map[Code]Symbol
	minSize byte
	maxSize byte
}

// GenerateCodes walks the tree depth-first, appending a 0 bit for every
// left edge and a 1 bit for every right edge, and records the path to each
// leaf as that leaf's code.
//
// A tree consisting of a single leaf would give its symbol an empty code,
// which cannot be decoded.  That symbol is assigned the 1-bit code "0"
// instead, as if the leaf were the left child of a one-armed root.
//
func GenerateCodes(t *Tree) (*CodeTable, *InverseCodeTable) {
	ct := &CodeTable{}
	inv := &InverseCodeTable{symbols: make(map[Code]Symbol, t.Len())}

	record := func(symbol Symbol, hc Code) {
		assert.Assertf(hc.Size != 0, "symbol %d was assigned an empty code", symbol)
		assert.Assertf(ct.codes[symbol].Size == 0, "symbol %d appears twice in the tree", symbol)
		ct.codes[symbol] = hc
		inv.symbols[hc] = symbol
		if len(inv.symbols) == 1 {
			ct.minSize, ct.maxSize = hc.Size, hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
		inv.minSize, inv.maxSize = ct.minSize, ct.maxSize
	}

	type stackItem struct {
		index int32
		code  Code
	}

	root := t.root()
	if n := t.nodes[root]; n.isLeaf() {
		record(n.symbol, MakeCode(1, 0))
		return ct, inv
	}

	// Right children are pushed first so that left subtrees are visited
	// first; the visiting order does not affect the codes.
	stack := make([]stackItem, 0, t.Len())
	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.index]
		if n.isLeaf() {
			record(n.symbol, top.code)
			continue
		}
		stack = append(stack, stackItem{n.right, top.code.Append(true)})
		stack = append(stack, stackItem{n.left, top.code.Append(false)})
	}

	return ct, inv
}

// Lookup returns the code for a symbol.  The boolean is false if the symbol
// has no code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if ct == nil || symbol < 0 || symbol > MaxSymbol {
		return Code{}, false
	}
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	if ct == nil {
		return 0
	}
	var n int
	for _, hc := range ct.codes {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	if ct == nil {
		return 0
	}
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	if ct == nil {
		return 0
	}
	return ct.maxSize
}

// Lookup returns the symbol for an exact code match, or InvalidSymbol.
func (inv *InverseCodeTable) Lookup(hc Code) Symbol {
	if inv == nil {
		return InvalidSymbol
	}
	if symbol, found := inv.symbols[hc]; found {
		return symbol
	}
	return InvalidSymbol
}

// Len returns the number of codes in the table.
func (inv *InverseCodeTable) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.symbols)
}

// MinSize is the bit length of the shortest code.
func (inv *InverseCodeTable) MinSize() byte {
	if inv == nil {
		return 0
	}
	return inv.minSize
}

// MaxSize is the bit length of the longest code.
func (inv *InverseCodeTable) MaxSize() byte {
	if inv == nil {
		return 0
	}
	return inv.maxSize
}
