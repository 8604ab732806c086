package huffpack

import (
	"container/heap"
)

// noChild marks the child slots of a leaf node.
const noChild = -1

// Tree is a Huffman tree.  Nodes live in a single arena and refer to their
// children by index; a node never changes after it has been appended.
//
// Leaves occupy the first Len() slots, in ascending symbol order.  Each
// internal node is appended after both of its children, so the root is
// always the last node.
type Tree struct {
	nodes []treeNode
}

type treeNode struct {
	symbol Symbol
	weight uint64
	left   int32
	right  int32
}

// BuildTree constructs the Huffman tree for a frequency table by repeatedly
// merging the two lightest nodes of a min-priority queue.  Nodes of equal
// weight are ordered by their position in the arena, so the same table
// always produces the same tree.
func BuildTree(freq FrequencyTable) (*Tree, error) {
	entries := freq.Entries()
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]treeNode, 0, 2*len(entries)-1)}

	// Step 1: one leaf per symbol, heapified.

	h := weightHeap{tree: t, list: make([]int32, 0, len(entries))}
	for _, entry := range entries {
		h.list = append(h.list, t.appendNode(treeNode{
			symbol: entry.Symbol,
			weight: uint64(entry.Count),
			left:   noChild,
			right:  noChild,
		}))
	}
	h.Init()

	// Step 2: pop the two lightest nodes, push their parent, until a
	// single node (the root) remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)
		parent := t.appendNode(treeNode{
			symbol: InvalidSymbol,
			weight: t.nodes[a].weight + t.nodes[b].weight,
			left:   a,
			right:  b,
		})
		heap.Push(&h, parent)
	}

	return t, nil
}

// Len returns the number of leaves, i.e. distinct symbols, in the tree.
func (t *Tree) Len() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the sum of all symbol counts.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root()].weight
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var walk func(index int32) int
	walk = func(index int32) int {
		n := t.nodes[index]
		if n.isLeaf() {
			return 0
		}
		l, r := walk(n.left), walk(n.right)
		if l < r {
			l = r
		}
		return l + 1
	}
	return walk(t.root())
}

func (t *Tree) root() int32 {
	return int32(len(t.nodes) - 1)
}

func (t *Tree) appendNode(n treeNode) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (n treeNode) isLeaf() bool {
	return n.left == noChild
}

// type weightHeap {{{

type weightHeap struct {
	tree *Tree
	list []int32
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
