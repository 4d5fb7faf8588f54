package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
)

// NodeID is a handle to a node inside a Tree.
type NodeID int32

// NoNode is the NodeID of a missing child.
const NoNode = NodeID(-1)

// String returns the string representation of this NodeID.
func (id NodeID) String() string {
	if id == NoNode {
		return "nil"
	}
	return fmt.Sprintf("#%d", int32(id))
}

// TreeNode is either a leaf holding a Symbol or an internal node with up to
// two children.  Weight is the sum of the weights of the leaves below it.
type TreeNode struct {
	Weight uint64
	Left   NodeID
	Right  NodeID
	Symbol Symbol
	Leaf   bool
}

// Child returns the child selected by bit: 0 for Left, 1 for Right.
func (n TreeNode) Child(bit uint) NodeID {
	if bit == 0 {
		return n.Left
	}
	return n.Right
}

// String returns the string representation of this TreeNode.
func (n TreeNode) String() string {
	if n.Leaf {
		return fmt.Sprintf("Leaf{symbol: %d, weight: %d}", n.Symbol, n.Weight)
	}
	return fmt.Sprintf("Internal{weight: %d, left: %v, right: %v}", n.Weight, n.Left, n.Right)
}

// Tree is a binary prefix tree.  Nodes live in a single arena owned by the
// Tree and refer to their children by NodeID, so every node has exactly one
// parent and the Tree can be discarded as a unit.
type Tree struct {
	nodes []TreeNode
	root  NodeID
}

// BuildTree builds an optimal prefix tree for the given frequencies.  It
// returns nil if the table is empty.
//
// Ties between nodes of equal weight are broken by NodeID: leaves are created
// first, in ascending Symbol order, and each merged node gets the next
// NodeID.  Of the two nodes removed from the queue, the first becomes the
// left child.  The resulting tree is therefore a pure function of the table.
//
// A table with a single symbol yields a synthetic root whose only child is
// that symbol's leaf (on the left), so that the symbol gets the 1-bit code
// "0" rather than an empty one.
//
func BuildTree(ft FrequencyTable) *Tree {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil
	}

	t := &Tree{nodes: make([]TreeNode, 0, 2*numLeaves)}
	for _, symbol := range ft.Symbols() {
		t.addLeaf(symbol, ft.Get(symbol))
	}

	if numLeaves == 1 {
		t.root = t.addInternal(0, NoNode)
		return t
	}

	h := nodeHeap{tree: t, list: make([]NodeID, numLeaves, 2*numLeaves)}
	for i := range h.list {
		h.list[i] = NodeID(i)
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)
		heap.Push(&h, t.addInternal(a, b))
	}

	t.root = heap.Pop(&h).(NodeID)
	return t
}

// Root returns the NodeID of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns a copy of the node with the given NodeID.
func (t *Tree) Node(id NodeID) TreeNode {
	return t.nodes[id]
}

// NumNodes returns the number of nodes in the tree, leaves included.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// NumLeaves returns the number of symbols in the tree.
func (t *Tree) NumLeaves() int {
	var count int
	for _, n := range t.nodes {
		if n.Leaf {
			count++
		}
	}
	return count
}

// Weight returns the weight of the root, i.e. the length of the input the
// tree was built from.  Trees rebuilt from a CodeTable have weight 0.
func (t *Tree) Weight() uint64 {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[t.root].Weight
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %v\n", t.root)
	for i, n := range t.nodes {
		fmt.Fprintf(&buf, "\tNode(%v) = %v\n", NodeID(i), n)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols and %d nodes)", t.NumLeaves(), len(t.nodes))
}

var _ fmt.Stringer = (*Tree)(nil)

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, TreeNode{
		Weight: weight,
		Left:   NoNode,
		Right:  NoNode,
		Symbol: symbol,
		Leaf:   true,
	})
	return id
}

func (t *Tree) addInternal(left NodeID, right NodeID) NodeID {
	// Compute weight using saturating addition
	weight := t.weightOf(left) + t.weightOf(right)
	if weight < t.weightOf(left) {
		weight = math.MaxUint64
	}

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, TreeNode{
		Weight: weight,
		Left:   left,
		Right:  right,
	})
	return id
}

func (t *Tree) weightOf(id NodeID) uint64 {
	if id == NoNode {
		return 0
	}
	return t.nodes[id].Weight
}

func (t *Tree) setChild(parent NodeID, bit uint, child NodeID) {
	if bit == 0 {
		t.nodes[parent].Left = child
	} else {
		t.nodes[parent].Right = child
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].Weight, h.tree.nodes[b].Weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
