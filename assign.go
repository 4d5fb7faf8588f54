package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Codes walks the tree and returns the code for every leaf: the path from
// the root, with 0 for each left branch and 1 for each right branch.
//
// A nil or zero-value Tree yields an empty CodeTable.
//
func (t *Tree) Codes() CodeTable {
	var ct CodeTable
	if t == nil || len(t.nodes) == 0 {
		return ct
	}

	// The walk uses an explicit stack of internal nodes.  stackItem.x
	// tracks where we are in each node:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)

	processChild := func(id NodeID, hc Code) {
		if id == NoNode {
			return
		}

		n := t.nodes[id]
		if !n.Leaf {
			assert.Assertf(hc.Size < MaxCodeSize, "tree is deeper than %d bits", MaxCodeSize)
			stack = append(stack, stackItem{id: id, code: hc})
			return
		}

		assert.Assertf(hc.Size != 0, "leaf for symbol %d is the root", n.Symbol)
		ct.set(n.Symbol, hc)
	}

	// And now the tree-walking loop.
	processChild(t.root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		id, hc, x := top.id, top.code, top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[id].Left, hc.Append(0))
		case 1:
			processChild(t.nodes[id].Right, hc.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}

	return ct
}
